package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Paging and query limits for the food endpoints.
const (
	defaultPageSize   = 24
	maxPageSize       = 100
	alternativesCount = 6
	defaultRandom     = 6
	maxRandom         = 50
	defaultSearch     = 20
	maxSearch         = 50
	minQueryLen       = 2
	maxQueryLen       = 100
)

// intParam reads an optional positive integer query parameter. A missing
// value yields def; values above max are clamped. Anything that is not a
// positive integer is a client error.
func intParam(r *http.Request, name string, def, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, badRequest("geçersiz " + name + " değeri")
	}
	if max > 0 && n > max {
		n = max
	}
	return n, nil
}

// searchQuery normalizes the q parameter. ok is false when the query is
// too short to search; an overly long query is a client error.
func searchQuery(r *http.Request) (q string, ok bool, err error) {
	q = strings.Join(strings.Fields(r.URL.Query().Get("q")), " ")
	n := utf8.RuneCountInString(q)
	if n > maxQueryLen {
		return "", false, badRequest("arama metni çok uzun (en fazla 100 karakter)")
	}
	return q, n >= minQueryLen, nil
}
