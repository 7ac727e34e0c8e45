// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API consumed by the site's frontend.
// Read-only food responses pass through the L2 Valkey response cache; the
// calculators are evaluated in-process and never cached.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"besinrehberi/internal/cache"
	"besinrehberi/internal/models"
)

// FoodReader is the read side of the food catalog. *store.FoodStore
// implements it.
type FoodReader interface {
	List(page, limit int) (*models.FoodPage, error)
	FindBySlug(slug string) (*models.Food, error)
	Alternatives(f *models.Food, n int) ([]models.Food, error)
	ListByCategory(name string) ([]models.Food, error)
	ListBySubcategory(name string) ([]models.Food, error)
	Search(q string, limit int) ([]models.Food, error)
	Random(n int) ([]models.Food, error)
}

// GroupSource supplies the category hierarchy. *cache.GroupCache
// implements it.
type GroupSource interface {
	Groups() ([]models.CategoryGroup, error)
}

// API groups the food and category handlers.
type API struct {
	foods  FoodReader
	groups GroupSource
	cache  *cache.ResponseCache
}

// NewAPI creates the API handler group. responses may be nil, in which
// case nothing is cached.
func NewAPI(foods FoodReader, groups GroupSource, responses *cache.ResponseCache) *API {
	return &API{foods: foods, groups: groups, cache: responses}
}

// apiError is an error with an HTTP status and a message safe to show
// to the client.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func notFound(msg string) error   { return &apiError{status: http.StatusNotFound, message: msg} }
func badRequest(msg string) error { return &apiError{status: http.StatusBadRequest, message: msg} }

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes {"error": msg} with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps err to a response. apiErrors keep their status and message;
// anything else is logged and reported as a 500 without details.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		writeError(w, ae.status, ae.message)
		return
	}
	slog.Error("api request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "sunucu hatası")
}

// serveCached answers r from the response cache when possible. On a miss
// it calls load, writes the result, and caches the encoded body. Errors
// are never cached.
func (a *API) serveCached(w http.ResponseWriter, r *http.Request, load func() (any, error)) {
	ctx := r.Context()
	key := cache.RequestKey(r.URL.Path, r.URL.Query())

	if body, ok := a.cache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	data, err := load()
	if err != nil {
		fail(w, r, err)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		fail(w, r, err)
		return
	}
	body = append(body, '\n')
	a.cache.Set(ctx, key, body)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if a.cache.Enabled() {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Write(body)
}
