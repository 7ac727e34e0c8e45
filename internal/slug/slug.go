// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation for Turkish display
// strings such as category names, food names, and calculator titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// turkishLetters maps the Turkish letters that survive decomposition.
	turkishLetters = strings.NewReplacer(
		"ğ", "g",
		"ü", "u",
		"ş", "s",
		"ı", "i",
		"ö", "o",
		"ç", "c",
	)
	// conjunction matches the Turkish word "ve" (and) between two words.
	conjunction = regexp.MustCompile(`\s+ve\s+`)
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace matches runs of whitespace.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a lowercase, ASCII-only, hyphen-separated slug.
// Example: "Et & Tavuk Ürünleri" → "et-tavuk-urunleri"
//
// Generate is idempotent: Generate(Generate(s)) == Generate(s).
func Generate(s string) string {
	// Dotted capital İ lowercases to "i" + combining dot, so fold it first.
	result := strings.ReplaceAll(s, "İ", "I")
	result = strings.ToLower(result)
	result = stripDiacritics(result)
	result = turkishLetters.Replace(result)
	result = conjunction.ReplaceAllString(result, "-")
	result = strings.ReplaceAll(result, "&", "")
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// stripDiacritics decomposes s (NFD) and drops the combining marks.
// transform.Chain keeps state, so a new chain is built per call.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
