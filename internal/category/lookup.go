// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package category resolves URL slugs back to the display names of main
// categories and subcategories. A miss is reported with ok == false and is
// never an error.
package category

import (
	"besinrehberi/internal/models"
	"besinrehberi/internal/slug"
)

// FindMainBySlug scans main-category names only and returns the first whose
// slug equals s.
func FindMainBySlug(s string, groups []models.CategoryGroup) (string, bool) {
	for _, g := range groups {
		if slug.Generate(g.MainCategory) == s {
			return g.MainCategory, true
		}
	}
	return "", false
}

// FindSubcategoryBySlug scans the subcategories of every group, in order,
// and returns the first whose slug equals s.
func FindSubcategoryBySlug(s string, groups []models.CategoryGroup) (string, bool) {
	for _, g := range groups {
		for _, sub := range g.Subcategories {
			if slug.Generate(sub) == s {
				return sub, true
			}
		}
	}
	return "", false
}

// FindBySlug tries main categories first and falls back to subcategories.
// When a main category and a subcategory share a slug, the main category wins.
func FindBySlug(s string, groups []models.CategoryGroup) (string, bool) {
	if name, ok := FindMainBySlug(s, groups); ok {
		return name, true
	}
	return FindSubcategoryBySlug(s, groups)
}

// Resolution is the result of resolving a /kategori/{category}/{subcategory}
// path. Subcategory is empty when only a main category was requested.
type Resolution struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

// Resolve maps a category slug and an optional subcategory slug to display
// names. The subcategory must belong to the resolved main category. Two
// display names can share a slug ("Et & Tavuk", "Et ve Tavuk"), so every
// group with a matching main slug is searched for the subcategory.
func Resolve(categorySlug, subcategorySlug string, groups []models.CategoryGroup) (Resolution, bool) {
	for _, g := range groups {
		if slug.Generate(g.MainCategory) != categorySlug {
			continue
		}
		if subcategorySlug == "" {
			return Resolution{Category: g.MainCategory}, true
		}
		for _, sub := range g.Subcategories {
			if slug.Generate(sub) == subcategorySlug {
				return Resolution{Category: g.MainCategory, Subcategory: sub}, true
			}
		}
	}
	return Resolution{}, false
}
