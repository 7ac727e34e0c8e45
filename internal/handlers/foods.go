// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/category"
	"besinrehberi/internal/models"
)

// ListFoods serves one page of the full catalog.
func (a *API) ListFoods(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1, 0)
	if err != nil {
		fail(w, r, err)
		return
	}
	limit, err := intParam(r, "limit", defaultPageSize, maxPageSize)
	if err != nil {
		fail(w, r, err)
		return
	}

	a.serveCached(w, r, func() (any, error) {
		return a.foods.List(page, limit)
	})
}

// FoodDetail serves a single food with similar foods to suggest.
func (a *API) FoodDetail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	a.serveCached(w, r, func() (any, error) {
		food, err := a.foods.FindBySlug(slugParam)
		if err != nil {
			return nil, err
		}
		if food == nil {
			return nil, notFound("besin bulunamadı")
		}
		alts, err := a.foods.Alternatives(food, alternativesCount)
		if err != nil {
			return nil, err
		}
		return models.FoodDetail{Food: food, Alternatives: alts}, nil
	})
}

// FoodsByCategory lists the foods of a main category. The parameter may be
// a category slug or its display name.
func (a *API) FoodsByCategory(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "category")

	a.serveCached(w, r, func() (any, error) {
		name, err := a.resolveName(param, category.FindMainBySlug, mainNames)
		if err != nil {
			return nil, err
		}
		foods, err := a.foods.ListByCategory(name)
		if err != nil {
			return nil, err
		}
		return models.FoodList{Foods: foods}, nil
	})
}

// FoodsBySubcategory lists the foods of a subcategory. The parameter may be
// a subcategory slug or its display name.
func (a *API) FoodsBySubcategory(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "subcategory")

	a.serveCached(w, r, func() (any, error) {
		name, err := a.resolveName(param, category.FindSubcategoryBySlug, subcategoryNames)
		if err != nil {
			return nil, err
		}
		foods, err := a.foods.ListBySubcategory(name)
		if err != nil {
			return nil, err
		}
		return models.FoodList{Foods: foods}, nil
	})
}

// SearchFoods matches foods by name. Queries shorter than two characters
// return an empty list rather than the whole catalog.
func (a *API) SearchFoods(w http.ResponseWriter, r *http.Request) {
	q, ok, err := searchQuery(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, models.FoodList{Foods: []models.Food{}})
		return
	}
	limit, err := intParam(r, "limit", defaultSearch, maxSearch)
	if err != nil {
		fail(w, r, err)
		return
	}

	a.serveCached(w, r, func() (any, error) {
		foods, err := a.foods.Search(q, limit)
		if err != nil {
			return nil, err
		}
		return models.FoodList{Foods: foods}, nil
	})
}

// RandomFoods serves a random selection for the homepage. Not cached.
func (a *API) RandomFoods(w http.ResponseWriter, r *http.Request) {
	count, err := intParam(r, "count", defaultRandom, maxRandom)
	if err != nil {
		fail(w, r, err)
		return
	}

	foods, err := a.foods.Random(count)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.FoodList{Foods: foods})
}

type slugFinder func(string, []models.CategoryGroup) (string, bool)

// resolveName maps a URL parameter to a category display name. Slugs are
// looked up first; an exact display name is accepted as-is.
func (a *API) resolveName(param string, bySlug slugFinder, names func([]models.CategoryGroup) []string) (string, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return "", notFound("kategori bulunamadı")
	}

	groups, err := a.groups.Groups()
	if err != nil {
		return "", err
	}
	if name, ok := bySlug(param, groups); ok {
		return name, nil
	}
	for _, name := range names(groups) {
		if name == param {
			return name, nil
		}
	}
	return "", notFound("kategori bulunamadı")
}

func mainNames(groups []models.CategoryGroup) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.MainCategory)
	}
	return names
}

func subcategoryNames(groups []models.CategoryGroup) []string {
	var names []string
	for _, g := range groups {
		names = append(names, g.Subcategories...)
	}
	return names
}
