// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory fakes for the food catalog so the
// API handlers can be tested without PostgreSQL or Valkey.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/models"
	"besinrehberi/internal/slug"
)

// fakeFoods is an in-memory FoodReader.
type fakeFoods struct {
	mu    sync.Mutex
	foods []models.Food
	err   error

	searches []string
}

func newFakeFoods() *fakeFoods {
	mk := func(name, cat, sub string, kcal float64) models.Food {
		return models.Food{Name: name, Slug: slug.Generate(name), Category: cat, Subcategory: sub, Calories: kcal}
	}
	return &fakeFoods{foods: []models.Food{
		mk("Elma", "Meyveler", "Taze Meyveler", 52),
		mk("Armut", "Meyveler", "Taze Meyveler", 57),
		mk("Kuru Kayısı", "Meyveler", "Kuru Meyveler", 241),
		mk("Ispanak", "Sebzeler", "Yeşil Yapraklılar", 23),
		mk("Sütlaç", "Tatlılar", "Sütlü Tatlılar", 130),
	}}
}

func (f *fakeFoods) List(page, limit int) (*models.FoodPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := (page - 1) * limit
	items := []models.Food{}
	for i := start; i < len(f.foods) && i < start+limit; i++ {
		items = append(items, f.foods[i])
	}
	return &models.FoodPage{
		Items:      items,
		Page:       page,
		TotalPages: (len(f.foods) + limit - 1) / limit,
		Total:      len(f.foods),
	}, nil
}

func (f *fakeFoods) FindBySlug(s string) (*models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.foods {
		if f.foods[i].Slug == s {
			food := f.foods[i]
			return &food, nil
		}
	}
	return nil, nil
}

func (f *fakeFoods) Alternatives(food *models.Food, n int) ([]models.Food, error) {
	out := []models.Food{}
	for _, c := range f.foods {
		if c.Slug != food.Slug && c.Category == food.Category && len(out) < n {
			out = append(out, c)
		}
	}
	return out, f.err
}

func (f *fakeFoods) filter(keep func(models.Food) bool) ([]models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Food{}
	for _, c := range f.foods {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeFoods) ListByCategory(name string) ([]models.Food, error) {
	return f.filter(func(c models.Food) bool { return c.Category == name })
}

func (f *fakeFoods) ListBySubcategory(name string) ([]models.Food, error) {
	return f.filter(func(c models.Food) bool { return c.Subcategory == name })
}

func (f *fakeFoods) Search(q string, limit int) ([]models.Food, error) {
	f.mu.Lock()
	f.searches = append(f.searches, q)
	f.mu.Unlock()
	sq := slug.Generate(q)
	return f.filter(func(c models.Food) bool {
		return strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) || strings.Contains(c.Slug, sq)
	})
}

func (f *fakeFoods) Random(n int) ([]models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	if n > len(f.foods) {
		n = len(f.foods)
	}
	return append([]models.Food{}, f.foods[:n]...), nil
}

// fakeGroups derives groups from a fakeFoods catalog.
type fakeGroups struct {
	groups []models.CategoryGroup
	err    error
}

func (g *fakeGroups) Groups() ([]models.CategoryGroup, error) { return g.groups, g.err }

var testGroups = []models.CategoryGroup{
	{MainCategory: "Meyveler", Subcategories: []string{"Kuru Meyveler", "Taze Meyveler"}},
	{MainCategory: "Sebzeler", Subcategories: []string{"Yeşil Yapraklılar"}},
	{MainCategory: "Tatlılar", Subcategories: []string{"Sütlü Tatlılar"}},
}

// newTestAPI wires an API over fakes into a chi router with the same
// paths the production router uses.
func newTestAPI(t *testing.T) (http.Handler, *fakeFoods, *fakeGroups) {
	t.Helper()
	foods := newFakeFoods()
	groups := &fakeGroups{groups: testGroups}
	api := NewAPI(foods, groups, nil)

	r := chi.NewRouter()
	r.Get("/api/category-groups", api.CategoryGroups)
	r.Get("/api/categories/resolve/{category}", api.ResolveCategory)
	r.Get("/api/categories/resolve/{category}/{subcategory}", api.ResolveCategory)
	r.Get("/api/foods", api.ListFoods)
	r.Get("/api/foods/search", api.SearchFoods)
	r.Get("/api/foods/category/{category}", api.FoodsByCategory)
	r.Get("/api/foods/subcategory/{subcategory}", api.FoodsBySubcategory)
	r.Get("/api/foods/{slug}", api.FoodDetail)
	r.Get("/api/random", api.RandomFoods)
	r.Get("/api/calculators", ListCalculators)
	r.Get("/api/calculators/{name}", RunCalculator)
	r.Post("/api/calculators/{name}", RunCalculator)
	return r, foods, groups
}

// do performs a request against h and returns the recorder.
func do(t *testing.T, h http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into v, failing the test on error.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

var errStore = errors.New("connection refused")
