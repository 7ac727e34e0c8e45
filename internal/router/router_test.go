// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"besinrehberi/internal/handlers"
	"besinrehberi/internal/middleware"
	"besinrehberi/internal/models"
)

// stubFoods is a FoodReader with a single food.
type stubFoods struct{}

var stubFood = models.Food{Name: "Elma", Slug: "elma", Category: "Meyveler", Subcategory: "Taze Meyveler"}

func (stubFoods) List(page, limit int) (*models.FoodPage, error) {
	return &models.FoodPage{Items: []models.Food{stubFood}, Page: page, TotalPages: 1, Total: 1}, nil
}
func (stubFoods) FindBySlug(s string) (*models.Food, error) {
	if s == stubFood.Slug {
		f := stubFood
		return &f, nil
	}
	return nil, nil
}
func (stubFoods) Alternatives(*models.Food, int) ([]models.Food, error) { return []models.Food{}, nil }
func (stubFoods) ListByCategory(string) ([]models.Food, error) { return []models.Food{stubFood}, nil }
func (stubFoods) ListBySubcategory(string) ([]models.Food, error) { return []models.Food{stubFood}, nil }
func (stubFoods) Search(string, int) ([]models.Food, error) { return []models.Food{stubFood}, nil }
func (stubFoods) Random(int) ([]models.Food, error) { return []models.Food{stubFood}, nil }

type stubGroups struct{}

func (stubGroups) Groups() ([]models.CategoryGroup, error) {
	return []models.CategoryGroup{{MainCategory: "Meyveler", Subcategories: []string{"Taze Meyveler"}}}, nil
}

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()
	pages, err := handlers.LoadPages(fstest.MapFS{
		"pages/kvkk.md": {Data: []byte("# KVKK\n\nMetin.")},
	})
	if err != nil {
		t.Fatalf("LoadPages: %v", err)
	}
	limiter := middleware.NewRateLimiter(rateLimit, time.Minute, false)
	t.Cleanup(limiter.Stop)

	api := handlers.NewAPI(stubFoods{}, stubGroups{}, nil)
	return New(api, pages, limiter, []string{"http://localhost:5173"})
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRoutes(t *testing.T) {
	h := newTestRouter(t, 100)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/api/category-groups", http.StatusOK},
		{"GET", "/api/categories/resolve/meyveler", http.StatusOK},
		{"GET", "/api/categories/resolve/meyveler/taze-meyveler", http.StatusOK},
		{"GET", "/api/categories/resolve/meyveler/kuru-meyveler", http.StatusNotFound},
		{"GET", "/api/foods", http.StatusOK},
		{"GET", "/api/foods/elma", http.StatusOK},
		{"GET", "/api/foods/armut", http.StatusNotFound},
		{"GET", "/api/foods/search?q=elma", http.StatusOK},
		{"GET", "/api/foods/category/meyveler", http.StatusOK},
		{"GET", "/api/foods/subcategory/taze-meyveler", http.StatusOK},
		{"GET", "/api/random?count=3", http.StatusOK},
		{"GET", "/api/calculators", http.StatusOK},
		{"GET", "/api/calculators/ideal-kilo", http.StatusOK},
		{"POST", "/api/calculators/ideal-kilo", http.StatusOK},
		{"GET", "/api/calculators/yok", http.StatusNotFound},
		{"GET", "/api/pages", http.StatusOK},
		{"GET", "/api/pages/kvkk", http.StatusOK},
		{"GET", "/api/pages/yok", http.StatusNotFound},
		{"GET", "/api/unknown", http.StatusNotFound},
		{"DELETE", "/api/foods", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d (%s)", rr.Code, tt.want, rr.Body.String())
			}
			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("secure headers missing")
			}
			if rr.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("request id missing")
			}
		})
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	h := newTestRouter(t, 1)

	send := func(path string) int {
		req := httptest.NewRequest("GET", path, nil)
		req.RemoteAddr = "10.1.2.3:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if got := send("/api/foods/search?q=elma"); got != http.StatusOK {
		t.Fatalf("first search: got %d, want 200", got)
	}
	if got := send("/api/calculators/ideal-kilo"); got != http.StatusTooManyRequests {
		t.Errorf("calculator after exhausting limit: got %d, want 429", got)
	}
	// Plain catalog reads are not limited.
	for i := 0; i < 3; i++ {
		if got := send("/api/foods/elma"); got != http.StatusOK {
			t.Errorf("food detail %d: got %d, want 200", i, got)
		}
	}
}
