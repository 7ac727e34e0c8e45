// Package router sets up all HTTP routes and middleware chains for the
// besinrehberi API. Every route lives under /api except the health check.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/handlers"
	"besinrehberi/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter guards the search and calculator
// routes.
func New(api *handlers.API, pages *handlers.Pages, limiter *middleware.RateLimiter, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	// RequestID comes first so panics and access logs share the same ID.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(corsOrigins))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/category-groups", api.CategoryGroups)
		r.Get("/categories/resolve/{category}", api.ResolveCategory)
		r.Get("/categories/resolve/{category}/{subcategory}", api.ResolveCategory)

		r.Route("/foods", func(r chi.Router) {
			r.Get("/", api.ListFoods)
			r.With(limiter.Middleware).Get("/search", api.SearchFoods)
			r.Get("/category/{category}", api.FoodsByCategory)
			r.Get("/subcategory/{subcategory}", api.FoodsBySubcategory)
			r.Get("/{slug}", api.FoodDetail)
		})

		r.Get("/random", api.RandomFoods)

		r.Route("/calculators", func(r chi.Router) {
			r.Get("/", handlers.ListCalculators)
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Get("/{name}", handlers.RunCalculator)
				r.Post("/{name}", handlers.RunCalculator)
			})
		})

		r.Get("/pages", pages.List)
		r.Get("/pages/{slug}", pages.Get)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"bulunamadı"}` + "\n"))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"yöntem desteklenmiyor"}` + "\n"))
}
