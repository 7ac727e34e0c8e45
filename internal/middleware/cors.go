package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the single-page frontend, served from a different origin,
// to call the API. Only read requests and calculator POSTs are expected.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "X-Cache", "Retry-After"},
		MaxAge:         600,
	})
	return c.Handler
}
