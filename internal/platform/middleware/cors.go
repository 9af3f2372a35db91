package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORS allows cross-origin reads from allowedOrigins ("*" when none are given).
// The API is read-only, so only safe methods are allowed.
func CORS(allowedOrigins ...string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			chimiddleware.RequestIDHeader,
		},
		ExposedHeaders: []string{chimiddleware.RequestIDHeader},
		MaxAge:         300,
	})
}
