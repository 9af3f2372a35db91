// Package middleware holds the transport-level HTTP middleware shared by every route.
package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength bounds inbound request IDs accepted from clients.
const maxRequestIDLength = 128

// validRequestID reports whether id is non-empty, bounded, and printable ASCII only,
// so it can be echoed and logged without enabling header or log injection.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// RequestID stores a request identifier under chi's RequestIDKey and echoes it in X-Request-Id.
// A valid inbound X-Request-Id is reused; otherwise a UUIDv4 is generated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(chimiddleware.RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(chimiddleware.RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
