// Package requesttime provides middleware for request-scoped time.
// All operations within a single HTTP request observe the same "now",
// keeping log timestamps and time-sensitive decisions consistent.
package requesttime

import (
	"net/http"
	"time"

	"santa/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request and
// stores it in the context for the rest of the chain.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		ctx := requestcontext.WithTime(r.Context(), now)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
