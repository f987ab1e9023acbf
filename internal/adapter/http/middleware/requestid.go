package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
)

// RequestID tags every request with a fresh identifier, carried both in the
// log context and the X-Request-Id response header.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()

		w.Header().Set("X-Request-Id", id)
		ctx := wrap.WithRequestID(r.Context(), id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
