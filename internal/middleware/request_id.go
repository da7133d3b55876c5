package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"storepay/internal/logger"
)

// RequestID tags every request with an id, reusing the client's
// X-Request-ID when present, and injects it for logger.FromCtx.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := logger.WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
