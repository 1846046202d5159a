package httpx

import (
	"net/http"

	"github.com/google/uuid"

	"bookcatalog/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware echoes X-Request-Id or generates one, and stores it
// for request-scoped logging.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	return logging.RequestIDFromContext(r.Context())
}
