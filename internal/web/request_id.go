package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestIDMiddleware tags every request with a generated ID, exposed in the
// X-Request-ID response header and attached to the request-scoped logger.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}
