package middleware

import (
	"net/http"
	"time"

	"github.com/hongminglow/puzzle-be/internal/logging"
)

// Logging writes one access-log entry per request once the handler returns.
// Downstream code can reach a logger tagged with the request ID through
// logging.FromContext.
func Logging(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		reqLogger := logger.With("request_id", RequestIDFromContext(r.Context()))

		next.ServeHTTP(rec, r.WithContext(logging.NewContext(r.Context(), reqLogger)))

		reqLogger.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
