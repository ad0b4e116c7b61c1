package handler

import (
	"net/http"
	"time"

	"seo-keyword-finder/internal/domain"

	"github.com/gorilla/mux"
)

// RequestLogging logs each request with its duration.
func RequestLogging(logger domain.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("Request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
