// Package middleware provides various middleware functionality.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Type statusRecorder redefines http.ResponseWriter keeping the written status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader method redefines default http.ResponseWriter WriteHeader method.
func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// Write method redefines default http.ResponseWriter Write method.
func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// RequestLogger serves as a middleware handler logging every request with its
// outcome and latency.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			if recorder.statusCode == 0 {
				recorder.statusCode = http.StatusOK
			}
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.statusCode).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
