package middleware

import (
	"net/http"
	"time"
)

// DefaultRequestTimeout applies when no positive timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

const timeoutBody = `{"error":"Request Timeout"}`

// Timeout cancels the request context after d and answers 503 with a JSON
// body. The context reaches the model and mail calls, so a slow provider is
// abandoned rather than left running.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		d = DefaultRequestTimeout
	}
	return func(next http.Handler) http.Handler {
		h := http.TimeoutHandler(next, d, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// TimeoutHandler writes its body without a content type.
			w.Header().Set("Content-Type", "application/json")
			h.ServeHTTP(w, r)
		})
	}
}
