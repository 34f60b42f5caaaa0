package middleware

import (
	"mime"
	"net/http"
)

const jsonMediaType = "application/json"

// ContentType rejects request bodies that are not JSON. Every API route is a
// JSON POST; requests without a body method pass through.
func ContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Content-Type")
		if header == "" {
			WriteError(w, http.StatusBadRequest, "Content-Type header is required", nil)
			return
		}
		mediaType, _, err := mime.ParseMediaType(header)
		if err != nil || mediaType != jsonMediaType {
			WriteError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
