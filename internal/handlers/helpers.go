package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/middleware"
)

// maxDetailsLength bounds the details field of an error response.
const maxDetailsLength = 200

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed_to_encode_response", zap.Error(err), zap.Int("status_code", status))
	}
}

// respondJSONError sends {"error": message}
func respondJSONError(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	middleware.WriteError(w, status, message, logger)
}

// respondJSONErrorDetails sends {"error": message, "details": ...} with the
// details truncated so internals do not leak in full.
func respondJSONErrorDetails(w http.ResponseWriter, status int, message, details string, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := middleware.ErrorResponse{
		Error:   message,
		Details: sanitizeErrorMessage(details),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed_to_encode_error_response", zap.Error(err), zap.Int("status_code", status))
	}
}

// sanitizeErrorMessage removes internal details from error messages
func sanitizeErrorMessage(message string) string {
	return logpkg.SanitizeString(message, maxDetailsLength)
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so the required field checks report it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
