package middleware

import (
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/request"
)

// Audit logs rejected and failed requests for monitoring.
func Audit(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			fields := func() []zap.Field {
				return []zap.Field{
					zap.Int("status_code", wrapped.statusCode),
					zap.String("method", r.Method),
					zap.String("path", logpkg.SanitizePath(r.URL.Path)),
					zap.String("ip", logpkg.SanitizeString(request.ClientIP(r), logpkg.MaxGeneralStringLength)),
					zap.String("request_id", request.RequestID(r.Context())),
				}
			}

			switch status := wrapped.statusCode; {
			case status == http.StatusTooManyRequests:
				logger.Warn("rate_limit_violation", fields()...)
			case status == http.StatusRequestEntityTooLarge, status == http.StatusUnsupportedMediaType:
				logger.Warn("request_rejected", fields()...)
			case status >= http.StatusInternalServerError:
				logger.Warn("server_error_response", fields()...)
			}
		})
	}
}
