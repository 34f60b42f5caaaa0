package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Version is the build version reported by /version. Set with -ldflags.
var Version = "1.0.0"

// Pinger is a dependency the extended health check can reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker handles health check requests
type HealthChecker struct {
	rateLimitStore Pinger
	aiProvider     string
	mailConfigured bool
}

// NewHealthChecker creates a new health checker. aiProvider is the name of
// the configured model provider, "" when none is available.
func NewHealthChecker(rateLimitStore Pinger, aiProvider string, mailConfigured bool) *HealthChecker {
	return &HealthChecker{
		rateLimitStore: rateLimitStore,
		aiProvider:     aiProvider,
		mailConfigured: mailConfigured,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	statusCode := http.StatusOK
	if r.URL.Query().Get("mode") == "extended" {
		checks := make(map[string]string)

		if err := h.checkRateLimitStore(r.Context()); err != nil {
			response.Status = "unhealthy"
			checks["rate_limit_store"] = "unhealthy: " + sanitizeErrorMessage(err.Error())
		} else {
			checks["rate_limit_store"] = "healthy"
		}

		// A missing model or mail relay degrades to fallbacks, it does not fail the check
		if h.aiProvider != "" {
			checks["ai_provider"] = "configured: " + h.aiProvider
		} else {
			checks["ai_provider"] = "not configured: static fallbacks only"
		}
		if h.mailConfigured {
			checks["mail"] = "configured"
		} else {
			checks["mail"] = "not configured"
		}

		response.Checks = checks
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

func (h *HealthChecker) checkRateLimitStore(ctx context.Context) error {
	if h.rateLimitStore == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return h.rateLimitStore.Ping(ctx)
}

// LegacyHealth handles the /health endpoint
func LegacyHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// VersionInfo handles the /version endpoint
func VersionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
