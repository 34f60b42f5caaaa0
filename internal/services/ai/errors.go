package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
)

var (
	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")
	// ErrQuotaExceeded indicates the account has no quota left.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrEmptyResponse indicates the model replied without any text.
	ErrEmptyResponse = errors.New("empty response from model")
)

const (
	rateLimitRetryAfter = time.Minute
	quotaRetryAfter     = time.Hour
)

// APIError is a provider failure reduced to what the service logs. Nothing
// retries on it: every failure falls back to the static content.
type APIError struct {
	Provider    string
	Message     string
	Type        string
	Code        string
	StatusCode  int
	RetryAfter  *time.Duration
	IsPermanent bool // quota exhaustion rather than throttling
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d, type %s): %s", e.Provider, e.StatusCode, e.Type, e.Message)
}

// Is lets callers match the sentinels with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrQuotaExceeded:
		return e.IsPermanent
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests && !e.IsPermanent
	}
	return false
}

// IsRateLimitError reports whether err is provider throttling.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errors.Is(apiErr, ErrRateLimited)
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests")
}

// IsQuotaError reports whether err is quota or billing exhaustion.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsPermanent
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "billing")
}

// ExtractAPIError converts a throttling or quota failure from either SDK
// into an APIError. Other failures return nil.
func ExtractAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	var oaErr *openai.Error
	if errors.As(err, &oaErr) {
		if oaErr.StatusCode != http.StatusTooManyRequests {
			return nil
		}
		return newAPIError(ProviderOpenAI, oaErr.StatusCode, oaErr.Type, oaErr.Code, oaErr.Message)
	}

	// The Gemini SDK reports status and body in the message.
	msg := err.Error()
	if !strings.Contains(msg, "429") && !strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return nil
	}
	body := struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
		Status  string `json:"status"`
	}{Message: msg, Type: "rate_limit_error"}
	if start, end := strings.Index(msg, "{"), strings.LastIndex(msg, "}"); start != -1 && end > start {
		_ = json.Unmarshal([]byte(msg[start:end+1]), &body)
	}
	if body.Code == "" {
		body.Code = body.Status
	}
	return newAPIError(ProviderGemini, http.StatusTooManyRequests, body.Type, body.Code, body.Message)
}

func newAPIError(provider string, status int, typ, code, message string) *APIError {
	e := &APIError{
		Provider:   provider,
		Message:    message,
		Type:       typ,
		Code:       code,
		StatusCode: status,
	}
	lower := strings.ToLower(message)
	e.IsPermanent = code == "insufficient_quota" || strings.Contains(lower, "billing") || strings.Contains(lower, "exceeded your current quota")

	retry := rateLimitRetryAfter
	if e.IsPermanent {
		retry = quotaRetryAfter
	}
	e.RetryAfter = &retry
	return e
}
