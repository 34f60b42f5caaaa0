// Package client calls the YouthWell HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/request"
)

// DefaultTimeout covers one model call plus the server's own overhead.
const DefaultTimeout = 45 * time.Second

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Error is a non-2xx API response.
type Error struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a JSON client for the /api routes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat returns the assistant reply to message.
func (c *Client) Chat(ctx context.Context, message string, uc models.UserContext) (string, error) {
	var resp models.ChatResponse
	if err := c.post(ctx, "/api/chat", models.ChatRequest{Message: message, Context: &uc}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// WellnessPlan returns a plan for mood.
func (c *Client) WellnessPlan(ctx context.Context, mood string, uc models.UserContext) (models.WellnessPlan, error) {
	var resp models.WellnessResponse
	if err := c.post(ctx, "/api/wellness", models.WellnessRequest{Mood: mood, Context: &uc}, &resp); err != nil {
		return models.WellnessPlan{}, err
	}
	return resp.WellnessPlan, nil
}

// Insights returns the analytics summary for uc.
func (c *Client) Insights(ctx context.Context, uc models.UserContext) (models.Insights, error) {
	var resp models.AnalyticsResponse
	if err := c.post(ctx, "/api/analytics", models.ContextRequest{Context: &uc}, &resp); err != nil {
		return models.Insights{}, err
	}
	return resp.Insights, nil
}

// ReminderSuggestions returns suggested reminders for uc.
func (c *Client) ReminderSuggestions(ctx context.Context, uc models.UserContext) ([]models.ReminderSuggestion, error) {
	var resp models.RemindersResponse
	if err := c.post(ctx, "/api/reminders", models.ContextRequest{Context: &uc}, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// Contact submits the contact form.
func (c *Client) Contact(ctx context.Context, req models.ContactRequest) (models.ContactResponse, error) {
	var resp models.ContactResponse
	if err := c.post(ctx, "/api/contact", req, &resp); err != nil {
		return models.ContactResponse{}, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(request.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api_request_failed",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api_request",
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
