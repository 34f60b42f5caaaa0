package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/metrics"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/request"
	"github.com/benvon/youthwell/internal/telemetry"
)

// ErrNoProvider is reported when the service runs without a configured model.
var ErrNoProvider = errors.New("no AI provider configured")

// WellnessService turns a UserContext into model prompts and parses the
// replies. Every method is total: failures resolve to static fallbacks.
type WellnessService struct {
	provider Provider
	logger   *zap.Logger
}

// NewWellnessService creates a service over provider. A nil provider makes
// every method return its fallback.
func NewWellnessService(provider Provider, logger *zap.Logger) *WellnessService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WellnessService{provider: provider, logger: logger}
}

// Provider returns the underlying provider, or nil.
func (s *WellnessService) Provider() Provider {
	return s.provider
}

// generate calls the provider and unescapes the reply.
func (s *WellnessService) generate(ctx context.Context, operation, prompt string) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}
	ctx, span := telemetry.StartSpan(ctx, "llm.generate",
		attribute.String("llm.operation", operation),
		attribute.String("llm.provider", s.provider.Name()),
	)
	start := time.Now()
	raw, err := s.provider.Generate(ctx, prompt)
	metrics.ObserveLLM(s.provider.Name(), operation, time.Since(start), err)
	telemetry.EndSpan(span, err)
	if err != nil {
		s.logger.Warn("llm_generate_failed",
			zap.String("operation", operation),
			zap.String("provider", s.provider.Name()),
			zap.Bool("rate_limited", IsRateLimitError(err)),
			zap.Bool("quota_exceeded", IsQuotaError(err)),
			zap.String("request_id", request.RequestID(ctx)),
			zap.Error(err),
		)
		return "", err
	}
	return UnescapeHTMLEntities(raw), nil
}

func (s *WellnessService) fallback(ctx context.Context, event, operation string) {
	metrics.FallbacksTotal.WithLabelValues(operation).Inc()
	s.logger.Info(event,
		zap.String("operation", operation),
		zap.String("request_id", request.RequestID(ctx)),
	)
}

// GenerateChatResponse replies to message. The reply is free text.
func (s *WellnessService) GenerateChatResponse(ctx context.Context, message string, uc models.UserContext) string {
	reply, err := s.generate(ctx, "chat", BuildChatPrompt(message, uc))
	if err != nil {
		return ChatFallbackResponse
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		s.fallback(ctx, "chat_response_fallback", "chat")
		return ChatFallbackResponse
	}
	return reply
}

// GenerateWellnessPlan returns a plan for mood, or the static plan for that mood.
func (s *WellnessService) GenerateWellnessPlan(ctx context.Context, mood string, uc models.UserContext) models.WellnessPlan {
	fallback := DefaultWellnessPlan(mood)
	raw, err := s.generate(ctx, "wellness", BuildWellnessPrompt(mood, uc))
	if err != nil {
		return fallback
	}
	return parseOrFallback(ctx, s, "wellness_plan_fallback", "wellness", raw, ExtractJSONObject, models.WellnessPlan.Complete, fallback)
}

// GenerateAnalyticsInsights summarizes the analytics counters. Fields the model
// leaves empty are filled from the static insights.
func (s *WellnessService) GenerateAnalyticsInsights(ctx context.Context, uc models.UserContext) models.Insights {
	defaults := DefaultInsights()
	raw, err := s.generate(ctx, "analytics", BuildAnalyticsPrompt(uc))
	if err != nil {
		return defaults
	}
	insights := parseOrFallback(ctx, s, "analytics_insights_fallback", "analytics", raw, ExtractJSONObject, nil, defaults)
	insights.Pattern = orDefault(strings.TrimSpace(insights.Pattern), defaults.Pattern)
	insights.Summary = orDefault(strings.TrimSpace(insights.Summary), defaults.Summary)
	insights.Recommendation = orDefault(strings.TrimSpace(insights.Recommendation), defaults.Recommendation)
	return insights
}

// GenerateReminderSuggestions returns exactly three suggestions.
func (s *WellnessService) GenerateReminderSuggestions(ctx context.Context, uc models.UserContext) []models.ReminderSuggestion {
	raw, err := s.generate(ctx, "reminders", BuildReminderPrompt(uc))
	if err != nil {
		return DefaultReminderSuggestions()
	}
	return parseOrFallback(ctx, s, "reminder_suggestions_fallback", "reminders", raw, ExtractJSONArray, validSuggestions, DefaultReminderSuggestions())
}

// parseOrFallback is ParseWithFallback that logs and counts the fallback.
// validate only runs once extraction and decoding succeed.
func parseOrFallback[T any](ctx context.Context, s *WellnessService, event, operation, raw string, extract func(string) (string, bool), validate func(T) bool, fallback T) T {
	accepted := false
	v := ParseWithFallback(raw, extract, func(v T) bool {
		accepted = validate == nil || validate(v)
		return accepted
	}, fallback)
	if !accepted {
		s.fallback(ctx, event, operation)
	}
	return v
}

func validSuggestions(list []models.ReminderSuggestion) bool {
	if len(list) != ReminderSuggestionCount {
		return false
	}
	for _, r := range list {
		if r.Time == "" || r.Activity == "" || r.Reason == "" {
			return false
		}
	}
	return true
}
