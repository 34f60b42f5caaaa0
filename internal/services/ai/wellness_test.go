package ai

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benvon/youthwell/internal/models"
)

type fakeProvider struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func sampleContext() models.UserContext {
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc := models.UserContext{
		SelectedMood:  "stressed",
		AnalyticsData: models.DefaultAnalytics(),
	}
	for i, text := range []string{"one", "two", "three", "four", "five", "six"} {
		uc.ChatHistory = append(uc.ChatHistory, models.ChatMessage{ID: int64(i + 1), Text: text, IsUser: i%2 == 0, Timestamp: ts})
	}
	return uc
}

func TestGenerateWellnessPlan(t *testing.T) {
	t.Parallel()

	valid := models.WellnessPlan{Meditation: "m", Affirmation: "a", Activity: "x", Color: "bg-red-50"}

	tests := []struct {
		name     string
		mood     string
		provider Provider
		want     models.WellnessPlan
	}{
		{
			name:     "truncated json falls back to anxious plan",
			mood:     "anxious",
			provider: &fakeProvider{reply: `{"meditation": "Breathe in and`},
			want:     DefaultWellnessPlan("anxious"),
		},
		{
			name:     "plain text falls back",
			mood:     "anxious",
			provider: &fakeProvider{reply: "Here is a plan: relax."},
			want:     staticPlans[models.MoodAnxious],
		},
		{
			name:     "missing field falls back",
			mood:     "happy",
			provider: &fakeProvider{reply: `{"meditation": "m", "affirmation": "a", "activity": "x"}`},
			want:     staticPlans[models.MoodHappy],
		},
		{
			name:     "provider error falls back",
			mood:     "Tired",
			provider: &fakeProvider{err: errors.New("boom")},
			want:     staticPlans[models.MoodTired],
		},
		{
			name:     "unknown mood falls back to sad",
			mood:     "bored",
			provider: &fakeProvider{err: errors.New("boom")},
			want:     staticPlans[models.MoodSad],
		},
		{
			name:     "no provider falls back",
			mood:     "calm",
			provider: nil,
			want:     staticPlans[models.MoodCalm],
		},
		{
			name:     "json wrapped in prose and fences",
			mood:     "happy",
			provider: &fakeProvider{reply: "Sure!\n```json\n{\"meditation\": \"m\", \"affirmation\": \"a\", \"activity\": \"x\", \"color\": \"bg-red-50\"}\n```"},
			want:     valid,
		},
		{
			name:     "entities are unescaped before parsing",
			mood:     "happy",
			provider: &fakeProvider{reply: `{&quot;meditation&quot;: &quot;m&quot;, &quot;affirmation&quot;: &quot;a&quot;, &quot;activity&quot;: &quot;x&quot;, &quot;color&quot;: &quot;bg-red-50&quot;}`},
			want:     valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewWellnessService(tt.provider, nil)
			got := svc.GenerateWellnessPlan(context.Background(), tt.mood, sampleContext())
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestGenerateChatResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider *fakeProvider
		want     string
	}{
		{name: "reply unescaped", provider: &fakeProvider{reply: "You&apos;re doing great &amp; I&apos;m proud!"}, want: "You're doing great & I'm proud!"},
		{name: "error yields apology", provider: &fakeProvider{err: errors.New("timeout")}, want: ChatFallbackResponse},
		{name: "blank reply yields apology", provider: &fakeProvider{reply: "  \n"}, want: ChatFallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewWellnessService(tt.provider, nil)
			got := svc.GenerateChatResponse(context.Background(), "I feel overwhelmed", sampleContext())
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if len(tt.provider.prompts) != 1 {
				t.Fatalf("Expected one prompt, got %d", len(tt.provider.prompts))
			}
		})
	}
}

func TestGenerateAnalyticsInsights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
		err   error
		want  models.Insights
	}{
		{
			name:  "full reply",
			reply: `{"pattern": "p", "summary": "s", "recommendation": "r"}`,
			want:  models.Insights{Pattern: "p", Summary: "s", Recommendation: "r"},
		},
		{
			name:  "partial reply filled from defaults",
			reply: `Insights: {"pattern": "p"}`,
			want:  models.Insights{Pattern: "p", Summary: DefaultInsights().Summary, Recommendation: DefaultInsights().Recommendation},
		},
		{name: "malformed reply", reply: "{oops", want: DefaultInsights()},
		{name: "provider error", err: errors.New("503"), want: DefaultInsights()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewWellnessService(&fakeProvider{reply: tt.reply, err: tt.err}, nil)
			got := svc.GenerateAnalyticsInsights(context.Background(), sampleContext())
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestGenerateReminderSuggestions(t *testing.T) {
	t.Parallel()

	three := `[{"time":"08:00","activity":"Walk","reason":"Fresh start"},{"time":"12:00","activity":"Stretch","reason":"Reset"},{"time":"21:00","activity":"Read","reason":"Wind down"}]`

	tests := []struct {
		name  string
		reply string
		want  []models.ReminderSuggestion
	}{
		{
			name:  "three suggestions",
			reply: "Here you go:\n" + three,
			want: []models.ReminderSuggestion{
				{Time: "08:00", Activity: "Walk", Reason: "Fresh start"},
				{Time: "12:00", Activity: "Stretch", Reason: "Reset"},
				{Time: "21:00", Activity: "Read", Reason: "Wind down"},
			},
		},
		{name: "two suggestions", reply: `[{"time":"08:00","activity":"Walk","reason":"r"},{"time":"12:00","activity":"Stretch","reason":"r"}]`, want: DefaultReminderSuggestions()},
		{name: "missing reason", reply: `[{"time":"08:00","activity":"Walk"},{"time":"12:00","activity":"Stretch","reason":"r"},{"time":"13:00","activity":"Nap","reason":"r"}]`, want: DefaultReminderSuggestions()},
		{name: "object instead of array", reply: `{"time":"08:00"}`, want: DefaultReminderSuggestions()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewWellnessService(&fakeProvider{reply: tt.reply}, nil)
			got := svc.GenerateReminderSuggestions(context.Background(), sampleContext())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBuildChatPrompt(t *testing.T) {
	t.Parallel()

	uc := sampleContext()
	prompt := BuildChatPrompt("I can't sleep", uc)

	for _, want := range []string{
		"Current Mood: stressed",
		"Wellness Streak: 12 days",
		"Daily Check-ins: 47",
		"Mood Score: 7.8/10",
		"Wellness Plan: No current plan",
		"AI: two\nUser: three\nAI: four\nUser: five\nAI: six",
		`Current User Message: "I can't sleep"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
	if strings.Contains(prompt, "User: one") {
		t.Error("Expected only the last five turns")
	}
}

func TestBuildChatPrompt_EmptyContext(t *testing.T) {
	t.Parallel()

	prompt := BuildChatPrompt("hi", models.UserContext{})
	for _, want := range []string{"Current Mood: Not specified", "Mood Score: Not available/10", "No previous conversation"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
}

func TestBuildWellnessPrompt(t *testing.T) {
	t.Parallel()

	uc := sampleContext()
	uc.WellnessPlan = &models.WellnessPlan{}
	prompt := BuildWellnessPrompt("anxious", uc)

	for _, want := range []string{
		`someone feeling "anxious"`,
		"Previous mood patterns: 6 interactions",
		"Current wellness plan: Has existing plan",
		"tailored to their anxious mood",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
	if strings.Contains(prompt, "{mood}") {
		t.Error("Expected every mood placeholder to be replaced")
	}
}

func TestBuildReminderAndAnalyticsPrompts(t *testing.T) {
	t.Parallel()

	uc := sampleContext()
	uc.Reminders = models.DefaultReminders()

	if p := BuildReminderPrompt(uc); !strings.Contains(p, "Existing Reminders: 3") || !strings.Contains(p, "JSON array of 3") {
		t.Errorf("Unexpected reminder prompt: %s", p)
	}
	if p := BuildAnalyticsPrompt(uc); !strings.Contains(p, "Community Support: 1234 users") || !strings.Contains(p, "Chat Interactions: 6") {
		t.Errorf("Unexpected analytics prompt: %s", p)
	}
}

func TestParseFailuresAreLogged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   string
		call    func(*WellnessService)
		event   string
		wantLog bool
	}{
		{
			name:    "plan without json",
			reply:   "no json here",
			call:    func(s *WellnessService) { s.GenerateWellnessPlan(context.Background(), "calm", models.UserContext{}) },
			event:   "wellness_plan_fallback",
			wantLog: true,
		},
		{
			name:    "plan that fails validation",
			reply:   `{"meditation": "m"}`,
			call:    func(s *WellnessService) { s.GenerateWellnessPlan(context.Background(), "calm", models.UserContext{}) },
			event:   "wellness_plan_fallback",
			wantLog: true,
		},
		{
			name:  "complete plan",
			reply: `{"meditation": "m", "affirmation": "a", "activity": "x", "color": "c"}`,
			call:  func(s *WellnessService) { s.GenerateWellnessPlan(context.Background(), "calm", models.UserContext{}) },
			event: "wellness_plan_fallback",
		},
		{
			name:    "insights that do not decode",
			reply:   `{"pattern": 3}`,
			call:    func(s *WellnessService) { s.GenerateAnalyticsInsights(context.Background(), models.UserContext{}) },
			event:   "analytics_insights_fallback",
			wantLog: true,
		},
		{
			name:  "partial insights are accepted",
			reply: `{"pattern": "p"}`,
			call:  func(s *WellnessService) { s.GenerateAnalyticsInsights(context.Background(), models.UserContext{}) },
			event: "analytics_insights_fallback",
		},
		{
			name:    "two suggestions",
			reply:   `[{"time": "t", "activity": "a", "reason": "r"}, {"time": "t", "activity": "a", "reason": "r"}]`,
			call:    func(s *WellnessService) { s.GenerateReminderSuggestions(context.Background(), models.UserContext{}) },
			event:   "reminder_suggestions_fallback",
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zap.InfoLevel)
			tt.call(NewWellnessService(&fakeProvider{reply: tt.reply}, zap.New(core)))

			if got := logs.FilterMessage(tt.event).Len() == 1; got != tt.wantLog {
				t.Errorf("Expected %s logged=%v, got entries %v", tt.event, tt.wantLog, logs.All())
			}
		})
	}
}
