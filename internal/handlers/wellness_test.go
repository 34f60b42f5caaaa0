package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/middleware"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/services/ai"
)

type fakeProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func newWellnessRouter(p ai.Provider) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	NewWellnessHandler(ai.NewWellnessService(p, zap.NewNop()), zap.NewNop()).RegisterRoutes(api)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body middleware.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func TestWellnessHandler_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{name: "wellness empty object", path: "/api/wellness", body: `{}`, wantMsg: "Mood is required"},
		{name: "wellness empty body", path: "/api/wellness", body: ``, wantMsg: "Mood is required"},
		{name: "wellness blank mood", path: "/api/wellness", body: `{"mood":"  "}`, wantMsg: "Mood is required"},
		{name: "chat missing message", path: "/api/chat", body: `{"context":{}}`, wantMsg: "Message is required"},
		{name: "chat malformed json", path: "/api/chat", body: `{"message":`, wantMsg: "Invalid request body"},
		{name: "analytics malformed json", path: "/api/analytics", body: `[`, wantMsg: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &fakeProvider{reply: "unused"}
			w := post(t, newWellnessRouter(provider), tt.path, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			if got := errorMessage(t, w); got != tt.wantMsg {
				t.Errorf("Expected error %q, got %q", tt.wantMsg, got)
			}
			if len(provider.prompts) != 0 {
				t.Error("Expected the model not to be called")
			}
		})
	}
}

func TestWellnessHandler_Chat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider *fakeProvider
		want     string
	}{
		{name: "model reply unescaped", provider: &fakeProvider{reply: "You&apos;re doing great"}, want: "You're doing great"},
		{name: "model failure apologizes", provider: &fakeProvider{err: errors.New("boom")}, want: ai.ChatFallbackResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := `{"message":"I feel stressed about exams","context":{"selectedMood":"stressed","reminders":[],"chatHistory":[],"analyticsData":{"moodScore":6.5}}}`
			w := post(t, newWellnessRouter(tt.provider), "/api/chat", body)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}
			var resp models.ChatResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Response != tt.want {
				t.Errorf("Expected response %q, got %q", tt.want, resp.Response)
			}
			if len(tt.provider.prompts) != 1 || !strings.Contains(tt.provider.prompts[0], "I feel stressed about exams") {
				t.Errorf("Expected the prompt to embed the message, got %v", tt.provider.prompts)
			}
		})
	}
}

func TestWellnessHandler_Wellness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mood     string
		provider *fakeProvider
		want     models.WellnessPlan
	}{
		{
			name:     "valid model plan",
			mood:     "calm",
			provider: &fakeProvider{reply: "Here you go: {\"meditation\":\"m\",\"affirmation\":\"a\",\"activity\":\"x\",\"color\":\"bg-blue-50\"}"},
			want:     models.WellnessPlan{Meditation: "m", Affirmation: "a", Activity: "x", Color: "bg-blue-50"},
		},
		{
			name:     "invalid json yields anxious plan",
			mood:     "anxious",
			provider: &fakeProvider{reply: `{"meditation": "Breathe`},
			want:     ai.DefaultWellnessPlan("anxious"),
		},
		{
			name:     "unknown mood falls back to sad plan",
			mood:     "grumpy",
			provider: &fakeProvider{err: errors.New("timeout")},
			want:     ai.DefaultWellnessPlan("sad"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := post(t, newWellnessRouter(tt.provider), "/api/wellness", `{"mood":"`+tt.mood+`"}`)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}
			var resp models.WellnessResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.WellnessPlan != tt.want {
				t.Errorf("Expected plan %+v, got %+v", tt.want, resp.WellnessPlan)
			}
		})
	}
}

func TestWellnessHandler_AnalyticsFallback(t *testing.T) {
	t.Parallel()

	w := post(t, newWellnessRouter(&fakeProvider{reply: "not json"}), "/api/analytics", `{"context":{}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp models.AnalyticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Insights != ai.DefaultInsights() {
		t.Errorf("Expected default insights, got %+v", resp.Insights)
	}
}

func TestWellnessHandler_Reminders(t *testing.T) {
	t.Parallel()

	reply := `[{"time":"08:00","activity":"Stretch","reason":"Wake up"},{"time":"12:00","activity":"Walk","reason":"Reset"},{"time":"21:00","activity":"Journal","reason":"Reflect"}]`

	tests := []struct {
		name      string
		provider  *fakeProvider
		wantFirst string
	}{
		{name: "model suggestions", provider: &fakeProvider{reply: reply}, wantFirst: "Stretch"},
		{name: "no provider reply", provider: &fakeProvider{err: errors.New("quota")}, wantFirst: ai.DefaultReminderSuggestions()[0].Activity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := post(t, newWellnessRouter(tt.provider), "/api/reminders", ``)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}
			var resp models.RemindersResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if len(resp.Suggestions) != ai.ReminderSuggestionCount {
				t.Fatalf("Expected %d suggestions, got %d", ai.ReminderSuggestionCount, len(resp.Suggestions))
			}
			if resp.Suggestions[0].Activity != tt.wantFirst {
				t.Errorf("Expected first activity %q, got %q", tt.wantFirst, resp.Suggestions[0].Activity)
			}
		})
	}
}

func TestWellnessHandler_NilProvider(t *testing.T) {
	t.Parallel()

	r := mux.NewRouter()
	NewWellnessHandler(ai.NewWellnessService(nil, zap.NewNop()), nil).RegisterRoutes(r.PathPrefix("/api").Subrouter())

	w := post(t, r, "/api/chat", `{"message":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "having trouble") {
		t.Errorf("Expected fallback reply, got %s", w.Body.String())
	}
}
