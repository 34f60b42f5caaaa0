package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/request"
)

func TestClient_Chat(t *testing.T) {
	t.Parallel()

	var got models.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		if r.Header.Get(request.RequestIDHeader) == "" {
			t.Error("Expected a request id header")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"Take a deep breath."}`))
	}))
	defer srv.Close()

	uc := models.UserContext{SelectedMood: "stressed", AnalyticsData: models.DefaultAnalytics()}
	reply, err := New(srv.URL+"/").Chat(context.Background(), "exam tomorrow", uc)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Take a deep breath." {
		t.Errorf("Unexpected reply %q", reply)
	}
	if got.Message != "exam tomorrow" || got.Context == nil || got.Context.SelectedMood != "stressed" {
		t.Errorf("Unexpected request body %+v", got)
	}
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantDetails string
	}{
		{name: "json error", status: http.StatusBadRequest, body: `{"error":"Mood is required"}`, wantMessage: "Mood is required"},
		{name: "json error with details", status: http.StatusInternalServerError, body: `{"error":"Email configuration failed. Please check your credentials.","details":"535"}`, wantMessage: "Email configuration failed. Please check your credentials.", wantDetails: "535"},
		{name: "plain text", status: http.StatusBadGateway, body: "upstream down", wantMessage: "upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, body: "", wantMessage: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).WellnessPlan(context.Background(), "", models.UserContext{})
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *Error, got %v", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Message != tt.wantMessage || apiErr.Details != tt.wantDetails {
				t.Errorf("Unexpected error %+v", apiErr)
			}
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(20*time.Millisecond)).Insights(context.Background(), models.UserContext{})
	if err == nil {
		t.Fatal("Expected a timeout error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("Expected a transport error, got API error %v", apiErr)
	}
}

func TestClient_RemindersAndContact(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/reminders", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"suggestions":[{"time":"08:00","activity":"Stretch","reason":"Energy"}]}`))
	})
	mux.HandleFunc("/api/contact", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Your message has been sent successfully!","ticketId":"YW042"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)

	suggestions, err := c.ReminderSuggestions(context.Background(), models.UserContext{})
	if err != nil {
		t.Fatalf("ReminderSuggestions() error = %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Activity != "Stretch" {
		t.Errorf("Unexpected suggestions %+v", suggestions)
	}

	resp, err := c.Contact(context.Background(), models.ContactRequest{Name: "Sam", Email: "sam@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("Contact() error = %v", err)
	}
	if !resp.Success || resp.TicketID != "YW042" {
		t.Errorf("Unexpected contact response %+v", resp)
	}
}
