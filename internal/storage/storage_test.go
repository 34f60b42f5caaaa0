package storage

import (
	"testing"
	"time"

	"github.com/benvon/youthwell/internal/models"
)

func TestKVImplementations(t *testing.T) {
	t.Parallel()

	badgerKV, err := OpenBadgerKV("")
	if err != nil {
		t.Fatalf("Failed to open in-memory badger store: %v", err)
	}
	t.Cleanup(func() { _ = badgerKV.Close() })

	tests := []struct {
		name string
		kv   KV
	}{
		{name: "memory", kv: NewMemoryKV()},
		{name: "badger", kv: badgerKV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, ok, err := tt.kv.Get("missing"); err != nil || ok {
				t.Errorf("Expected missing key to be absent without error, got ok=%v err=%v", ok, err)
			}

			if err := tt.kv.Set("k", "v1"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := tt.kv.Set("k", "v2"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			v, ok, err := tt.kv.Get("k")
			if err != nil || !ok || v != "v2" {
				t.Errorf("Expected 'v2', got %q ok=%v err=%v", v, ok, err)
			}

			if err := tt.kv.Delete("k", "never-set"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, ok, _ := tt.kv.Get("k"); ok {
				t.Error("Expected key to be deleted")
			}
		})
	}
}

func TestConsent(t *testing.T) {
	t.Parallel()

	granted := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setup         func(*Consent) error
		now           time.Time
		enforceExpiry bool
		wantStatus    models.ConsentStatus
		wantConsent   bool
		wantExpired   bool
	}{
		{
			name:        "no decision",
			setup:       func(*Consent) error { return nil },
			now:         granted,
			wantStatus:  models.ConsentUnset,
			wantConsent: false,
		},
		{
			name:        "accepted",
			setup:       func(c *Consent) error { return c.Accept() },
			now:         granted.Add(24 * time.Hour),
			wantStatus:  models.ConsentAccepted,
			wantConsent: true,
		},
		{
			name:        "declined",
			setup:       func(c *Consent) error { return c.Decline() },
			now:         granted,
			wantStatus:  models.ConsentDeclined,
			wantConsent: false,
		},
		{
			name:        "expired acceptance still counts by default",
			setup:       func(c *Consent) error { return c.Accept() },
			now:         granted.Add(400 * 24 * time.Hour),
			wantStatus:  models.ConsentAccepted,
			wantConsent: true,
			wantExpired: true,
		},
		{
			name:          "expired acceptance with enforcement",
			setup:         func(c *Consent) error { return c.Accept() },
			now:           granted.Add(400 * 24 * time.Hour),
			enforceExpiry: true,
			wantStatus:    models.ConsentAccepted,
			wantConsent:   false,
			wantExpired:   true,
		},
		{
			name: "cleared",
			setup: func(c *Consent) error {
				if err := c.Accept(); err != nil {
					return err
				}
				return c.Clear()
			},
			now:         granted,
			wantStatus:  models.ConsentUnset,
			wantConsent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConsent(NewMemoryKV())
			c.SetClock(func() time.Time { return granted })
			if err := tt.setup(c); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			c.SetClock(func() time.Time { return tt.now })
			c.EnforceExpiry = tt.enforceExpiry

			rec := c.Status()
			if rec.Status != tt.wantStatus {
				t.Errorf("Expected status %q, got %q", tt.wantStatus, rec.Status)
			}
			if rec.IsExpired != tt.wantExpired {
				t.Errorf("Expected expired %v, got %v", tt.wantExpired, rec.IsExpired)
			}
			if got := c.HasConsent(); got != tt.wantConsent {
				t.Errorf("Expected HasConsent %v, got %v", tt.wantConsent, got)
			}
			if got := c.HasDecided(); got != (tt.wantStatus != models.ConsentUnset) {
				t.Errorf("Unexpected HasDecided %v", got)
			}
		})
	}
}

func TestConsentIgnoresUnknownStatus(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	_ = kv.Set(KeyConsentStatus, "maybe")
	c := NewConsent(kv)

	if c.HasDecided() {
		t.Error("Expected unknown status to count as no decision")
	}
}

func TestGate_DeclinedWritesNothing(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	consent := NewConsent(kv)
	if err := consent.Decline(); err != nil {
		t.Fatalf("Decline failed: %v", err)
	}
	gate := NewGate(kv, consent, nil)

	written, err := gate.Write(map[string]string{KeySelectedMood: "happy"})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if written {
		t.Error("Expected no write without consent")
	}

	if _, ok, _ := kv.Get(KeySelectedMood); ok {
		t.Error("Expected mood key to be absent")
	}

	if _, allowed, _ := gate.Load(); allowed {
		t.Error("Expected Load to be refused without consent")
	}

	keys := kv.Keys()
	if len(keys) != 2 {
		t.Errorf("Expected only the two consent keys, got %v", keys)
	}
}

func TestGate_AcceptedRoundTripAndPurge(t *testing.T) {
	t.Parallel()

	kv := NewMemoryKV()
	consent := NewConsent(kv)
	if err := consent.Accept(); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	gate := NewGate(kv, consent, nil)

	if _, err := gate.Write(map[string]string{KeySelectedMood: "calm", KeyReminders: "[]"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	values, allowed, err := gate.Load()
	if err != nil || !allowed {
		t.Fatalf("Expected Load to succeed, got allowed=%v err=%v", allowed, err)
	}
	if values[KeySelectedMood] != "calm" {
		t.Errorf("Expected mood 'calm', got %q", values[KeySelectedMood])
	}
	if _, ok := values[KeyChatHistory]; ok {
		t.Error("Expected chat history to be absent")
	}

	// Purge ignores consent.
	if err := consent.Decline(); err != nil {
		t.Fatalf("Decline failed: %v", err)
	}
	if err := gate.Purge(); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	for _, k := range StateKeys {
		if _, ok, _ := kv.Get(k); ok {
			t.Errorf("Expected %s to be purged", k)
		}
	}
	if _, ok, _ := kv.Get(KeyConsentStatus); !ok {
		t.Error("Expected consent decision to survive purge")
	}
}
