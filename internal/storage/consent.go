package storage

import (
	"fmt"
	"time"

	"github.com/benvon/youthwell/internal/models"
)

// Consent reads and records the storage consent decision.
type Consent struct {
	kv  KV
	now func() time.Time

	// EnforceExpiry makes an expired acceptance count as no consent.
	// Off by default: expiry is reported but does not gate reads or writes.
	EnforceExpiry bool
}

// NewConsent creates a consent manager over kv.
func NewConsent(kv KV) *Consent {
	return &Consent{kv: kv, now: time.Now}
}

// SetClock replaces the time source. Intended for tests.
func (c *Consent) SetClock(now func() time.Time) {
	c.now = now
}

// Status returns the stored decision. Read failures are treated as no decision.
func (c *Consent) Status() models.ConsentRecord {
	rec := models.ConsentRecord{}
	status, ok, err := c.kv.Get(KeyConsentStatus)
	if err != nil || !ok {
		return rec
	}
	switch models.ConsentStatus(status) {
	case models.ConsentAccepted, models.ConsentDeclined:
		rec.Status = models.ConsentStatus(status)
	default:
		return rec
	}

	raw, ok, err := c.kv.Get(KeyConsentTimestamp)
	if err != nil || !ok {
		return rec
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return rec
	}
	rec.Timestamp = &ts
	rec.IsExpired = c.now().Sub(ts) > models.ConsentTTL
	return rec
}

// Accept records consent.
func (c *Consent) Accept() error {
	return c.record(models.ConsentAccepted)
}

// Decline records a refusal.
func (c *Consent) Decline() error {
	return c.record(models.ConsentDeclined)
}

func (c *Consent) record(status models.ConsentStatus) error {
	if err := c.kv.Set(KeyConsentStatus, string(status)); err != nil {
		return fmt.Errorf("failed to store consent status: %w", err)
	}
	if err := c.kv.Set(KeyConsentTimestamp, c.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to store consent timestamp: %w", err)
	}
	return nil
}

// Clear forgets the decision so the user is asked again.
func (c *Consent) Clear() error {
	if err := c.kv.Delete(KeyConsentStatus, KeyConsentTimestamp); err != nil {
		return fmt.Errorf("failed to clear consent: %w", err)
	}
	return nil
}

// HasConsent reports whether the user accepted storage.
func (c *Consent) HasConsent() bool {
	rec := c.Status()
	if rec.Status != models.ConsentAccepted {
		return false
	}
	if c.EnforceExpiry && rec.IsExpired {
		return false
	}
	return true
}

// HasDecided reports whether the user made any choice.
func (c *Consent) HasDecided() bool {
	return c.Status().Status != models.ConsentUnset
}
