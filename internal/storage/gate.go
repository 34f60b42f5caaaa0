package storage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Gate is the single consent boundary between the application state and the KV.
// Nothing else in the application checks consent before writing.
type Gate struct {
	kv      KV
	consent *Consent
	logger  *zap.Logger
}

// NewGate creates a gate over kv governed by consent.
func NewGate(kv KV, consent *Consent, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{kv: kv, consent: consent, logger: logger}
}

// Consent returns the consent manager the gate checks.
func (g *Gate) Consent() *Consent {
	return g.consent
}

// Allowed reports whether gated reads and writes are currently permitted.
func (g *Gate) Allowed() bool {
	return g.consent.HasConsent()
}

// Write stores every value when consent is given. It reports whether anything was written.
func (g *Gate) Write(values map[string]string) (bool, error) {
	if len(values) == 0 || !g.Allowed() {
		return false, nil
	}
	var errs []error
	for k, v := range values {
		if err := g.kv.Set(k, v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, fmt.Errorf("failed to persist state: %w", errors.Join(errs...))
	}
	g.logger.Debug("state_persisted", zap.Int("key_count", len(values)))
	return true, nil
}

// Remove deletes keys when consent is given.
func (g *Gate) Remove(keys ...string) (bool, error) {
	if len(keys) == 0 || !g.Allowed() {
		return false, nil
	}
	if err := g.kv.Delete(keys...); err != nil {
		return false, err
	}
	return true, nil
}

// Purge deletes every state key regardless of consent.
func (g *Gate) Purge() error {
	return g.kv.Delete(StateKeys...)
}

// Load returns the persisted state values when consent is given.
// The boolean is false when consent is missing.
func (g *Gate) Load() (map[string]string, bool, error) {
	if !g.Allowed() {
		return nil, false, nil
	}
	out := make(map[string]string, len(StateKeys))
	for _, k := range StateKeys {
		v, ok, err := g.kv.Get(k)
		if err != nil {
			return nil, true, fmt.Errorf("failed to load state: %w", err)
		}
		if ok {
			out[k] = v
		}
	}
	return out, true, nil
}
