package storage

import (
	"sort"
	"sync"
)

// Keys written by the application context store. All of them are consent gated.
const (
	KeySelectedMood = "youthwell-selected-mood"
	KeyChatHistory  = "youthwell-chat-history"
	KeyReminders    = "youthwell-reminders"
	KeyAnalytics    = "youthwell-analytics"
)

// Keys holding the consent decision itself. These are never gated.
const (
	KeyConsentStatus    = "youthwell-cookie-consent"
	KeyConsentTimestamp = "youthwell-cookie-timestamp"
)

// StateKeys lists every consent-gated key.
var StateKeys = []string{KeySelectedMood, KeyChatHistory, KeyReminders, KeyAnalytics}

// KV is a string key/value store with the semantics of browser local storage.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(keys ...string) error
	Close() error
}

// MemoryKV is an in-process KV. It is safe for concurrent use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MemoryKV) Close() error { return nil }

// Keys returns the stored keys in sorted order.
func (m *MemoryKV) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
