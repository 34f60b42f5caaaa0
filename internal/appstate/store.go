// Package appstate holds the single source of truth for a session's wellness state.
package appstate

import (
	"encoding/json"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/storage"
)

// Persister is the consent-gated persistence boundary. *storage.Gate implements it.
type Persister interface {
	Write(values map[string]string) (bool, error)
	Remove(keys ...string) (bool, error)
	Purge() error
	Load() (map[string]string, bool, error)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand replaces the source used to pick welcome messages.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rand = r }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHistoryLimit keeps at most n chat entries. Zero means unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.historyLimit = n
		}
	}
}

// Store applies named mutations to an immutable UserContext snapshot and
// forwards the changed fields to the persistence boundary.
type Store struct {
	mu           sync.Mutex
	state        models.UserContext
	persist      Persister
	logger       *zap.Logger
	now          func() time.Time
	rand         *rand.Rand
	historyLimit int

	subMu   sync.Mutex
	subs    map[int]func(models.UserContext)
	nextSub int
}

// New creates a store seeded with the new-user defaults, then overlays any
// state persist is allowed to load. A nil persist keeps everything in memory.
func New(persist Persister, opts ...Option) *Store {
	s := &Store{
		persist: persist,
		logger:  zap.NewNop(),
		now:     time.Now,
		rand:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x59575745)),
		subs:    make(map[int]func(models.UserContext)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = Seeded(welcomeMessage(s.now(), s.rand))
	s.load()
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.UserContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to receive every new snapshot. The returned func removes it.
func (s *Store) Subscribe(fn func(models.UserContext)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// UpdateMood sets the selected mood and persists it.
func (s *Store) UpdateMood(mood string) {
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		return WithMood(uc, mood), map[string]string{storage.KeySelectedMood: mood}
	})
}

// UpdateWellnessPlan replaces the plan. Plans are regenerated from the mood and never persisted.
func (s *Store) UpdateWellnessPlan(plan *models.WellnessPlan) {
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		return WithWellnessPlan(uc, plan), nil
	})
}

// AddChatMessage appends a message and persists the full history.
func (s *Store) AddChatMessage(text string, isUser bool) models.ChatMessage {
	var added models.ChatMessage
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		next := WithChatMessage(uc, text, isUser, s.now(), s.historyLimit)
		added = next.ChatHistory[len(next.ChatHistory)-1]
		return next, s.fields(storage.KeyChatHistory, next.ChatHistory)
	})
	return added
}

// UpdateAnalytics merges patch into the counters and persists them.
func (s *Store) UpdateAnalytics(patch models.AnalyticsPatch) {
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		next := WithAnalytics(uc, patch)
		return next, s.fields(storage.KeyAnalytics, next.AnalyticsData)
	})
}

// UpdateReminders replaces the reminders and persists them.
func (s *Store) UpdateReminders(reminders []models.Reminder) {
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		next := WithReminders(uc, reminders)
		return next, s.fields(storage.KeyReminders, next.Reminders)
	})
}

// TrackActivity bumps the counter for kind and persists the analytics.
// It reports false for unknown kinds, which change nothing.
func (s *Store) TrackActivity(kind models.ActivityKind) bool {
	tracked := false
	s.commit(func(uc models.UserContext) (models.UserContext, map[string]string) {
		next, ok := WithActivity(uc, kind, s.now())
		if !ok {
			return uc, nil
		}
		tracked = true
		return next, s.fields(storage.KeyAnalytics, next.AnalyticsData)
	})
	return tracked
}

// ClearMood deselects the mood, drops the plan and removes the persisted mood.
func (s *Store) ClearMood() {
	s.remove("clear_mood", func(uc models.UserContext) models.UserContext {
		return WithWellnessPlan(WithMood(uc, ""), nil)
	}, storage.KeySelectedMood)
}

// ClearChatHistory empties the history and removes the persisted copy.
func (s *Store) ClearChatHistory() {
	s.remove("clear_chat", WithoutChatHistory, storage.KeyChatHistory)
}

func (s *Store) remove(operation string, reduce func(models.UserContext) models.UserContext, keys ...string) {
	s.mu.Lock()
	s.state = reduce(s.state)
	if s.persist != nil {
		if _, err := s.persist.Remove(keys...); err != nil {
			s.logger.Warn("state_persist_failed", zap.String("operation", operation), zap.Error(err))
		}
	}
	snap := s.state.Clone()
	s.mu.Unlock()
	s.notify(snap)
}

// ClearContext resets to the seeded defaults and purges every persisted key.
func (s *Store) ClearContext() {
	s.mu.Lock()
	s.state = Seeded(welcomeMessage(s.now(), s.rand))
	if s.persist != nil {
		if err := s.persist.Purge(); err != nil {
			s.logger.Warn("state_persist_failed", zap.String("operation", "clear_context"), zap.Error(err))
		}
	}
	snap := s.state.Clone()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) commit(reduce func(models.UserContext) (models.UserContext, map[string]string)) {
	s.mu.Lock()
	next, writes := reduce(s.state)
	s.state = next
	if s.persist != nil && len(writes) > 0 {
		if _, err := s.persist.Write(writes); err != nil {
			s.logger.Warn("state_persist_failed", zap.Error(err))
		}
	}
	snap := s.state.Clone()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Store) notify(snap models.UserContext) {
	s.subMu.Lock()
	fns := make([]func(models.UserContext), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snap.Clone())
	}
}

// fields encodes v under key. An unencodable value yields no write, so the
// previously persisted copy survives.
func (s *Store) fields(key string, v any) map[string]string {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("state_encode_failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return map[string]string{key: string(b)}
}
