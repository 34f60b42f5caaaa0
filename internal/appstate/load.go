package appstate

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/storage"
)

// storedChatMessage accepts whatever shape a previous session left behind.
type storedChatMessage struct {
	ID        *float64 `json:"id"`
	Text      *string  `json:"text"`
	IsUser    bool     `json:"isUser"`
	Timestamp *string  `json:"timestamp"`
}

// load overlays persisted values onto the seeded state. Malformed values are
// logged and replaced, never returned.
func (s *Store) load() {
	if s.persist == nil {
		return
	}
	values, allowed, err := s.persist.Load()
	if err != nil {
		s.logger.Warn("persisted_state_unreadable", zap.Error(err))
		return
	}
	if !allowed {
		return
	}

	if mood, ok := values[storage.KeySelectedMood]; ok && mood != "" {
		s.state.SelectedMood = mood
	}
	if raw, ok := values[storage.KeyChatHistory]; ok {
		s.state.ChatHistory = trimHistory(s.decodeChatHistory(raw), s.historyLimit)
	}
	if raw, ok := values[storage.KeyReminders]; ok {
		s.state.Reminders = s.decodeReminders(raw)
	}
	if raw, ok := values[storage.KeyAnalytics]; ok {
		s.state.AnalyticsData = s.decodeAnalytics(raw)
	}
}

func (s *Store) decodeChatHistory(raw string) []models.ChatMessage {
	var stored []storedChatMessage
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("persisted_state_discarded", zap.String("key", storage.KeyChatHistory), zap.Error(err))
		return []models.ChatMessage{}
	}

	out := make([]models.ChatMessage, 0, len(stored))
	dropped := 0
	for _, m := range stored {
		if m.Text == nil || m.Timestamp == nil || *m.Timestamp == "" {
			dropped++
			continue
		}
		ts, err := time.Parse(time.RFC3339Nano, *m.Timestamp)
		if err != nil {
			dropped++
			continue
		}
		id := int64(0)
		if m.ID != nil {
			id = int64(*m.ID)
		}
		if id == 0 {
			id = NextChatID(out, s.now())
		}
		out = append(out, models.ChatMessage{ID: id, Text: *m.Text, IsUser: m.IsUser, Timestamp: ts})
	}
	if dropped > 0 {
		s.logger.Warn("persisted_chat_entries_dropped", zap.Int("count", dropped))
	}
	return out
}

func (s *Store) decodeReminders(raw string) []models.Reminder {
	var reminders []models.Reminder
	if err := json.Unmarshal([]byte(raw), &reminders); err != nil {
		s.logger.Warn("persisted_state_discarded", zap.String("key", storage.KeyReminders), zap.Error(err))
		return []models.Reminder{}
	}
	if reminders == nil {
		return []models.Reminder{}
	}
	return reminders
}

func (s *Store) decodeAnalytics(raw string) models.AnalyticsData {
	data := models.DefaultAnalytics()
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		s.logger.Warn("persisted_state_discarded", zap.String("key", storage.KeyAnalytics), zap.Error(err))
		return models.DefaultAnalytics()
	}
	data.MoodScore = models.ClampMoodScore(data.MoodScore)
	return data
}
