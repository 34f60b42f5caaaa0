package appstate

import (
	"fmt"
	"time"

	"github.com/benvon/youthwell/internal/models"
)

// The functions in this file are pure: each takes a snapshot and returns a new
// one without touching the input's slices.

// LastActivityTimeFormat is the clock format used in AnalyticsData.LastActivity.
const LastActivityTimeFormat = "3:04:05 PM"

// Seeded returns the state of a brand new session opening with welcome.
func Seeded(welcome models.ChatMessage) models.UserContext {
	return models.UserContext{
		Reminders:     []models.Reminder{},
		ChatHistory:   []models.ChatMessage{welcome},
		AnalyticsData: models.DefaultAnalytics(),
	}
}

// WithMood sets the selected mood.
func WithMood(uc models.UserContext, mood string) models.UserContext {
	out := uc.Clone()
	out.SelectedMood = mood
	return out
}

// WithWellnessPlan replaces the wellness plan. A nil plan clears it.
func WithWellnessPlan(uc models.UserContext, plan *models.WellnessPlan) models.UserContext {
	out := uc.Clone()
	if plan == nil {
		out.WellnessPlan = nil
		return out
	}
	p := *plan
	out.WellnessPlan = &p
	return out
}

// NextChatID returns a millisecond identifier strictly greater than the last entry's.
func NextChatID(history []models.ChatMessage, now time.Time) int64 {
	id := now.UnixMilli()
	if n := len(history); n > 0 && history[n-1].ID >= id {
		id = history[n-1].ID + 1
	}
	return id
}

// WithChatMessage appends one entry. When limit is positive only the newest
// limit entries are kept.
func WithChatMessage(uc models.UserContext, text string, isUser bool, now time.Time, limit int) models.UserContext {
	out := uc.Clone()
	msg := models.ChatMessage{
		ID:        NextChatID(out.ChatHistory, now),
		Text:      text,
		IsUser:    isUser,
		Timestamp: now,
	}
	out.ChatHistory = append(out.ChatHistory, msg)
	out.ChatHistory = trimHistory(out.ChatHistory, limit)
	return out
}

func trimHistory(history []models.ChatMessage, limit int) []models.ChatMessage {
	if limit <= 0 || len(history) <= limit {
		return history
	}
	kept := make([]models.ChatMessage, limit)
	copy(kept, history[len(history)-limit:])
	return kept
}

// WithAnalytics shallow-merges patch into the analytics counters.
func WithAnalytics(uc models.UserContext, patch models.AnalyticsPatch) models.UserContext {
	out := uc.Clone()
	out.AnalyticsData = patch.Merge(out.AnalyticsData)
	return out
}

// WithReminders replaces the reminder list.
func WithReminders(uc models.UserContext, reminders []models.Reminder) models.UserContext {
	out := uc.Clone()
	if reminders == nil {
		out.Reminders = []models.Reminder{}
		return out
	}
	out.Reminders = make([]models.Reminder, len(reminders))
	copy(out.Reminders, reminders)
	return out
}

// WithActivity records one activity of kind at now. It returns false and the
// unchanged snapshot for unknown kinds.
func WithActivity(uc models.UserContext, kind models.ActivityKind, now time.Time) (models.UserContext, bool) {
	if !kind.Valid() {
		return uc, false
	}
	out := uc.Clone()
	a := &out.AnalyticsData

	switch kind {
	case models.ActivityMessage:
		a.TotalMessages++
	case models.ActivityMood:
		a.MoodChanges++
		a.MoodScore += models.Mood(out.SelectedMood).ScoreDelta()
	case models.ActivityWellness:
		a.WellnessActivities++
		a.WellnessStreak++
	case models.ActivityReminder:
		a.RemindersSet++
	case models.ActivityCheckin:
		a.DailyCheckins++
	}
	a.MoodScore = models.ClampMoodScore(a.MoodScore)
	a.LastActivity = fmt.Sprintf("%s at %s", kind.Description(), now.Format(LastActivityTimeFormat))
	return out, true
}

// WithoutChatHistory empties the chat history.
func WithoutChatHistory(uc models.UserContext) models.UserContext {
	out := uc.Clone()
	out.ChatHistory = []models.ChatMessage{}
	return out
}
