package models

import (
	"math"
	"time"
)

// Seeded demo values for a new user's analytics.
const (
	DefaultDailyCheckins    = 47
	DefaultMoodScore        = 7.8
	DefaultWellnessStreak   = 12
	DefaultCommunitySupport = 1234
	DefaultLastActivity     = "Welcome to YouthWell!"

	// MinMoodScore and MaxMoodScore bound AnalyticsData.MoodScore.
	MinMoodScore = 0.0
	MaxMoodScore = 10.0
)

// UserContext is the full client-side state snapshot of one session.
type UserContext struct {
	SelectedMood  string        `json:"selectedMood,omitempty"`
	WellnessPlan  *WellnessPlan `json:"wellnessPlan,omitempty"`
	Reminders     []Reminder    `json:"reminders"`
	ChatHistory   []ChatMessage `json:"chatHistory"`
	AnalyticsData AnalyticsData `json:"analyticsData"`
}

// WellnessPlan is a meditation, affirmation and activity triple plus a display color class string.
type WellnessPlan struct {
	Meditation  string `json:"meditation"`
	Affirmation string `json:"affirmation"`
	Activity    string `json:"activity"`
	Color       string `json:"color"`
}

// Complete reports whether every field of the plan is non-empty.
func (p WellnessPlan) Complete() bool {
	return p.Meditation != "" && p.Affirmation != "" && p.Activity != "" && p.Color != ""
}

// Reminder is a scheduled daily reminder for one period of the day.
type Reminder struct {
	Period   string `json:"period"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// ChatMessage is one entry of the chat history.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsData holds the dashboard counters.
type AnalyticsData struct {
	DailyCheckins      int     `json:"dailyCheckins"`
	MoodScore          float64 `json:"moodScore"`
	WellnessStreak     int     `json:"wellnessStreak"`
	CommunitySupport   int     `json:"communitySupport"`
	TotalMessages      int     `json:"totalMessages"`
	WellnessActivities int     `json:"wellnessActivities"`
	RemindersSet       int     `json:"remindersSet"`
	MoodChanges        int     `json:"moodChanges"`
	LastActivity       string  `json:"lastActivity"`
}

// DefaultAnalytics returns the analytics a new user starts with.
func DefaultAnalytics() AnalyticsData {
	return AnalyticsData{
		DailyCheckins:    DefaultDailyCheckins,
		MoodScore:        DefaultMoodScore,
		WellnessStreak:   DefaultWellnessStreak,
		CommunitySupport: DefaultCommunitySupport,
		LastActivity:     DefaultLastActivity,
	}
}

// AnalyticsPatch is a partial AnalyticsData; nil fields are left untouched on merge.
type AnalyticsPatch struct {
	DailyCheckins      *int     `json:"dailyCheckins,omitempty"`
	MoodScore          *float64 `json:"moodScore,omitempty"`
	WellnessStreak     *int     `json:"wellnessStreak,omitempty"`
	CommunitySupport   *int     `json:"communitySupport,omitempty"`
	TotalMessages      *int     `json:"totalMessages,omitempty"`
	WellnessActivities *int     `json:"wellnessActivities,omitempty"`
	RemindersSet       *int     `json:"remindersSet,omitempty"`
	MoodChanges        *int     `json:"moodChanges,omitempty"`
	LastActivity       *string  `json:"lastActivity,omitempty"`
}

// Merge returns a copy of data with every non-nil patch field applied.
// The resulting mood score is clamped.
func (p AnalyticsPatch) Merge(data AnalyticsData) AnalyticsData {
	if p.DailyCheckins != nil {
		data.DailyCheckins = *p.DailyCheckins
	}
	if p.MoodScore != nil && !math.IsNaN(*p.MoodScore) {
		data.MoodScore = *p.MoodScore
	}
	if p.WellnessStreak != nil {
		data.WellnessStreak = *p.WellnessStreak
	}
	if p.CommunitySupport != nil {
		data.CommunitySupport = *p.CommunitySupport
	}
	if p.TotalMessages != nil {
		data.TotalMessages = *p.TotalMessages
	}
	if p.WellnessActivities != nil {
		data.WellnessActivities = *p.WellnessActivities
	}
	if p.RemindersSet != nil {
		data.RemindersSet = *p.RemindersSet
	}
	if p.MoodChanges != nil {
		data.MoodChanges = *p.MoodChanges
	}
	if p.LastActivity != nil {
		data.LastActivity = *p.LastActivity
	}
	data.MoodScore = ClampMoodScore(data.MoodScore)
	return data
}

// ClampMoodScore bounds a score to [MinMoodScore, MaxMoodScore]. NaN maps to MinMoodScore.
func ClampMoodScore(score float64) float64 {
	if math.IsNaN(score) || score < MinMoodScore {
		return MinMoodScore
	}
	if score > MaxMoodScore {
		return MaxMoodScore
	}
	return score
}

// Clone returns a deep copy so callers can never alias the store's slices.
func (uc UserContext) Clone() UserContext {
	out := uc
	if uc.WellnessPlan != nil {
		plan := *uc.WellnessPlan
		out.WellnessPlan = &plan
	}
	if uc.Reminders != nil {
		out.Reminders = make([]Reminder, len(uc.Reminders))
		copy(out.Reminders, uc.Reminders)
	}
	if uc.ChatHistory != nil {
		out.ChatHistory = make([]ChatMessage, len(uc.ChatHistory))
		copy(out.ChatHistory, uc.ChatHistory)
	}
	return out
}

// RecentMessages returns at most the last n chat entries.
func (uc UserContext) RecentMessages(n int) []ChatMessage {
	if n <= 0 || len(uc.ChatHistory) == 0 {
		return nil
	}
	if len(uc.ChatHistory) <= n {
		return uc.ChatHistory
	}
	return uc.ChatHistory[len(uc.ChatHistory)-n:]
}
