package ai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benvon/youthwell/internal/models"
)

// ChatHistoryWindow is how many recent turns the chat prompt embeds.
const ChatHistoryWindow = 5

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// BuildChatPrompt renders the chat prompt for message in the light of uc.
func BuildChatPrompt(message string, uc models.UserContext) string {
	score := "Not available"
	if uc.AnalyticsData.MoodScore != 0 {
		score = formatScore(uc.AnalyticsData.MoodScore)
	}
	plan := "No current plan"
	if uc.WellnessPlan != nil {
		plan = "Has personalized plan"
	}

	var history []string
	for _, msg := range uc.RecentMessages(ChatHistoryWindow) {
		speaker := "AI"
		if msg.IsUser {
			speaker = "User"
		}
		history = append(history, speaker+": "+msg.Text)
	}
	historyText := "No previous conversation"
	if len(history) > 0 {
		historyText = strings.Join(history, "\n")
	}

	return fmt.Sprintf(`You are YouthWell AI, a compassionate mental health and wellness assistant for young people.
You provide supportive, evidence-based guidance while maintaining a warm, understanding tone.

User Context:
- Current Mood: %s
- Wellness Streak: %d days
- Daily Check-ins: %d
- Mood Score: %s/10
- Wellness Plan: %s

Recent Chat History (last %d messages):
%s

Current User Message: "%s"

IMPORTANT: Vary your response format to keep conversations engaging. Use these approaches internally:

- Sometimes use bullet points (•) for suggestions
- Sometimes use numbered steps (1., 2., 3.) for advice
- Sometimes use natural conversation with **bold** emphasis
- Always end with a question to continue the conversation

Response Guidelines:
- Keep responses SHORT (2-3 sentences maximum)
- Be warm, encouraging, and age-appropriate
- Use emojis occasionally but sparingly
- Reference their progress when relevant
- Provide practical, specific advice
- If distressed, gently suggest professional help
- NEVER mention format types or numbers in your response

Respond naturally and conversationally without any technical formatting labels.`,
		orDefault(uc.SelectedMood, "Not specified"),
		uc.AnalyticsData.WellnessStreak,
		uc.AnalyticsData.DailyCheckins,
		score,
		plan,
		ChatHistoryWindow,
		historyText,
		message,
	)
}

// BuildWellnessPrompt renders the wellness plan prompt for mood.
func BuildWellnessPrompt(mood string, uc models.UserContext) string {
	plan := "No existing plan"
	if uc.WellnessPlan != nil {
		plan = "Has existing plan"
	}
	return strings.NewReplacer("{mood}", mood).Replace(fmt.Sprintf(`Generate a personalized wellness plan for someone feeling "{mood}".

User Context:
- Current mood: {mood}
- Wellness streak: %d days
- Previous mood patterns: %d interactions
- Current wellness plan: %s

Please provide a JSON response with this exact structure:
{
  "meditation": "A 2-3 minute meditation script tailored to their {mood} mood",
  "affirmation": "A positive, personalized affirmation for someone feeling {mood}",
  "activity": "A specific calming activity recommendation for {mood} mood",
  "color": "bg-[color]-50 dark:bg-[color]-950/20 border-[color]-200 dark:border-[color]-800"
}

Make the content:
- Specific to their {mood} emotional state
- Practical and immediately actionable
- Encouraging and supportive
- Professional but warm in tone
- 2-3 sentences maximum per section`,
		uc.AnalyticsData.WellnessStreak,
		len(uc.ChatHistory),
		plan,
	))
}

// BuildAnalyticsPrompt renders the analytics insight prompt.
func BuildAnalyticsPrompt(uc models.UserContext) string {
	a := uc.AnalyticsData
	return fmt.Sprintf(`Analyze this wellness data and provide insights:

Analytics Data:
- Daily Check-ins: %d
- Mood Score: %s/10
- Wellness Streak: %d days
- Community Support: %d users

Recent Mood: %s
Chat Interactions: %d

Provide a JSON response with:
{
  "pattern": "A specific pattern you notice in their wellness data",
  "summary": "A brief summary of their current wellness state",
  "recommendation": "A specific recommendation based on the data"
}

Keep each response 1-2 sentences, encouraging and actionable.`,
		a.DailyCheckins,
		formatScore(a.MoodScore),
		a.WellnessStreak,
		a.CommunitySupport,
		orDefault(uc.SelectedMood, "Not specified"),
		len(uc.ChatHistory),
	)
}

// BuildReminderPrompt renders the reminder suggestion prompt.
func BuildReminderPrompt(uc models.UserContext) string {
	return fmt.Sprintf(`Suggest personalized daily reminders based on this context:

User Data:
- Current Mood: %s
- Wellness Streak: %d days
- Existing Reminders: %d
- Chat Patterns: %d interactions

Provide a JSON array of %d reminder suggestions:
[
  {
    "time": "HH:MM format",
    "activity": "Specific wellness activity",
    "reason": "Why this reminder helps their current state"
  }
]

Make suggestions:
- Relevant to their current mood and patterns
- Spread throughout the day
- Specific and actionable
- Supportive of their wellness journey`,
		orDefault(uc.SelectedMood, "Not specified"),
		uc.AnalyticsData.WellnessStreak,
		len(uc.Reminders),
		len(uc.ChatHistory),
		ReminderSuggestionCount,
	)
}
