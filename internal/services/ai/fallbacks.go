package ai

import "github.com/benvon/youthwell/internal/models"

// ChatFallbackResponse is returned whenever a chat reply cannot be produced.
const ChatFallbackResponse = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

// ReminderSuggestionCount is the exact number of suggestions a reply must hold.
const ReminderSuggestionCount = 3

var staticPlans = map[models.Mood]models.WellnessPlan{
	models.MoodHappy: {
		Meditation:  "Celebration Meditation: Take a moment to appreciate this positive feeling. Breathe deeply and let gratitude fill your heart.",
		Affirmation: "I deserve to feel happy and I allow myself to fully experience this joy.",
		Activity:    "Joy Journaling: Write down three things that brought you joy today.",
		Color:       "bg-green-50 dark:bg-green-950/20 border-green-200 dark:border-green-800",
	},
	models.MoodSad: {
		Meditation:  "Compassion Meditation: Place your hand on your heart and breathe gently. Acknowledge your sadness without judgment.",
		Affirmation: "It's okay to feel sad. My emotions are valid and temporary.",
		Activity:    "Gentle Movement: Try some gentle stretching or a short walk.",
		Color:       "bg-blue-50 dark:bg-blue-950/20 border-blue-200 dark:border-blue-800",
	},
	models.MoodStressed: {
		Meditation:  "Stress Relief Breathing: Inhale for 4 counts, hold for 4, exhale for 6. Repeat 5 times.",
		Affirmation: "I can handle this stress one step at a time. I am capable and resilient.",
		Activity:    "Progressive Muscle Relaxation: Tense each muscle group for 5 seconds, then release.",
		Color:       "bg-orange-50 dark:bg-orange-950/20 border-orange-200 dark:border-orange-800",
	},
	models.MoodAnxious: {
		Meditation:  "Grounding Meditation: Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.",
		Affirmation: "I am safe in this moment. My anxiety is temporary and I have the tools to manage it.",
		Activity:    "Box Breathing: Inhale for 4, hold for 4, exhale for 4, hold for 4. Repeat for 2-3 minutes.",
		Color:       "bg-purple-50 dark:bg-purple-950/20 border-purple-200 dark:border-purple-800",
	},
	models.MoodCalm: {
		Meditation:  "Mindful Awareness: Notice your calm state without trying to change it. Breathe naturally.",
		Affirmation: "I am at peace with myself and my surroundings.",
		Activity:    "Nature Connection: Spend time outdoors or look at nature images.",
		Color:       "bg-teal-50 dark:bg-teal-950/20 border-teal-200 dark:border-teal-800",
	},
	models.MoodTired: {
		Meditation:  "Restorative Meditation: Find a comfortable position and focus on your breath.",
		Affirmation: "I honor my need for rest. Taking care of myself is necessary for my well-being.",
		Activity:    "Gentle Self-Care: Take a warm bath, drink herbal tea, or do some light reading.",
		Color:       "bg-indigo-50 dark:bg-indigo-950/20 border-indigo-200 dark:border-indigo-800",
	},
}

// DefaultWellnessPlan returns the static plan for mood. Unknown moods get the sad plan.
func DefaultWellnessPlan(mood string) models.WellnessPlan {
	m, _ := models.ParseMood(mood)
	if plan, ok := staticPlans[m]; ok {
		return plan
	}
	return staticPlans[models.MoodSad]
}

// DefaultInsights is the static analytics summary.
func DefaultInsights() models.Insights {
	return models.Insights{
		Pattern:        "No specific patterns detected at this time.",
		Summary:        "Continue your wellness journey with consistent check-ins.",
		Recommendation: "Keep up the great work with your daily wellness routine!",
	}
}

// DefaultReminderSuggestions returns the three static suggestions.
func DefaultReminderSuggestions() []models.ReminderSuggestion {
	return []models.ReminderSuggestion{
		{Time: "09:00", Activity: "Morning meditation", Reason: "Start your day with mindfulness"},
		{Time: "13:00", Activity: "Breathing exercise", Reason: "Midday stress relief"},
		{Time: "20:00", Activity: "Gratitude journaling", Reason: "End your day with reflection"},
	}
}
