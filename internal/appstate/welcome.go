package appstate

import (
	"math/rand/v2"
	"time"

	"github.com/benvon/youthwell/internal/models"
)

// WelcomeMessages are the assistant greetings a fresh session may open with.
var WelcomeMessages = []string{
	"🌟 Welcome to YouthWell! I'm your AI wellness companion.\n\nI'm here to support you on your mental health journey with:\n• Personalized wellness plans\n• Mood tracking insights\n• Daily reminders and motivation\n• A safe space to talk about anything\n\nHow can I help you feel your best today?",
	"💚 Hello! I'm your YouthWell AI assistant.\n\nReady to support your mental wellness journey? I can help with:\n• Understanding your emotions\n• Creating healthy habits\n• Managing stress and anxiety\n• Building resilience and confidence\n\nWhat's on your mind today?",
	"🌈 Hi there! Welcome to your wellness space.\n\nI'm here to be your supportive companion, offering:\n• Gentle guidance and encouragement\n• Tools for emotional well-being\n• Personalized self-care strategies\n• A judgment-free zone to express yourself\n\nHow are you feeling right now?",
}

func welcomeMessage(now time.Time, r *rand.Rand) models.ChatMessage {
	return models.ChatMessage{
		ID:        now.UnixMilli(),
		Text:      WelcomeMessages[r.IntN(len(WelcomeMessages))],
		IsUser:    false,
		Timestamp: now,
	}
}
