package dashboard

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/services/ai"
)

// ErrEmptyMessage is returned for blank chat input.
var ErrEmptyMessage = errors.New("message is empty")

// ChatPanel is the companion chat.
type ChatPanel struct {
	store  *appstate.Store
	api    API
	logger *zap.Logger
}

// Send records text as a user message and appends the assistant reply. When
// the API cannot be reached the reply is the apology bubble.
func (p *ChatPanel) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	p.store.AddChatMessage(text, true)
	p.store.TrackActivity(models.ActivityMessage)

	reply, err := p.api.Chat(ctx, text, p.store.Snapshot())
	if err != nil {
		p.logger.Warn("chat_request_failed", zap.Error(err))
		reply = ai.ChatFallbackResponse
	}
	return p.store.AddChatMessage(reply, false), nil
}

// History returns the conversation so far.
func (p *ChatPanel) History() []models.ChatMessage {
	return p.store.Snapshot().ChatHistory
}

// Clear empties the conversation.
func (p *ChatPanel) Clear() {
	p.store.ClearChatHistory()
}
