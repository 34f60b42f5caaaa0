// Package dashboard implements the wellness panels a client shows: chat,
// mood picker, reminders, analytics and the contact form. Panels mutate the
// application store and call the API; every model backed call degrades to
// the same static fallbacks the server uses.
package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/models"
)

// API is the remote surface the panels use. *client.Client implements it.
type API interface {
	Chat(ctx context.Context, message string, uc models.UserContext) (string, error)
	WellnessPlan(ctx context.Context, mood string, uc models.UserContext) (models.WellnessPlan, error)
	Insights(ctx context.Context, uc models.UserContext) (models.Insights, error)
	ReminderSuggestions(ctx context.Context, uc models.UserContext) ([]models.ReminderSuggestion, error)
	Contact(ctx context.Context, req models.ContactRequest) (models.ContactResponse, error)
}

// Dashboard groups the panels over one store.
type Dashboard struct {
	Chat      *ChatPanel
	Wellness  *WellnessPicker
	Reminders *RemindersPanel
	Analytics *AnalyticsPanel
	Contact   *ContactForm

	store       *appstate.Store
	unsubscribe func()
}

// New wires every panel to store and api.
func New(store *appstate.Store, api API, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		Chat:      &ChatPanel{store: store, api: api, logger: logger},
		Wellness:  &WellnessPicker{store: store, api: api, logger: logger},
		Reminders: &RemindersPanel{store: store, api: api, logger: logger},
		Analytics: &AnalyticsPanel{store: store, api: api, logger: logger},
		Contact:   &ContactForm{api: api},
		store:     store,
		unsubscribe: store.Subscribe(func(uc models.UserContext) {
			logger.Debug("state_changed",
				zap.String("mood", uc.SelectedMood),
				zap.Bool("has_plan", uc.WellnessPlan != nil),
				zap.Int("chat_messages", len(uc.ChatHistory)),
				zap.Int("reminders", len(uc.Reminders)),
				zap.Float64("mood_score", uc.AnalyticsData.MoodScore),
			)
		}),
	}
}

// Close stops the state change log.
func (d *Dashboard) Close() {
	d.unsubscribe()
}

// Snapshot returns the current state.
func (d *Dashboard) Snapshot() models.UserContext {
	return d.store.Snapshot()
}

// Reset clears the whole session.
func (d *Dashboard) Reset() {
	d.store.ClearContext()
}
