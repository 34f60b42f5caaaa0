package dashboard

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/services/ai"
)

// RemindersPanel edits the daily reminders.
type RemindersPanel struct {
	store  *appstate.Store
	api    API
	logger *zap.Logger
}

// Current returns the saved reminders, or one default per period when none are saved.
func (p *RemindersPanel) Current() []models.Reminder {
	if saved := p.store.Snapshot().Reminders; len(saved) > 0 {
		return saved
	}
	return models.DefaultReminders()
}

// Defaults returns one reminder per period using the period defaults.
func (p *RemindersPanel) Defaults() []models.Reminder {
	return models.DefaultReminders()
}

// Options returns the activities offered for period.
func (p *RemindersPanel) Options(period string) ([]string, bool) {
	for _, rp := range models.ReminderPeriods {
		if rp.Period == period {
			return rp.Options, true
		}
	}
	return nil, false
}

// Save replaces the reminders and tracks the change. Each entry needs a
// period and a time.
func (p *RemindersPanel) Save(list []models.Reminder) error {
	for i, r := range list {
		if r.Period == "" || r.Time == "" {
			return fmt.Errorf("reminder %d needs a period and a time", i+1)
		}
	}
	p.store.UpdateReminders(slices.Clone(list))
	p.store.TrackActivity(models.ActivityReminder)
	return nil
}

// Suggest asks for reminder suggestions, using the static ones when the API
// cannot be reached.
func (p *RemindersPanel) Suggest(ctx context.Context) []models.ReminderSuggestion {
	suggestions, err := p.api.ReminderSuggestions(ctx, p.store.Snapshot())
	if err != nil || len(suggestions) == 0 {
		if err != nil {
			p.logger.Warn("reminder_suggestions_request_failed", zap.Error(err))
		}
		return ai.DefaultReminderSuggestions()
	}
	return suggestions
}
