package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/services/ai"
	"github.com/benvon/youthwell/internal/validation"
)

// WellnessPicker selects a mood and shows its plan.
type WellnessPicker struct {
	store  *appstate.Store
	api    API
	logger *zap.Logger
}

// Moods lists the selectable moods in display order.
func (p *WellnessPicker) Moods() []models.Mood {
	return models.AllMoods
}

// Select records mood, tracks the change and fetches a plan for it. The
// static plan for the mood is used when the API cannot be reached.
func (p *WellnessPicker) Select(ctx context.Context, mood string) (models.WellnessPlan, error) {
	m, err := validation.ValidateMood(mood)
	if err != nil {
		return models.WellnessPlan{}, err
	}

	p.store.UpdateMood(string(m))
	p.store.TrackActivity(models.ActivityMood)

	plan, err := p.api.WellnessPlan(ctx, string(m), p.store.Snapshot())
	if err != nil || !plan.Complete() {
		if err != nil {
			p.logger.Warn("wellness_request_failed", zap.String("mood", string(m)), zap.Error(err))
		}
		plan = ai.DefaultWellnessPlan(string(m))
	}
	p.store.UpdateWellnessPlan(&plan)
	return plan, nil
}

// Complete records that the current plan's activity was done.
func (p *WellnessPicker) Complete() {
	p.store.TrackActivity(models.ActivityWellness)
}

// Current returns the selected mood and plan, if any.
func (p *WellnessPicker) Current() (models.Mood, *models.WellnessPlan) {
	snap := p.store.Snapshot()
	return models.Mood(snap.SelectedMood), snap.WellnessPlan
}

// Clear drops the mood selection and its plan.
func (p *WellnessPicker) Clear() {
	p.store.ClearMood()
}
