package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/services/ai"
)

// AnalyticsPanel shows the counters and model insights.
type AnalyticsPanel struct {
	store  *appstate.Store
	api    API
	logger *zap.Logger
}

// Data returns the current counters.
func (p *AnalyticsPanel) Data() models.AnalyticsData {
	return p.store.Snapshot().AnalyticsData
}

// CheckIn records a daily check-in.
func (p *AnalyticsPanel) CheckIn() models.AnalyticsData {
	p.store.TrackActivity(models.ActivityCheckin)
	return p.Data()
}

// Insights asks for a summary of the counters, using the static insights
// when the API cannot be reached.
func (p *AnalyticsPanel) Insights(ctx context.Context) models.Insights {
	insights, err := p.api.Insights(ctx, p.store.Snapshot())
	if err != nil {
		p.logger.Warn("analytics_request_failed", zap.Error(err))
		return ai.DefaultInsights()
	}
	return insights
}
