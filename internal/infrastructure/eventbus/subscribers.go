package eventbus

import (
	"context"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
)

// EventCounter is implemented by the metrics registry.
type EventCounter interface {
	ObserveEvent(e event.Event)
}

// LogSubscriber writes one info line per delivered event.
func LogSubscriber(logger *logging.Logger) Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(ctx context.Context, e event.Event) error {
		logger.InfoContext(ctx, "domain event",
			"event", string(e.Name),
			"league_id", e.LeagueID,
			"pod_id", e.PodID,
			"phase", e.Phase,
			"players", len(e.PlayerIDs),
			"occurred_at", e.OccurredAt,
		)
		return nil
	}
}

func MetricsSubscriber(counter EventCounter) Handler {
	return func(_ context.Context, e event.Event) error {
		counter.ObserveEvent(e)
		return nil
	}
}
