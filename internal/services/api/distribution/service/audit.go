package service

import (
	"context"
	"time"

	"leadrouter/internal/platform/logger"
)

// routingEventsTable is the clickhouse sink for routing decisions
const routingEventsTable = "routing_events"

var routingEventCols = []string{
	"ts", "event", "correlation_id", "lead_id", "source_id", "operator_id", "status",
}

// emitDecision writes one routing decision to the audit sink when configured.
// Best effort: failures are logged and dropped, never surfaced to the caller
func (s *Svc) emitDecision(ctx context.Context, event, correlationID string, leadID, sourceID int64, operatorID *int64, status string) {
	if s.audit == nil {
		return
	}
	row := []any{
		time.Now().UTC(),
		event,
		correlationID,
		leadID,
		sourceID,
		operatorID,
		status,
	}
	if err := s.audit.Insert(ctx, routingEventsTable, routingEventCols, [][]any{row}); err != nil {
		logger.C(ctx).Warn().Err(err).
			Str("event", event).
			Int64("lead_id", leadID).
			Msg("routing audit emit failed")
	}
}
