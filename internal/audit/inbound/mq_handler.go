package inbound

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/audit/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/shared/event"
)

const keyOfCorrelationID = "cID"

// MQHandler consumes activity events off the broker and hands them to the
// usecase.
type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

// ensureCorrelationID propagates the publisher's correlation id when the
// message carries one, otherwise mints a fresh one.
func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for _, header := range headers {
		if header.Key == keyOfCorrelationID && len(header.Value) > 0 {
			return instrument.SetCorrelationID(ctx, string(header.Value))
		}
	}

	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// ActivityRecorded persists one activity fact. A message that cannot be
// decoded is dropped; redelivery would never make it parseable.
func (h *MQHandler) ActivityRecorded(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	var payload event.ActivityRecordedMessage
	if err := json.Unmarshal(msg.Body(), &payload); err != nil {
		slog.WarnContext(ctx, "dropping undecodable activity message", "subject", msg.Subject(), "error", err)
		return nil
	}

	occurredAt, err := time.Parse(time.RFC3339, payload.OccurredAt)
	if err != nil {
		occurredAt = msg.Timestamp()
	}

	if err := h.uc.Record(ctx, usecase.RecordInput{
		Username:   payload.Username,
		Action:     payload.Action,
		Details:    payload.Details,
		OccurredAt: occurredAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to record activity", "username", payload.Username, "error", err)
		return err
	}

	return nil
}
