package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/credential/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishActivity(ctx context.Context, msg usecase.ActivityEvent) error {
	ctx, span := m.ins.Tracer("credential.outbound.mq").Start(ctx, "PublishActivity")
	defer span.End()

	body, err := json.Marshal(event.ActivityRecordedMessage{
		Username:   msg.Username,
		Action:     msg.Action,
		Details:    msg.Details,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.ActivityRecordedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
