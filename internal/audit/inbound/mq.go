package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/chrono-hq/chrono-auth/internal/pkg/config"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/shared/event"
)

func RegisterMQConsumer(ctx context.Context, cfg config.Config, routine *goroutine.Manager,
	messenger messaging.Messaging, uuid uid.StringID, uc uc, ins instrument.Instrumentation,
) {
	handler := &MQHandler{uc: uc, uuid: uuid, ins: ins}
	names := cfg.GetArray("modules.audit.consumer_names")

	consumers := []struct {
		name    string
		topic   string
		group   string
		handler messaging.Handler
	}{
		{
			name:    event.ActivityRecordedConsumerAudit,
			topic:   event.ActivityRecordedDestination,
			group:   event.ActivityRecordedConsumerAudit,
			handler: handler.ActivityRecorded,
		},
	}

	for _, consumer := range consumers {
		if !slices.Contains(names, consumer.name) {
			continue
		}

		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "starting consumer", "name", consumer.name, "topic", consumer.topic)

			err := messenger.Consume(pCtx, consumer.topic, consumer.handler,
				messaging.WithQueueGroup(consumer.group),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(10),
			)
			if err != nil {
				slog.ErrorContext(pCtx, "consumer stopped", "name", consumer.name, "error", err)
			}

			return err
		})
	}
}
