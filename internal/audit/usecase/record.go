package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/audit/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
)

type RecordInput struct {
	Username   string `validate:"required,max=100"`
	Action     string `validate:"required,max=50"`
	Details    string `validate:"max=500"`
	OccurredAt time.Time
}

// Record persists one consumed activity fact.
func (s *Usecase) Record(ctx context.Context, in RecordInput) error {
	ctx, span := s.startSpan(ctx, "Record")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = s.clock.Now()
	}

	if err := s.repoDB.CreateActivity(ctx, entity.Activity{
		ID:        s.uid.Generate(),
		Username:  in.Username,
		Action:    in.Action,
		Details:   in.Details,
		CreatedAt: occurredAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create activity",
			"username", in.Username, "action", in.Action, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
