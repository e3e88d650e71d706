package usecase

import (
	"context"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/audit/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
)

type ListOutput struct {
	Activities []entity.Activity
}

// List returns the caller's activity entries newest first; admins see the
// whole trail.
func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	var acts []entity.Activity
	if clm.Role.IsAdmin() {
		acts, err = s.repoDB.ListActivities(ctx)
	} else {
		acts, err = s.repoDB.ListActivitiesByUsername(ctx, clm.Identity)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list activities", "username", clm.Identity, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Activities: acts}, nil
}
