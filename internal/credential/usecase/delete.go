package usecase

import (
	"context"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
)

type DeleteInput struct {
	ID int64 `validate:"required"`
}

// Delete removes an OTP credential the caller owns; admins may remove any.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	cred, err := s.accessibleCredential(ctx, clm, in.ID)
	if err != nil {
		return err
	}

	if err := s.repoDB.DeleteCredential(ctx, cred.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete credential",
			"credential_id", cred.ID, "username", clm.Identity, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, ActivityEvent{
		Username: clm.Identity,
		Action:   "DELETE_SERVICE",
		Details:  cred.ServiceName,
	})

	return nil
}
