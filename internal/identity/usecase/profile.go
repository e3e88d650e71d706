package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

type ProfileOutput struct {
	Username string
	Role     jwt.Role
}

// Profile returns the authenticated caller's identity and role.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByUsername(ctx, clm.Identity)
	if errors.Is(err, goerror.ErrNotFound) {
		// A valid token for a user that no longer exists falls back to the
		// claims themselves.
		return &ProfileOutput{Username: clm.Identity, Role: clm.Role}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", clm.Identity, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
