package usecase

import (
	"context"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
)

type ListOutput struct {
	Credentials []entity.Credential
}

// List returns the caller's OTP credentials; admins see every credential.
// Secrets stay out of the output regardless of role.
func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	var creds []entity.Credential
	if clm.Role.IsAdmin() {
		creds, err = s.repoDB.ListCredentials(ctx)
	} else {
		creds, err = s.repoDB.ListCredentialsByUsername(ctx, clm.Identity)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list credentials", "username", clm.Identity, "error", err)
		return nil, goerror.NewServer(err)
	}

	for i := range creds {
		creds[i].Secret = ""
	}

	return &ListOutput{Credentials: creds}, nil
}
