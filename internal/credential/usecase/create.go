package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
)

type CreateInput struct {
	ServiceName string `validate:"required,max=100"`
	Secret      string `validate:"required,base32secret"`
}

type CreateOutput struct {
	Credential entity.Credential
}

// Create stores a new OTP credential for the calling user.
func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Secret = normalizeSecret(in.Secret)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cred := entity.Credential{
		ID:          s.uid.Generate(),
		Username:    clm.Identity,
		ServiceName: strings.TrimSpace(in.ServiceName),
		Secret:      in.Secret,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repoDB.CreateCredential(ctx, cred); err != nil {
		slog.ErrorContext(ctx, "failed to repo create credential",
			"username", clm.Identity, "service_name", cred.ServiceName, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordActivity(ctx, ActivityEvent{
		Username: clm.Identity,
		Action:   "ADD_SERVICE",
		Details:  cred.ServiceName,
	})

	cred.Secret = ""
	return &CreateOutput{Credential: cred}, nil
}

// normalizeSecret strips spaces and upper-cases the shared secret so the
// stored form matches what authenticator apps emit.
func normalizeSecret(secret string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), " ", ""))
}
