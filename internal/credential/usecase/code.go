package usecase

import (
	"context"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/totp"
)

type CodeInput struct {
	ID int64 `validate:"required"`
}

type CodeOutput struct {
	ServiceName string
	Code        string
	// ExpiresIn is how many seconds the code stays valid.
	ExpiresIn int64
}

// Code computes the current one-time code for a credential the caller owns;
// admins may read any.
func (s *Usecase) Code(ctx context.Context, in CodeInput) (*CodeOutput, error) {
	ctx, span := s.startSpan(ctx, "Code")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	cred, err := s.accessibleCredential(ctx, clm, in.ID)
	if err != nil {
		return nil, err
	}

	code, err := s.totp.Code(cred.Secret)
	if err != nil {
		// A stored secret that no longer decodes means the row predates
		// encryption or was written corrupted.
		slog.ErrorContext(ctx, "failed to compute one-time code",
			"credential_id", cred.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordActivity(ctx, ActivityEvent{
		Username: clm.Identity,
		Action:   "VIEW_OTP",
		Details:  cred.ServiceName,
	})

	return &CodeOutput{
		ServiceName: cred.ServiceName,
		Code:        code,
		ExpiresIn:   totp.Period - s.clock.Now().Unix()%totp.Period,
	}, nil
}
