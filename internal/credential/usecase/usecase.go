package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/chrono-hq/chrono-auth/internal/pkg/totp"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// ActivityEvent is a fact about something a user did, published for the audit
// trail.
type ActivityEvent struct {
	Username string
	Action   string
	Details  string
}

type repoMessaging interface {
	PublishActivity(ctx context.Context, msg ActivityEvent) error
}

type repoDB interface {
	ListCredentials(ctx context.Context) ([]entity.Credential, error)
	ListCredentialsByUsername(ctx context.Context, username string) ([]entity.Credential, error)
	GetCredentialByID(ctx context.Context, id int64) (*entity.Credential, error)
	CreateCredential(ctx context.Context, cred entity.Credential) error
	DeleteCredential(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	totp          *totp.Engine
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Totp          *totp.Engine
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		totp:          dep.Totp,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// accessibleCredential loads a credential the caller may act on: the owner or
// an admin. A missing row and a foreign row produce the same answer so the
// response never leaks whether the id exists.
func (s *Usecase) accessibleCredential(ctx context.Context, clm *jwt.Claims, id int64) (*entity.Credential, error) {
	cred, err := s.repoDB.GetCredentialByID(ctx, id)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get credential", "credential_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err != nil || (cred.Username != clm.Identity && !clm.Role.IsAdmin()) {
		slog.WarnContext(ctx, "credential access denied",
			"credential_id", id, "username", clm.Identity)
		return nil, goerror.NewBusiness("credential not found or unauthorized", goerror.CodeNotFound)
	}

	return cred, nil
}

// recordActivity publishes the activity fact in the background. Auditing is
// best effort and never fails the operation being audited.
func (s *Usecase) recordActivity(ctx context.Context, ev ActivityEvent) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishActivity(ctx, ev); err != nil {
			slog.WarnContext(ctx, "failed to publish activity event",
				"username", ev.Username, "action", ev.Action, "error", err)
		}
		return nil
	})
}
