package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/identity/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/directory"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

type LoginInput struct {
	Username string `validate:"required,max=100"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	Token     string
	Username  string
	Role      jwt.Role
	ExpiresIn time.Duration
}

// Login authenticates the credentials against the user directory, provisions
// a local account on first sight, and issues a session token.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	username := strings.TrimSpace(in.Username)

	if err := s.directory.Authenticate(ctx, username, in.Password); err != nil {
		if errors.Is(err, directory.ErrInvalidCredentials) {
			slog.WarnContext(ctx, "directory rejected credentials", "username", username)
			return nil, goerror.NewBusiness("invalid username or password", goerror.CodeUnauthorized)
		}

		slog.ErrorContext(ctx, "failed to reach user directory", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.getOrCreateUser(ctx, username)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(user.Username, user.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "username", user.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordActivity(ctx, ActivityEvent{
		Username: user.Username,
		Action:   "LOGIN",
		Details:  "user logged in",
	})

	return &LoginOutput{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresIn: s.cfg.GetHour("modules.identity.session_ttl_hours"),
	}, nil
}

func (s *Usecase) getOrCreateUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.repoDB.GetUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by username", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.User{
		ID:        s.uid.Generate(),
		Username:  username,
		Role:      s.initialRole(username),
		CreatedAt: s.clock.Now(),
	}

	err = s.repoDB.CreateUser(ctx, newUser)
	if errors.Is(err, goerror.ErrConflict) {
		// Lost a race with a concurrent first login; the stored row wins.
		user, err = s.repoDB.GetUserByUsername(ctx, username)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo re-get user by username", "username", username, "error", err)
			return nil, goerror.NewServer(err)
		}
		return user, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "username", username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &newUser, nil
}

// initialRole grants ADMIN on first login when the username appears in the
// configured administrator list, USER otherwise.
func (s *Usecase) initialRole(username string) jwt.Role {
	if slices.Contains(s.cfg.GetArray("modules.identity.admin_usernames"), username) {
		return jwt.RoleAdmin
	}
	return jwt.RoleUser
}
