package inbound

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/identity/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/config"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

// defaultCookiePath scopes the session cookie to the API surface when no
// path is configured.
const defaultCookiePath = "/api"

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, cfg config.Config) {
	end := &HTTPEndpoint{uc: uc, cookiePath: sessionCookiePath(cfg)}

	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/logout", end.Logout)

	// need authenticated
	r.GET("/api/v1/auth/profile", end.Profile)
}

func sessionCookiePath(cfg config.Config) string {
	if cfg != nil {
		if path := cfg.GetString("modules.identity.cookie_path"); path != "" {
			return path
		}
	}
	return defaultCookiePath
}
