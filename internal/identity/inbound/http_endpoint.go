package inbound

import (
	"github.com/chrono-hq/chrono-auth/internal/identity/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication workflows.
type HTTPEndpoint struct {
	uc         uc
	cookiePath string
}

// Login authenticates a user against the directory and starts a session.
//
// The session token travels both ways: in the response body for API clients
// and as an http-only cookie for browsers.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Token:      resp.Token,
		Username:   resp.Username,
		Role:       string(resp.Role),
		ExpiresIn:  int64(resp.ExpiresIn.Seconds()),
		cookiePath: h.cookiePath,
	}, nil
}

// Logout ends the session by clearing the session cookie.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	if err := h.uc.Logout(r.Context()); err != nil {
		return nil, err
	}

	return LogoutResponse{cookiePath: h.cookiePath}, nil
}

// Profile returns the authenticated caller's identity and role.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		Username: resp.Username,
		Role:     string(resp.Role),
	}, nil
}
