package inbound

import (
	"net/http"

	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in"`

	cookiePath string
}

func (l LoginResponse) Message() string {
	return "login successful"
}

func (l LoginResponse) Cookies() []*http.Cookie {
	return []*http.Cookie{{
		Name:     router.SessionCookieName,
		Value:    l.Token,
		Path:     l.cookiePath,
		MaxAge:   int(l.ExpiresIn),
		HttpOnly: true,
	}}
}

type LogoutResponse struct {
	cookiePath string
}

func (LogoutResponse) Message() string {
	return "logout successful"
}

func (l LogoutResponse) Cookies() []*http.Cookie {
	return []*http.Cookie{{
		Name:     router.SessionCookieName,
		Value:    "",
		Path:     l.cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
	}}
}

type ProfileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
