package inbound

import (
	"testing"

	"github.com/chrono-hq/chrono-auth/internal/pkg/config"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookiePath(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  identity:
    cookie_path: "/app"
`))
	require.NoError(t, err)
	assert.Equal(t, "/app", sessionCookiePath(cfg))

	empty, err := config.NewViperFromBytes("yaml", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "/api", sessionCookiePath(empty))

	assert.Equal(t, "/api", sessionCookiePath(nil))
}

func TestLoginResponse_Cookie(t *testing.T) {
	t.Parallel()

	resp := LoginResponse{Token: "tok", ExpiresIn: 86400, cookiePath: "/app"}

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, router.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogoutResponse_ClearsCookie(t *testing.T) {
	t.Parallel()

	cookies := LogoutResponse{cookiePath: "/app"}.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, router.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
