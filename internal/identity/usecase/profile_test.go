package usecase

import (
	"testing"

	"github.com/chrono-hq/chrono-auth/internal/pkg/directory"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_ReturnsPrincipal(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	_, err = env.uc.Login(t.Context(), LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	ctx := jwt.SetAuth(t.Context(), jwt.Claims{Identity: "alice", Role: jwt.RoleUser})

	out, err := env.uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, jwt.RoleUser, out.Role)
}

func TestProfile_AnonymousRejected(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	_, err = env.uc.Profile(t.Context())
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestProfile_UnknownUserFallsBackToClaims(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	ctx := jwt.SetAuth(t.Context(), jwt.Claims{Identity: "ghost", Role: jwt.RoleAdmin})

	out, err := env.uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ghost", out.Username)
	assert.Equal(t, jwt.RoleAdmin, out.Role)
}

func TestLogout_RecordsActivityForPrincipal(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	ctx := jwt.SetAuth(t.Context(), jwt.Claims{Identity: "alice", Role: jwt.RoleUser})
	require.NoError(t, env.uc.Logout(ctx))

	require.NoError(t, env.uc.goroutine.Wait())

	events := env.msg.published()
	require.Len(t, events, 1)
	assert.Equal(t, "LOGOUT", events[0].Action)
}

func TestLogout_AnonymousIsNoop(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	require.NoError(t, env.uc.Logout(t.Context()))
	require.NoError(t, env.uc.goroutine.Wait())
	assert.Empty(t, env.msg.published())
}
