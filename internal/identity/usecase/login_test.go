package usecase

import (
	"testing"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/pkg/directory"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ProvisionsUserAndIssuesToken(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	out, err := env.uc.Login(t.Context(), LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, jwt.RoleUser, out.Role)
	assert.Equal(t, 24*time.Hour, out.ExpiresIn)

	claims, err := env.jwt.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Identity)
	assert.Equal(t, jwt.RoleUser, claims.Role)

	// First login created the local account.
	user, err := env.db.GetUserByUsername(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleUser, user.Role)
}

func TestLogin_AdminListGrantsAdminRole(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	out, err := env.uc.Login(t.Context(), LoginInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, out.Role)
}

func TestLogin_ExistingUserKeepsStoredRole(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	// Second login must not demote or re-provision.
	_, err = env.uc.Login(t.Context(), LoginInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	out, err := env.uc.Login(t.Context(), LoginInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, out.Role)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(rejectingDirectory{}, testCfgYAML)
	require.NoError(t, err)

	_, err = env.uc.Login(t.Context(), LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())

	// No account is provisioned on failed authentication.
	_, err = env.db.GetUserByUsername(t.Context(), "alice")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestLogin_ValidatesInput(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	_, err = env.uc.Login(t.Context(), LoginInput{Username: "", Password: "secret"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
}

func TestLogin_PublishesActivity(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv(directory.NewBypass(), testCfgYAML)
	require.NoError(t, err)

	_, err = env.uc.Login(t.Context(), LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, env.uc.goroutine.Wait())

	events := env.msg.published()
	require.Len(t, events, 1)
	assert.Equal(t, "alice", events[0].Username)
	assert.Equal(t, "LOGIN", events[0].Action)
}
