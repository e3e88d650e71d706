package usecase

import (
	"testing"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_StoresNormalizedSecret(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	ctx := authCtx(t.Context(), "alice", jwt.RoleUser)

	out, err := env.uc.Create(ctx, CreateInput{
		ServiceName: "GitHub",
		Secret:      "gezd gnbv gy3t qojq",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", out.Credential.Username)
	assert.Equal(t, "GitHub", out.Credential.ServiceName)
	assert.Empty(t, out.Credential.Secret)

	stored, err := env.db.GetCredentialByID(t.Context(), out.Credential.ID)
	require.NoError(t, err)
	assert.Equal(t, "GEZDGNBVGY3TQOJQ", stored.Secret)
}

func TestCreate_RejectsInvalidSecret(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	ctx := authCtx(t.Context(), "alice", jwt.RoleUser)

	_, err = env.uc.Create(ctx, CreateInput{ServiceName: "GitHub", Secret: "INVALID!!!"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
}

func TestCreate_AnonymousRejected(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	_, err = env.uc.Create(t.Context(), CreateInput{ServiceName: "GitHub", Secret: "GEZDGNBVGY3TQOJQ"})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestCreate_PublishesActivity(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	ctx := authCtx(t.Context(), "alice", jwt.RoleUser)

	_, err = env.uc.Create(ctx, CreateInput{ServiceName: "GitHub", Secret: "GEZDGNBVGY3TQOJQ"})
	require.NoError(t, err)

	require.NoError(t, env.uc.goroutine.Wait())

	events := env.msg.published()
	require.Len(t, events, 1)
	assert.Equal(t, "ADD_SERVICE", events[0].Action)
	assert.Equal(t, "GitHub", events[0].Details)
}
