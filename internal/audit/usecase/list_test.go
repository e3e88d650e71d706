package usecase

import (
	"testing"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedActivities(t *testing.T, env *testEnv) {
	t.Helper()

	require.NoError(t, env.uc.Record(t.Context(), RecordInput{Username: "alice", Action: "LOGIN"}))
	require.NoError(t, env.uc.Record(t.Context(), RecordInput{Username: "alice", Action: "VIEW_OTP"}))
	require.NoError(t, env.uc.Record(t.Context(), RecordInput{Username: "bob", Action: "LOGIN"}))
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	seedActivities(t, env)

	out, err := env.uc.List(authCtx(t.Context(), "alice", jwt.RoleUser))
	require.NoError(t, err)
	require.Len(t, out.Activities, 2)
	for _, act := range out.Activities {
		assert.Equal(t, "alice", act.Username)
	}
}

func TestList_AdminSeesAll(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	seedActivities(t, env)

	out, err := env.uc.List(authCtx(t.Context(), "carol", jwt.RoleAdmin))
	require.NoError(t, err)
	assert.Len(t, out.Activities, 3)
}

func TestList_AnonymousRejected(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	_, err = env.uc.List(t.Context())
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}
