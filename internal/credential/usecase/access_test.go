package usecase

import (
	"testing"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCredential creates a credential owned by alice and returns its id.
func seedCredential(t *testing.T, env *testEnv) int64 {
	t.Helper()

	ctx := authCtx(t.Context(), "alice", jwt.RoleUser)
	out, err := env.uc.Create(ctx, CreateInput{ServiceName: "GitHub", Secret: "GEZDGNBVGY3TQOJQ"})
	require.NoError(t, err)

	return out.Credential.ID
}

func TestCode_OwnerAllowed(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	out, err := env.uc.Code(authCtx(t.Context(), "alice", jwt.RoleUser), CodeInput{ID: id})
	require.NoError(t, err)

	assert.Len(t, out.Code, 6)
	assert.Equal(t, "GitHub", out.ServiceName)
	assert.Greater(t, out.ExpiresIn, int64(0))
	assert.LessOrEqual(t, out.ExpiresIn, int64(30))
}

func TestCode_ForeignUserDenied(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	_, err = env.uc.Code(authCtx(t.Context(), "bob", jwt.RoleUser), CodeInput{ID: id})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeNotFound, gerr.Code())
	assert.Equal(t, "credential not found or unauthorized", gerr.Msg())
}

func TestCode_AdminAllowed(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	out, err := env.uc.Code(authCtx(t.Context(), "bob", jwt.RoleAdmin), CodeInput{ID: id})
	require.NoError(t, err)
	assert.Len(t, out.Code, 6)
}

func TestCode_MissingCredentialLooksLikeDenial(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	// A nonexistent id and a foreign id yield the same error, so callers
	// cannot probe which ids exist.
	_, errMissing := env.uc.Code(authCtx(t.Context(), "bob", jwt.RoleUser), CodeInput{ID: id + 1000})
	_, errForeign := env.uc.Code(authCtx(t.Context(), "bob", jwt.RoleUser), CodeInput{ID: id})

	require.Error(t, errMissing)
	require.Error(t, errForeign)
	assert.Equal(t, errForeign.Error(), errMissing.Error())
}

func TestDelete_OwnerAllowed(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	require.NoError(t, env.uc.Delete(authCtx(t.Context(), "alice", jwt.RoleUser), DeleteInput{ID: id}))

	_, err = env.db.GetCredentialByID(t.Context(), id)
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestDelete_ForeignUserDenied(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	err = env.uc.Delete(authCtx(t.Context(), "bob", jwt.RoleUser), DeleteInput{ID: id})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeNotFound, gerr.Code())

	// The credential survives the denied attempt.
	_, err = env.db.GetCredentialByID(t.Context(), id)
	assert.NoError(t, err)
}

func TestDelete_AdminAllowed(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)
	id := seedCredential(t, env)

	require.NoError(t, env.uc.Delete(authCtx(t.Context(), "bob", jwt.RoleAdmin), DeleteInput{ID: id}))
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	_, err = env.uc.Create(authCtx(t.Context(), "alice", jwt.RoleUser),
		CreateInput{ServiceName: "GitHub", Secret: "GEZDGNBVGY3TQOJQ"})
	require.NoError(t, err)
	_, err = env.uc.Create(authCtx(t.Context(), "bob", jwt.RoleUser),
		CreateInput{ServiceName: "GitLab", Secret: "JBSWY3DPEHPK3PXP"})
	require.NoError(t, err)

	out, err := env.uc.List(authCtx(t.Context(), "alice", jwt.RoleUser))
	require.NoError(t, err)
	require.Len(t, out.Credentials, 1)
	assert.Equal(t, "GitHub", out.Credentials[0].ServiceName)
	assert.Empty(t, out.Credentials[0].Secret)

	admin, err := env.uc.List(authCtx(t.Context(), "carol", jwt.RoleAdmin))
	require.NoError(t, err)
	assert.Len(t, admin.Credentials, 2)
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
