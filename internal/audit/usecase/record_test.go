package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_PersistsActivity(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	occurredAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	err = env.uc.Record(t.Context(), RecordInput{
		Username:   "alice",
		Action:     "LOGIN",
		Details:    "session opened",
		OccurredAt: occurredAt,
	})
	require.NoError(t, err)

	acts, err := env.db.ListActivities(t.Context())
	require.NoError(t, err)
	require.Len(t, acts, 1)

	assert.NotZero(t, acts[0].ID)
	assert.Equal(t, "alice", acts[0].Username)
	assert.Equal(t, "LOGIN", acts[0].Action)
	assert.Equal(t, "session opened", acts[0].Details)
	assert.Equal(t, occurredAt, acts[0].CreatedAt)
}

func TestRecord_DefaultsOccurredAt(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	require.NoError(t, env.uc.Record(t.Context(), RecordInput{Username: "alice", Action: "LOGOUT"}))

	acts, err := env.db.ListActivities(t.Context())
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.WithinDuration(t, time.Now(), acts[0].CreatedAt, time.Minute)
}

func TestRecord_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	env, err := newTestEnv()
	require.NoError(t, err)

	assert.Error(t, env.uc.Record(t.Context(), RecordInput{Username: "", Action: "LOGIN"}))
	assert.Error(t, env.uc.Record(t.Context(), RecordInput{Username: "alice", Action: ""}))
}
