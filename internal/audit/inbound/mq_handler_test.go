package inbound

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/audit/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/shared/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	body    []byte
	headers []messaging.Header
}

func (f *fakeMessage) Body() []byte                { return f.body }
func (f *fakeMessage) Headers() []messaging.Header { return f.headers }
func (f *fakeMessage) Subject() string             { return event.ActivityRecordedDestination }
func (f *fakeMessage) Timestamp() time.Time        { return time.Now() }
func (f *fakeMessage) Ack(context.Context) error   { return nil }

type recordingUC struct {
	inputs []usecase.RecordInput
	err    error
}

func (r *recordingUC) Record(_ context.Context, in usecase.RecordInput) error {
	r.inputs = append(r.inputs, in)
	return r.err
}

func (r *recordingUC) List(context.Context) (*usecase.ListOutput, error) {
	return &usecase.ListOutput{}, nil
}

func newHandler(uc uc) *MQHandler {
	return &MQHandler{uc: uc, uuid: uid.NewUUID(), ins: instrument.NewNoop()}
}

func TestActivityRecorded_PersistsPayload(t *testing.T) {
	t.Parallel()

	rec := &recordingUC{}
	handler := newHandler(rec)

	occurredAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	body, err := json.Marshal(event.ActivityRecordedMessage{
		Username:   "alice",
		Action:     "LOGIN",
		Details:    "session opened",
		OccurredAt: occurredAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	err = handler.ActivityRecorded(t.Context(), &fakeMessage{
		body:    body,
		headers: []messaging.Header{{Key: "cID", Value: []byte("corr-1")}},
	})
	require.NoError(t, err)

	require.Len(t, rec.inputs, 1)
	assert.Equal(t, "alice", rec.inputs[0].Username)
	assert.Equal(t, "LOGIN", rec.inputs[0].Action)
	assert.Equal(t, occurredAt, rec.inputs[0].OccurredAt.UTC())
}

func TestActivityRecorded_DropsUndecodableMessage(t *testing.T) {
	t.Parallel()

	rec := &recordingUC{}
	handler := newHandler(rec)

	err := handler.ActivityRecorded(t.Context(), &fakeMessage{body: []byte("not json")})
	require.NoError(t, err)
	assert.Empty(t, rec.inputs)
}

func TestActivityRecorded_PropagatesUsecaseError(t *testing.T) {
	t.Parallel()

	rec := &recordingUC{err: assert.AnError}
	handler := newHandler(rec)

	body, err := json.Marshal(event.ActivityRecordedMessage{Username: "alice", Action: "LOGIN"})
	require.NoError(t, err)

	err = handler.ActivityRecorded(t.Context(), &fakeMessage{body: body})
	assert.ErrorIs(t, err, assert.AnError)
}
