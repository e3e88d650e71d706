package usecase

import (
	"context"
	"sync"

	"github.com/chrono-hq/chrono-auth/internal/audit/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
)

type fakeDB struct {
	mu   sync.Mutex
	acts []entity.Activity
}

func (f *fakeDB) CreateActivity(_ context.Context, act entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.acts = append(f.acts, act)
	return nil
}

func (f *fakeDB) ListActivities(context.Context) ([]entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]entity.Activity{}, f.acts...), nil
}

func (f *fakeDB) ListActivitiesByUsername(_ context.Context, username string) ([]entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Activity
	for _, act := range f.acts {
		if act.Username == username {
			out = append(out, act)
		}
	}
	return out, nil
}

type fakeNumberID struct {
	mu   sync.Mutex
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	return f.next
}

type testEnv struct {
	uc *Usecase
	db *fakeDB
}

func newTestEnv() (*testEnv, error) {
	val, err := validator.NewV10Validator()
	if err != nil {
		return nil, err
	}

	db := &fakeDB{}

	uc := New(Dependency{
		RepoDB:     db,
		Validator:  val,
		UID:        &fakeNumberID{},
		Clock:      clock.New(),
		Instrument: instrument.NewNoop(),
	})

	return &testEnv{uc: uc, db: db}, nil
}

func authCtx(ctx context.Context, username string, role jwt.Role) context.Context {
	return jwt.SetAuth(ctx, jwt.Claims{Identity: username, Role: role})
}
