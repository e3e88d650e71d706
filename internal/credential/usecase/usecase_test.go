package usecase

import (
	"context"
	"sync"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/chrono-hq/chrono-auth/internal/pkg/totp"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
)

type fakeDB struct {
	mu    sync.Mutex
	creds map[int64]entity.Credential
}

func newFakeDB() *fakeDB {
	return &fakeDB{creds: make(map[int64]entity.Credential)}
}

func (f *fakeDB) ListCredentials(context.Context) ([]entity.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Credential
	for _, cred := range f.creds {
		out = append(out, cred)
	}
	return out, nil
}

func (f *fakeDB) ListCredentialsByUsername(_ context.Context, username string) ([]entity.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.Credential
	for _, cred := range f.creds {
		if cred.Username == username {
			out = append(out, cred)
		}
	}
	return out, nil
}

func (f *fakeDB) GetCredentialByID(_ context.Context, id int64) (*entity.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cred, ok := f.creds[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &cred, nil
}

func (f *fakeDB) CreateCredential(_ context.Context, cred entity.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creds[cred.ID] = cred
	return nil
}

func (f *fakeDB) DeleteCredential(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.creds, id)
	return nil
}

type fakeMessaging struct {
	mu     sync.Mutex
	events []ActivityEvent
}

func (f *fakeMessaging) PublishActivity(_ context.Context, msg ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, msg)
	return nil
}

func (f *fakeMessaging) published() []ActivityEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]ActivityEvent{}, f.events...)
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
	uc  *Usecase
	db  *fakeDB
	msg *fakeMessaging
}

func newTestEnv() (*testEnv, error) {
	val, err := validator.NewV10Validator()
	if err != nil {
		return nil, err
	}

	db := newFakeDB()
	msg := &fakeMessaging{}

	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: msg,
		Validator:     val,
		Totp:          totp.New(totp.DefaultDigits, clock.New()),
		UID:           &fakeNumberID{},
		Clock:         clock.New(),
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(4),
	})

	return &testEnv{uc: uc, db: db, msg: msg}, nil
}

func authCtx(ctx context.Context, username string, role jwt.Role) context.Context {
	return jwt.SetAuth(ctx, jwt.Claims{Identity: username, Role: role})
}
