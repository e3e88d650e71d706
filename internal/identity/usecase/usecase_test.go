package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/identity/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/config"
	"github.com/chrono-hq/chrono-auth/internal/pkg/directory"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
)

type fakeDB struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[string]entity.User)}
}

func (f *fakeDB) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[username]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &user, nil
}

func (f *fakeDB) CreateUser(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.Username]; ok {
		return goerror.ErrConflict
	}
	f.users[user.Username] = user
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

type rejectingDirectory struct{}

func (rejectingDirectory) Authenticate(context.Context, string, string) error {
	return directory.ErrInvalidCredentials
}

type testEnv struct {
	uc  *Usecase
	db  *fakeDB
	msg *fakeMessaging
	jwt jwt.JWT
}

func newTestEnv(dir directory.Authenticator, cfgYAML string) (*testEnv, error) {
	val, err := validator.NewV10Validator()
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(cfgYAML))
	if err != nil {
		return nil, err
	}

	tokens, err := newTestJWT()
	if err != nil {
		return nil, err
	}

	db := newFakeDB()
	msg := &fakeMessaging{}

	uc := New(Dependency{
		RepoDB:        db,
		RepoMessaging: msg,
		Validator:     val,
		Config:        cfg,
		Directory:     dir,
		UID:           &fakeNumberID{},
		Clock:         clock.New(),
		JWT:           tokens,
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(4),
	})

	return &testEnv{uc: uc, db: db, msg: msg, jwt: tokens}, nil
}

func newTestJWT() (jwt.JWT, error) {
	return jwt.NewHS512(jwt.Config{
		Secret: []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer: "chrono-auth-test",
		TTL:    24 * time.Hour,
		Clock:  clock.New(),
		UUID:   uid.NewUUID(),
	})
}

const testCfgYAML = `
modules:
  identity:
    session_ttl_hours: 24
    admin_usernames: admin,root
`
