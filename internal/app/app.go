package app

import (
	"context"
	"net/http"

	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/config"
	"github.com/chrono-hq/chrono-auth/internal/pkg/directory"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
	"github.com/chrono-hq/chrono-auth/internal/pkg/totp"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
	"github.com/chrono-hq/chrono-auth/internal/pkg/vault"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID
	totp      *totp.Engine
	vault     *vault.Vault
	jwt       jwt.JWT
	directory directory.Authenticator

	// resources
	dbConn    *pgxpool.Pool
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDirectory()
	app.initDatabase()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
