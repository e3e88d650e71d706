package credential

import (
	"github.com/chrono-hq/chrono-auth/internal/credential/inbound"
	"github.com/chrono-hq/chrono-auth/internal/credential/outbound/db"
	"github.com/chrono-hq/chrono-auth/internal/credential/outbound/mq"
	"github.com/chrono-hq/chrono-auth/internal/credential/usecase"
	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/goroutine"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/messaging"
	"github.com/chrono-hq/chrono-auth/internal/pkg/router"
	"github.com/chrono-hq/chrono-auth/internal/pkg/totp"
	"github.com/chrono-hq/chrono-auth/internal/pkg/uid"
	"github.com/chrono-hq/chrono-auth/internal/pkg/validator"
	"github.com/chrono-hq/chrono-auth/internal/pkg/vault"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Vault      *vault.Vault               `validate:"required"`
	Totp       *totp.Engine               `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbCred := db.NewDB(dep.DBConn, dep.Vault, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbCred,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Totp:          dep.Totp,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
