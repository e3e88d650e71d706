package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chrono-hq/chrono-auth/internal/pkg/goerror"
	"github.com/chrono-hq/chrono-auth/internal/pkg/instrument"
	"github.com/chrono-hq/chrono-auth/internal/pkg/vault"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DB persists OTP credentials. It is the encryption boundary: secrets are
// encrypted on the way in and decrypted on the way out, so nothing above
// this layer ever sees ciphertext.
type DB struct {
	conn  *pgxpool.Pool
	vault *vault.Vault
	ins   instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, v *vault.Vault, ins instrument.Instrumentation) *DB {
	return &DB{
		conn:  conn,
		vault: v,
		ins:   ins,
	}
}

// - 23505 unique violation → goerror.ErrConflict
func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("credential.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) decryptSecret(ctx context.Context, id int64, stored string) string {
	secret, outcome := s.vault.Decrypt(stored)
	if outcome == vault.OutcomeLegacyPlaintext {
		slog.DebugContext(ctx, "credential secret read as legacy plaintext", "credential_id", id)
	}
	return secret
}
