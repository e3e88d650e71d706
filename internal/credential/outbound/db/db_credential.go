package db

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/credential/entity"
)

const queryListCredentials = `
SELECT id, username, service_name, secret, created_at
FROM otp_credentials
ORDER BY created_at DESC, id DESC
`

func (s *DB) ListCredentials(ctx context.Context) (_ []entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "ListCredentials")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListCredentials)
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.scanCredentials(ctx, rows)
}

const queryListCredentialsByUsername = `
SELECT id, username, service_name, secret, created_at
FROM otp_credentials
WHERE username = $1
ORDER BY created_at DESC, id DESC
`

func (s *DB) ListCredentialsByUsername(ctx context.Context, username string) (_ []entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "ListCredentialsByUsername")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListCredentialsByUsername, username)
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.scanCredentials(ctx, rows)
}

const queryGetCredentialByID = `
SELECT id, username, service_name, secret, created_at
FROM otp_credentials
WHERE id = $1
`

func (s *DB) GetCredentialByID(ctx context.Context, id int64) (_ *entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "GetCredentialByID")
	defer func() { s.endSpan(span, err) }()

	var (
		cred   entity.Credential
		stored string
	)
	err = s.conn.QueryRow(ctx, queryGetCredentialByID, id).
		Scan(&cred.ID, &cred.Username, &cred.ServiceName, &stored, &cred.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	cred.Secret = s.decryptSecret(ctx, cred.ID, stored)

	return &cred, nil
}

const queryCreateCredential = `
INSERT INTO otp_credentials (id, username, service_name, secret, created_at)
VALUES ($1, $2, $3, $4, $5)
`

func (s *DB) CreateCredential(ctx context.Context, cred entity.Credential) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCredential")
	defer func() { s.endSpan(span, err) }()

	encrypted, err := s.vault.Encrypt(cred.Secret)
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, queryCreateCredential,
		cred.ID, cred.Username, cred.ServiceName, encrypted, cred.CreatedAt)

	return s.mapError(err)
}

const queryDeleteCredential = `
DELETE FROM otp_credentials
WHERE id = $1
`

func (s *DB) DeleteCredential(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCredential")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryDeleteCredential, id)

	return s.mapError(err)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

func (s *DB) scanCredentials(ctx context.Context, rows rowScanner) ([]entity.Credential, error) {
	defer rows.Close()

	var creds []entity.Credential
	for rows.Next() {
		var (
			cred   entity.Credential
			stored string
		)
		if err := rows.Scan(&cred.ID, &cred.Username, &cred.ServiceName, &stored, &cred.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}

		cred.Secret = s.decryptSecret(ctx, cred.ID, stored)
		creds = append(creds, cred)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return creds, nil
}
