package db

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/identity/entity"
	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

const queryGetUserByUsername = `
SELECT id, username, role, created_at
FROM users
WHERE username = $1
`

func (s *DB) GetUserByUsername(ctx context.Context, username string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	var (
		user entity.User
		role string
	)
	err = s.conn.QueryRow(ctx, queryGetUserByUsername, username).
		Scan(&user.ID, &user.Username, &role, &user.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	// Rows written before the role migration may still carry a prefixed or
	// lower-cased value.
	user.Role, err = jwt.ParseRole(role)
	if err != nil {
		user.Role = jwt.RoleUser
	}

	return &user, nil
}

const queryCreateUser = `
INSERT INTO users (id, username, role, created_at)
VALUES ($1, $2, $3, $4)
`

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser,
		user.ID, user.Username, string(user.Role), user.CreatedAt)

	return s.mapError(err)
}
