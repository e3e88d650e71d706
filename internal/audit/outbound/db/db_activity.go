package db

import (
	"context"

	"github.com/chrono-hq/chrono-auth/internal/audit/entity"
	"github.com/jackc/pgx/v5"
)

const queryCreateActivity = `
INSERT INTO activity_logs (id, username, action, details, created_at)
VALUES ($1, $2, $3, $4, $5)
`

const queryListActivities = `
SELECT id, username, action, details, created_at
FROM activity_logs
ORDER BY created_at DESC, id DESC
`

const queryListActivitiesByUsername = `
SELECT id, username, action, details, created_at
FROM activity_logs
WHERE username = $1
ORDER BY created_at DESC, id DESC
`

func (s *DB) CreateActivity(ctx context.Context, act entity.Activity) (err error) {
	ctx, span := s.startSpan(ctx, "CreateActivity")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateActivity,
		act.ID, act.Username, act.Action, act.Details, act.CreatedAt)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) ListActivities(ctx context.Context) (_ []entity.Activity, err error) {
	ctx, span := s.startSpan(ctx, "ListActivities")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListActivities)
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.scanActivities(rows)
}

func (s *DB) ListActivitiesByUsername(ctx context.Context, username string) (_ []entity.Activity, err error) {
	ctx, span := s.startSpan(ctx, "ListActivitiesByUsername")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListActivitiesByUsername, username)
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.scanActivities(rows)
}

func (s *DB) scanActivities(rows pgx.Rows) ([]entity.Activity, error) {
	defer rows.Close()

	var acts []entity.Activity
	for rows.Next() {
		var act entity.Activity
		if err := rows.Scan(&act.ID, &act.Username, &act.Action, &act.Details, &act.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		acts = append(acts, act)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return acts, nil
}
