package entity

import "time"

// Activity is one row of the audit trail: who did what, when.
type Activity struct {
	ID        int64
	Username  string
	Action    string
	Details   string
	CreatedAt time.Time
}
