package entity

import (
	"time"

	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

// User is a directory-backed account known to this service.
//
// The password never lives here: credential verification happens against the
// external directory, and this row only pins down identity and role.
type User struct {
	ID        int64
	Username  string
	Role      jwt.Role
	CreatedAt time.Time
}
