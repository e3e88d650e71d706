package entity

import "time"

// Credential is a stored OTP secret for one external service.
//
// Secret holds the base32 shared secret in plaintext. It only exists in this
// form in memory; the db layer encrypts it before it touches storage.
type Credential struct {
	ID          int64
	Username    string
	ServiceName string
	Secret      string
	CreatedAt   time.Time
}
