package directory

import "context"

// Bypass accepts any non-empty username/password pair.
//
// It exists for local development and demos where no directory server runs.
// Never enable it in production configuration.
type Bypass struct{}

// NewBypass returns a Bypass authenticator.
func NewBypass() *Bypass {
	return &Bypass{}
}

// Authenticate accepts any non-empty pair.
func (*Bypass) Authenticate(_ context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}
	return nil
}
