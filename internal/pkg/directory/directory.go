package directory

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when the directory rejects the
// username/password pair.
var ErrInvalidCredentials = errors.New("directory: invalid credentials")

// Authenticator verifies a username/password pair against a user directory.
//
// Implementations must treat ErrInvalidCredentials as the only signal for a
// rejected pair; any other error means the directory itself failed.
type Authenticator interface {
	// Authenticate checks the credentials and returns nil when they are valid.
	Authenticate(ctx context.Context, username, password string) error
}
