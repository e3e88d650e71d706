package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

// ErrLDAPURLRequired is returned when the LDAP server URL is missing.
var ErrLDAPURLRequired = errors.New("directory: ldap url is required")

// LDAPConfig configures the LDAP authenticator.
type LDAPConfig struct {
	// URL is the LDAP server address, e.g. ldap://localhost:8389.
	URL string
	// BaseDN is the directory root, e.g. dc=example,dc=org.
	BaseDN string
	// UserOU is the organizational unit that holds user entries.
	UserOU string
}

// LDAP authenticates users with a simple bind against an LDAP directory.
type LDAP struct {
	url    string
	baseDN string
	userOU string
}

// NewLDAP constructs an LDAP authenticator.
func NewLDAP(cfg LDAPConfig) (*LDAP, error) {
	if cfg.URL == "" {
		return nil, ErrLDAPURLRequired
	}

	userOU := cfg.UserOU
	if userOU == "" {
		userOU = "users"
	}

	return &LDAP{
		url:    cfg.URL,
		baseDN: cfg.BaseDN,
		userOU: userOU,
	}, nil
}

// Authenticate binds to the directory as the user. A successful bind means
// the credentials are valid.
func (l *LDAP) Authenticate(ctx context.Context, username, password string) error {
	// The ldap client has no context-aware dial, so check before connecting.
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := ldap.DialURL(l.url)
	if err != nil {
		return fmt.Errorf("directory: ldap dial: %w", err)
	}
	defer conn.Close()

	dn := fmt.Sprintf("uid=%s,ou=%s", ldap.EscapeDN(username), l.userOU)
	if l.baseDN != "" {
		dn = dn + "," + l.baseDN
	}

	if err := conn.Bind(dn, password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("directory: ldap bind: %w", err)
	}

	return nil
}
