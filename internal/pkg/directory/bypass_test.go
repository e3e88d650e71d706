package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBypass_Authenticate(t *testing.T) {
	t.Parallel()

	b := NewBypass()

	assert.NoError(t, b.Authenticate(t.Context(), "alice", "password"))
	assert.ErrorIs(t, b.Authenticate(t.Context(), "", "password"), ErrInvalidCredentials)
	assert.ErrorIs(t, b.Authenticate(t.Context(), "alice", ""), ErrInvalidCredentials)
}

func TestNewLDAP_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewLDAP(LDAPConfig{})
	assert.ErrorIs(t, err, ErrLDAPURLRequired)

	l, err := NewLDAP(LDAPConfig{URL: "ldap://localhost:8389", BaseDN: "dc=example,dc=org"})
	assert.NoError(t, err)
	assert.Equal(t, "users", l.userOU)
}
