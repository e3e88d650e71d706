package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidRole is returned when a token would be issued for an unknown role.
	ErrInvalidRole = errors.New("role must be USER or ADMIN")
)

// Role is the closed set of authorization roles a session token may carry.
type Role string

const (
	// RoleUser is the default role: access to resources the caller owns.
	RoleUser Role = "USER"
	// RoleAdmin grants access to all OTP credentials and activity logs.
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalizes a raw role string into the closed Role set.
//
// The legacy "ROLE_" prefix used by pre-migration user rows is accepted and
// stripped. Anything outside the set yields ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_")) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// JWT defines the minimal operations needed by the app: issue and verify a
// session token.
type JWT interface {
	// Generate creates a signed session token carrying identity and role.
	Generate(identity string, role Role) (string, error)
	// Verify parses and validates the token and returns claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// TTL is the token time-to-live (24h per the session contract).
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Claims is the session token payload: registered claims plus the
// authenticated principal.
type Claims struct {
	// RegisteredClaims holds the standard JWT claims.
	jwt.RegisteredClaims
	// Identity is the authenticated username.
	Identity string `json:"identity"`
	// Role is the caller's authorization role.
	Role Role `json:"role"`
}

// GetAuth returns the JWT claims stored in the context, if any.
//
// A nil return means the request is anonymous: the gateway established no
// principal. Callers that require authentication must check for nil.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
