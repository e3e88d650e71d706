package jwt

import (
	"errors"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// Symmetric implements JWT signing and verification using an HMAC secret.
//
// Tokens are self-contained: no server-side state backs them, so validation
// is a pure computation over the token string, the secret, and the clock.
type Symmetric struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clocker
	uuid   generator
}

// NewHS512 constructs a Symmetric JWT implementation using HS512.
func NewHS512(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < 64 {
		return nil, ErrSigningKeyTooShort
	}

	return &Symmetric{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
	}, nil
}

// Generate creates a signed session token for the principal.
//
// Unknown roles are rejected here, at the issuance boundary, so no token in
// circulation ever carries a role outside the closed set.
func (s *Symmetric) Generate(identity string, role Role) (string, error) {
	if !role.Valid() {
		return "", ErrInvalidRole
	}

	now := s.clock.Now()

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS512, Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        s.uuid.Generate(),
				Subject:   identity,
				Issuer:    s.issuer,
				IssuedAt:  libJWT.NewNumericDate(now),
				NotBefore: libJWT.NewNumericDate(now),
				ExpiresAt: libJWT.NewNumericDate(now.Add(s.ttl)),
			},
			Identity: identity,
			Role:     role,
		}).
		SignedString(s.secret)
}

// Verify parses and validates a session token string.
func (s *Symmetric) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := libJWT.ParseWithClaims(tokenStr, &claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS512 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS512.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, err
	}

	if !token.Valid || !claims.Role.Valid() {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
