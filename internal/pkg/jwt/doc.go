// Package jwt issues and validates the stateless session tokens that carry
// a caller's identity and role between requests.
//
// It includes:
//   - A typed Claims wrapper (registered claims + identity/role payload).
//   - A symmetric HS512 implementation for generating and verifying tokens.
//   - Context helpers for storing and retrieving the request principal.
//
// Tokens carry no server-side revocation state: logout is a client-side
// cookie discard, and a stolen token stays valid until it expires.
package jwt
