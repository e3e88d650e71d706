// Package totp computes time-based one-time passwords (RFC 6238) from a
// base32 shared secret.
//
// There is no stored validation window: every call recomputes the code for
// the current 30-second time step from the secret alone.
package totp
