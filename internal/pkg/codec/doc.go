// Package codec provides byte-level base32 and hex decoding for the OTP
// protocol: authenticator shared secrets are base32 strings and the HOTP
// time counter travels as a zero-padded hex string.
package codec
