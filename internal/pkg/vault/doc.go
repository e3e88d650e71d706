// Package vault provides the reversible symmetric encryption applied to OTP
// shared secrets whenever they cross the storage boundary.
//
// Decryption never fails from the caller's point of view: values that do not
// decrypt are passed through unchanged and tagged as legacy plaintext, a
// migration affordance for rows written before encryption was introduced.
package vault
