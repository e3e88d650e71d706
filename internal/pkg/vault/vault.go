package vault

import (
	"crypto/aes"
	"encoding/base64"
	"errors"
	"fmt"
)

const keyLen = 32

// ErrInvalidPadding indicates a PKCS#7 padding failure after block decryption.
var ErrInvalidPadding = errors.New("vault: invalid padding")

// Outcome tags how Decrypt produced its result.
type Outcome int

const (
	// OutcomeDecrypted means the input was valid ciphertext under the
	// configured key and was decrypted.
	OutcomeDecrypted Outcome = iota

	// OutcomeLegacyPlaintext means the input could not be decrypted and was
	// returned unchanged, treating it as a pre-encryption legacy value.
	OutcomeLegacyPlaintext
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeDecrypted:
		return "decrypted"
	case OutcomeLegacyPlaintext:
		return "legacy_plaintext"
	default:
		return "unknown"
	}
}

// Vault encrypts and decrypts secret strings for storage under a single
// static AES-256 key.
//
// Encryption is deliberately deterministic (ECB, no IV): identical plaintext
// under the same key always yields identical ciphertext. That leaks equality
// of stored secrets and is an accepted trade-off inherited from the data
// already in production; it is not a correctness bug. The key is normalized
// once at construction and never mutated, so a Vault is safe for
// unsynchronized concurrent use.
type Vault struct {
	key []byte
}

// New constructs a Vault from the raw configured key string.
//
// The key is normalized to exactly 32 bytes: shorter keys are right-padded
// with the character '0', longer keys are truncated.
func New(rawKey string) *Vault {
	key := make([]byte, keyLen)
	copy(key, rawKey)
	for i := len(rawKey); i < keyLen; i++ {
		key[i] = '0'
	}

	return &Vault{key: key}
}

// Encrypt encrypts plaintext and returns it base64-encoded.
//
// The empty string passes through unchanged: absent values stay absent in
// storage.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("vault: aes init failed: %w", err)
	}

	padded := padPKCS7([]byte(plaintext), block.BlockSize())

	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += block.BlockSize() {
		block.Encrypt(out[i:i+block.BlockSize()], padded[i:i+block.BlockSize()])
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
//
// The empty string passes through unchanged. When the input cannot be
// decoded or decrypted it is returned unchanged with
// OutcomeLegacyPlaintext: rows written before encryption was introduced are
// stored as raw plaintext, and this fallback lets them keep working without
// a migration. A wrong-key misconfiguration takes the same branch; the
// outcome tag exists so callers can observe which path was taken.
func (v *Vault) Decrypt(value string) (string, Outcome) {
	if value == "" {
		return "", OutcomeDecrypted
	}

	plaintext, err := v.decrypt(value)
	if err != nil {
		return value, OutcomeLegacyPlaintext
	}

	return plaintext, OutcomeDecrypted
}

func (v *Vault) decrypt(value string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", fmt.Errorf("vault: base64 decode failed: %w", err)
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", fmt.Errorf("vault: aes init failed: %w", err)
	}

	bs := block.BlockSize()
	if len(raw) == 0 || len(raw)%bs != 0 {
		return "", fmt.Errorf("vault: ciphertext length %d is not a block multiple", len(raw))
	}

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += bs {
		block.Decrypt(out[i:i+bs], raw[i:i+bs])
	}

	unpadded, err := unpadPKCS7(out, bs)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

func padPKCS7(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

func unpadPKCS7(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrInvalidPadding
	}

	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrInvalidPadding
	}

	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrInvalidPadding
		}
	}

	return b[:len(b)-n], nil
}
