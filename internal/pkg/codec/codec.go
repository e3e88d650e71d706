package codec

import (
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEncoding is returned when input is not valid base32 or hex.
var ErrInvalidEncoding = errors.New("codec: invalid encoding")

// DecodeBase32 decodes a canonical RFC 4648 base32 string into raw bytes.
//
// Input is case-insensitive because authenticator secrets are conventionally
// entered in either case and normalized to uppercase before storage. Unpadded
// input is accepted by completing the final quantum with '='; characters
// outside the base32 alphabet or impossible padding fail.
func DecodeBase32(s string) ([]byte, error) {
	normalized := strings.ToUpper(s)
	if m := len(strings.TrimRight(normalized, "=")) % 8; m != 0 {
		if !strings.HasSuffix(normalized, "=") {
			normalized += strings.Repeat("=", 8-m)
		}
	}

	b, err := base32.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, "malformed base32 input")
	}

	return b, nil
}

// DecodeHex decodes a hexadecimal string into raw bytes.
//
// Odd-length input or non-hex characters fail.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, "malformed hex input")
	}

	return b, nil
}

// IsValidBase32 reports whether DecodeBase32 would succeed for s.
//
// Used to validate client-supplied secrets before they are persisted.
func IsValidBase32(s string) bool {
	_, err := DecodeBase32(s)
	return err == nil
}
