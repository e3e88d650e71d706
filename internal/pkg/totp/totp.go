package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/chrono-hq/chrono-auth/internal/pkg/clock"
	"github.com/chrono-hq/chrono-auth/internal/pkg/codec"
)

// Period is the length of one time step in seconds.
const Period = 30

// DefaultDigits is the code length produced unless configured otherwise.
const DefaultDigits = 6

// digitsPower[n] == 10^n, indexed by code length.
var digitsPower = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000}

// Engine computes time-based one-time passwords per RFC 6238 over the HOTP
// construction of RFC 4226.
//
// An Engine holds no mutable state: every call derives its output from the
// secret and the clock, so it is safe for concurrent use.
type Engine struct {
	digits int
	clock  clock.Clocker
}

// New constructs an Engine.
//
// digits outside 6..8 falls back to DefaultDigits. A nil clock falls back to
// the system clock.
func New(digits int, clk clock.Clocker) *Engine {
	if digits < 6 || digits > 8 {
		digits = DefaultDigits
	}

	if clk == nil {
		clk = clock.New()
	}

	return &Engine{digits: digits, clock: clk}
}

// Code returns the one-time code for the secret at the current time step.
//
// The secret must be valid base32; decoding failure propagates
// codec.ErrInvalidEncoding. Callers are expected to validate secrets before
// storing them, so hitting that path at code time indicates a caller bug.
func (e *Engine) Code(secretBase32 string) (string, error) {
	return e.CodeAt(secretBase32, e.clock.Now())
}

// CodeAt returns the one-time code for the secret at the given instant.
//
// It is a pure function of (secret, time step): any two instants within the
// same 30-second window yield the same code.
func (e *Engine) CodeAt(secretBase32 string, at time.Time) (string, error) {
	counter := uint64(at.Unix()) / Period

	// The counter is rendered as 16 uppercase hex digits and decoded back to
	// the 8-byte big-endian HOTP message, mirroring the reference algorithm.
	msg, err := codec.DecodeHex(fmt.Sprintf("%016X", counter))
	if err != nil {
		return "", err
	}

	key, err := codec.DecodeBase32(secretBase32)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(msg)
	sum := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last digest byte selects a
	// 4-byte window; the top bit is masked so the value is non-negative in a
	// signed 32-bit representation.
	offset := sum[len(sum)-1] & 0x0f
	binary := int(sum[offset]&0x7f)<<24 |
		int(sum[offset+1])<<16 |
		int(sum[offset+2])<<8 |
		int(sum[offset+3])

	code := binary % digitsPower[e.digits]

	return fmt.Sprintf("%0*d", e.digits, code), nil
}
