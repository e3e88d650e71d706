package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase32(t *testing.T) {
	t.Parallel()

	// "12345678901234567890" is the standard RFC 4226 test key.
	b, err := DecodeBase32("GEZDGNBVGY3TQOJQ")
	require.NoError(t, err)
	assert.Equal(t, []byte("1234567890"), b)

	lower, err := DecodeBase32("gezdgnbvgy3tqojq")
	require.NoError(t, err)
	assert.Equal(t, b, lower)

	padded, err := DecodeBase32("MFRGG===")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), padded)

	unpadded, err := DecodeBase32("MFRGG")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), unpadded)
}

func TestDecodeBase32_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"INVALID!!!", "MFRGG==", "1NV8L1D0", "A"} {
		_, err := DecodeBase32(in)
		assert.ErrorIs(t, err, ErrInvalidEncoding, "input %q", in)
	}
}

func TestDecodeHex(t *testing.T) {
	t.Parallel()

	b, err := DecodeHex("0000000000000001")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, b)

	_, err = DecodeHex("abc")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeHex("zz")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestIsValidBase32(t *testing.T) {
	t.Parallel()

	assert.False(t, IsValidBase32("INVALID!!!"))
	assert.True(t, IsValidBase32("MFRGG==="))
	assert.True(t, IsValidBase32("GEZDGNBVGY3TQOJQ"))
}
