package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesToBitsOrder(t *testing.T) {
	// 0xA5 = 1010 0101 -> LSB-first bits: 1,0,1,0,0,1,0,1
	bits := BytesToBits([]byte{0xA5})
	require.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1}, bits)
}

func TestBitsToBytesRoundTrip(t *testing.T) {
	bits := []byte{1, 0, 1, 0, 0, 1, 0, 1}
	require.Equal(t, []byte{0xA5}, BitsToBytes(bits))
}

func TestRoundTripArbitraryBytes(t *testing.T) {
	for _, data := range [][]byte{
		{},
		{0x00},
		{0xFF},
		{0x00, 0x01, 0x02, 0xFE, 0xFF},
		[]byte("Hello, Ring-LWE cryptography!"),
	} {
		require.Equal(t, data, BitsToBytes(BytesToBits(data)))
	}
}

func TestBitsToBytesDropsTrailingPartialByte(t *testing.T) {
	require.Equal(t, []byte{}, BitsToBytes([]byte{1, 1, 1}))
	require.Equal(t, []byte{0x01}, BitsToBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1}))
}

func TestEncodeEmptyStringIsAllZero(t *testing.T) {
	p := Encode("", 16)
	require.Len(t, p, 16)
	for _, c := range p {
		require.Equal(t, uint64(0), c)
	}
}

func TestDecodeAllZeroIsEmptyString(t *testing.T) {
	require.Equal(t, "", Decode(make([]uint64, 16)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const n = 1024
	for _, s := range []string{
		"",
		"a",
		"Hello, Ring-LWE cryptography!",
		"unicode: héllo wörld, 日本語",
	} {
		require.Equal(t, s, Decode(Encode(s, n)))
	}
}

func TestEncodeTruncatesToN(t *testing.T) {
	// "Hello, Ring-LWE cryptography!" is 29 bytes = 232 bits, larger than n/8=8.
	p := Encode("Hello, Ring-LWE cryptography!", 64)
	require.Len(t, p, 64)

	// Only the first 64 bits (8 bytes) were retained.
	require.Equal(t, "Hello, R", Decode(p))
}
