package vlc

import (
	"testing"

	"github.com/bocu1-go/bocu1/internal/trail"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeDelta_RoundTrip(t *testing.T) {
	deltas := []int32{
		0, 1, -1, 0x3F, -0x40, 0x40, -0x41,
		0x2910, -0x2911, 0x2911, -0x2912,
		0x2DD0B, -0x2DD0C, 0x2DD0C, -0x2DD0D,
		0x10FFBF, -0x10FF9F,
	}

	for _, d := range deltas {
		chunk := EncodeDelta(d)
		got, n, err := DecodeDelta(chunk.Bytes())
		require.NoError(t, err, "delta %d", d)
		require.Equal(t, chunk.Len(), n)
		require.Equal(t, d, got, "delta %d round-trip", d)
	}
}

func TestEncodeDelta_ZeroIsSingleByteCenter(t *testing.T) {
	chunk := EncodeDelta(0)
	require.Equal(t, 1, chunk.Len())
	require.Equal(t, byte(0x90), chunk.Bytes()[0])
}

func TestEncodeDelta_NeverProducesExcludedTrailBytes(t *testing.T) {
	deltas := []int32{
		-0x10FF9F, -0x2DD0D, -0x2DD0C, -0x2912, -0x2911, -0x41, -0x40,
		0, 0x3F, 0x40, 0x2910, 0x2911, 0x2DD0B, 0x2DD0C, 0x10FFBF,
	}
	for _, d := range deltas {
		chunk := EncodeDelta(d)
		bs := chunk.Bytes()
		for i := 1; i < len(bs); i++ {
			_, err := trail.FromByte(bs[i])
			require.NoErrorf(t, err, "delta %d produced excluded trail byte at index %d: 0x%02x", d, i, bs[i])
		}
	}
}

func TestEncodeDelta_LeadBytesStayWithinReservedRange(t *testing.T) {
	deltas := []int32{-0x10FF9F, -1, 0, 1, 0x10FFBF}
	for _, d := range deltas {
		lead := EncodeDelta(d).Bytes()[0]
		require.Greater(t, lead, byte(0x20))
		require.Less(t, lead, byte(0xFF))
	}
}

func TestSpansTileDeltaRangeExactly(t *testing.T) {
	for i := 1; i < len(spans); i++ {
		require.Equal(t, spans[i-1].hiDelta+1, spans[i].loDelta, "gap between span %d and %d", i-1, i)
	}
}

func TestDecodeDelta_TruncatedInput(t *testing.T) {
	chunk := EncodeDelta(0x2DD0C) // 4-byte chunk
	_, _, err := DecodeDelta(chunk.Bytes()[:2])
	require.Error(t, err)
}
