package refimpl

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, spaced string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(spaced, " ", ""))
	require.NoError(t, err)
	return b
}

func TestNativeEncoder_MatchesGoldenVectors(t *testing.T) {
	enc := NativeEncoder{}

	for _, v := range GoldenVectors {
		t.Run(v.Name, func(t *testing.T) {
			want := hexBytes(t, v.Hex)
			got := enc.EncodeString(v.Input)
			require.Equal(t, want, got)
		})
	}
}

func TestGoldenVectors_AgreeWithReferenceEncoderInterface(t *testing.T) {
	var enc ReferenceEncoder = NativeEncoder{}

	for _, v := range GoldenVectors {
		want := hexBytes(t, v.Hex)
		got := enc.EncodeString(v.Input)
		require.Equal(t, want, got, "vector %q", v.Name)
	}
}
