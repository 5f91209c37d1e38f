package stream

import (
	"bytes"
	"testing"

	"github.com/bocu1-go/bocu1"
	"github.com/stretchr/testify/require"
)

func TestEncodeString_MatchesByteLevelCoder(t *testing.T) {
	s := "hello 學而時習之"
	c := bocu1.New()
	var want []byte
	for _, r := range s {
		want = append(want, c.EncodeRune(r).Bytes()...)
	}

	require.Equal(t, want, EncodeString(s))
}

func TestDecodeString_RoundTrip(t *testing.T) {
	s := "hello コンニチワ"
	got, err := DecodeString(EncodeString(s))
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestRunes_Iterates(t *testing.T) {
	s := "abc"
	var got []rune
	for r := range Runes(EncodeString(s)) {
		got = append(got, r)
	}
	require.Equal(t, []rune(s), got)
}

func TestRunes_StopsAtError(t *testing.T) {
	b := append(EncodeString("ab"), 0x00, 0x01)
	b[2] = 0xFE // truncate the lead byte of a 4-byte chunk mid-stream

	var got []rune
	for r := range Runes(b[:3]) {
		got = append(got, r)
	}
	require.Equal(t, []rune("ab"), got)
}

func TestRuneResults_SurfacesError(t *testing.T) {
	bad := []byte{0x25, 0x00} // 2-byte lead followed by an excluded trail byte
	var gotErr error
	var gotRunes []rune
	for r, err := range RuneResults(bad) {
		if err != nil {
			gotErr = err
			continue
		}
		gotRunes = append(gotRunes, r)
	}
	require.Error(t, gotErr)
}

func TestEncodeTo_WritesSameBytesAsEncodeString(t *testing.T) {
	s := "hello world"
	var buf bytes.Buffer
	n, err := EncodeTo(&buf, s)
	require.NoError(t, err)
	require.Equal(t, len(EncodeString(s)), n)
	require.Equal(t, EncodeString(s), buf.Bytes())
}

func TestDecodeReader_RoundTrip(t *testing.T) {
	s := "hello ธุรกิจ"
	r := bytes.NewReader(EncodeString(s))
	got, err := DecodeReader(r)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestDecodeStringTruncating_DropsTrailingGarbage(t *testing.T) {
	good := EncodeString("ok")
	s := DecodeStringTruncating(append(good, 0xFE))
	require.Equal(t, "ok", s)
}

func TestEncodeRunes_EqualsEncodeString(t *testing.T) {
	s := "mixed 混合 text"
	require.Equal(t, EncodeString(s), EncodeRunes([]rune(s)))
}
