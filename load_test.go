package hyph_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/stackquest-hq/hyph"
	"github.com/stackquest-hq/hyph/internal/texpat"
)

func TestEncodeDecodeStandardRoundTrip(t *testing.T) {
	minima := hyph.Minima{LeftMin: 2, RightMin: 3}
	exceptions := map[string][]int{"bevies": {}}
	dict, err := texpat.BuildStandard(hyph.EnglishUS, minima, []texpat.KV{
		{Key: ".ab.", Tally: hyph.Tally{{Index: 2, Value: 1}}},
	}, exceptions)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dict.Encode(&buf))

	reloaded, err := hyph.LoadStandard(hyph.EnglishUS, &buf)
	require.NoError(t, err)
	require.Equal(t, hyph.EnglishUS, reloaded.Language())
	require.Equal(t, minima, reloaded.Minima())

	got, had := reloaded.Exception("bevies")
	require.True(t, had)
	require.Empty(t, got)
}

func TestEncodeDecodeExtendedRoundTrip(t *testing.T) {
	minima := hyph.Hungarian.DefaultMinima()
	dict, err := texpat.BuildExtended(hyph.Hungarian, minima, nil, map[string][]hyph.ExtendedBreak{
		"esszé": {{Offset: 3}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dict.Encode(&buf))

	reloaded, err := hyph.LoadExtended(hyph.Hungarian, &buf)
	require.NoError(t, err)

	got, had := reloaded.Exception("esszé")
	require.True(t, had)
	require.Equal(t, []hyph.ExtendedBreak{{Offset: 3}}, got)
}

func TestLoadStandardFSRoundTrip(t *testing.T) {
	dict, err := texpat.BuildStandard(hyph.French, hyph.French.DefaultMinima(), nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dict.Encode(&buf))

	fsys := fstest.MapFS{
		"dictionaries/fr.standard.hyphdict": {Data: buf.Bytes()},
	}

	loaded, err := hyph.LoadStandardFS(fsys, hyph.French)
	require.NoError(t, err)
	require.Equal(t, hyph.French, loaded.Language())
}

func TestLoadStandardFSMissingResource(t *testing.T) {
	fsys := fstest.MapFS{}
	_, err := hyph.LoadStandardFS(fsys, hyph.French)
	require.ErrorIs(t, err, hyph.ErrResourceMissing)
}

func TestEmbeddedStandardMissingForUnshippedLanguage(t *testing.T) {
	// The module ships no precompiled artifacts; every embedded lookup
	// should fail with ErrResourceMissing until a caller supplies one.
	_, err := hyph.EmbeddedStandard(hyph.Welsh)
	require.ErrorIs(t, err, hyph.ErrResourceMissing)
}

func TestDecodeMalformedArtifact(t *testing.T) {
	_, err := hyph.AnyStandardFromReader(bytes.NewReader([]byte("not a gob stream")))
	require.ErrorIs(t, err, hyph.ErrDeserialization)
}

// failingReader always fails, simulating a broken network connection or
// file handle rather than a merely malformed byte stream.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("simulated read failure")
}

func TestDecodeReaderFailureIsErrIO(t *testing.T) {
	_, err := hyph.AnyStandardFromReader(failingReader{})
	require.ErrorIs(t, err, hyph.ErrIO)
	require.NotErrorIs(t, err, hyph.ErrDeserialization)
}
