package texpat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackquest-hq/hyph"
)

func TestParsePatternLineBasic(t *testing.T) {
	// Each digit attaches to the byte position of the letter immediately
	// following it; a trailing digit with no following letter attaches to
	// the position just past the last letter.
	p := &Parser{}
	key, tally, ok, err := p.ParsePatternLine("1ab2cd")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abcd", key)
	require.Equal(t, hyph.Tally{
		{Index: 0, Value: 1},
		{Index: 2, Value: 2},
	}, tally)
}

func TestParsePatternLineLeadingDot(t *testing.T) {
	p := &Parser{}
	key, tally, ok, err := p.ParsePatternLine(".hy3p")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ".hyp", key)
	require.Equal(t, hyph.Tally{{Index: 3, Value: 3}}, tally)
}

func TestParsePatternLineIgnoresMetadataAndBlankLines(t *testing.T) {
	p := &Parser{}
	for _, line := range []string{"", "   ", "% a comment", "#another", "LEFTHYPHENMIN 2"} {
		_, _, ok, err := p.ParsePatternLine(line)
		require.NoError(t, err)
		require.False(t, ok, "line %q should be ignored", line)
	}
}

func TestParsePatternLineAllZeroIsIgnored(t *testing.T) {
	p := &Parser{}
	_, _, ok, err := p.ParsePatternLine("abcd")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseExceptionLine(t *testing.T) {
	p := &Parser{}
	word, breaks, ok, err := p.ParseExceptionLine("as-so-ciate")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "associate", word)
	require.Equal(t, []int{2, 4}, breaks)
}

func TestParseExceptionLineLowercases(t *testing.T) {
	p := &Parser{}
	word, _, ok, _ := p.ParseExceptionLine("AS-SO-CIATE")
	require.True(t, ok)
	require.Equal(t, "associate", word)
}

func TestDecodeCP1251Ascii(t *testing.T) {
	decoded, err := DecodeCP1251("plain ascii line")
	require.NoError(t, err)
	require.Equal(t, "plain ascii line", decoded)
}

func TestParseExtendedPatternLineNoSlashDelegatesToStandard(t *testing.T) {
	p := &Parser{}
	key, tally, ok, err := p.ParseExtendedPatternLine("1ab2cd")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abcd", key)
	require.Nil(t, tally.Subregion)
	require.Equal(t, hyph.Tally{{Index: 0, Value: 1}, {Index: 2, Value: 2}}, tally.Standard)
}

func TestParseExtendedPatternLineWithSubregion(t *testing.T) {
	// Grounded on the Nemeth extended-pattern format confirmed against
	// hyphenation_commons' parse.rs: "standard/substitution,chars_to_op,span"
	// where the substitution embeds its own break position as "=".
	p := &Parser{}
	key, tally, ok, err := p.ParseExtendedPatternLine("ss1z/sz=sz,2,3")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ssz", key)
	require.NotNil(t, tally.Subregion)
	require.Equal(t, "szsz", tally.Subregion.Substitution)
	require.Equal(t, 2, tally.Subregion.Breakpoint)
	require.Equal(t, 1, tally.Subregion.Left)
	require.Equal(t, 1, tally.Subregion.Right)
}

func TestParseExtendedPatternLineMalformed(t *testing.T) {
	p := &Parser{}
	_, _, _, err := p.ParseExtendedPatternLine("1ssz2/szsz,2")
	require.Error(t, err)
}
