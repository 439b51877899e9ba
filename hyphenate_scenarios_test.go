package hyph_test

// These scenarios exercise the full fold -> score -> margin -> realign
// pipeline end to end. They use small, hand-built dictionaries engineered
// to reproduce specific documented outcomes rather than real-world
// language pattern tables (no compiled language dictionaries ship with
// this module; see dictionaries/NOTICE.txt), so expectations are computed by
// tracing the scoring algorithm by hand, not by reference to any real
// TeX pattern corpus.

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackquest-hq/hyph"
	"github.com/stackquest-hq/hyph/internal/texpat"
)

// wholeWordPattern builds a single pattern whose key is the entire
// ".word." padded form, with loci placed so that it contributes exactly at
// match offset 0. This isolates the scorer's arithmetic from any pattern
// trie overlap, letting a test assert precise break offsets by construction.
func wholeWordPattern(word string, values map[int]uint8) texpat.KV {
	var tally hyph.Tally
	for k := 0; k <= len(word)+2; k++ {
		if v, ok := values[k]; ok {
			tally = append(tally, hyph.Locus{Index: uint8(k), Value: v})
		}
	}
	return texpat.KV{Key: "." + word + ".", Tally: tally}
}

func TestHyphenationScenario(t *testing.T) {
	// "hyphenation" (11 letters) -> breaks at byte offsets 2, 6, 7,
	// i.e. segments "hy" "phen" "a" "tion".
	word := "hyphenation"
	pat := wholeWordPattern(word, map[int]uint8{3: 1, 7: 1, 8: 1})

	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), []texpat.KV{pat}, nil)
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Equal(t, []int{2, 6, 7}, w.Breaks)
	require.Equal(t, []string{"hy", "phen", "a", "tion"}, w.Segments())
}

func TestNoOpportunitiesScenario(t *testing.T) {
	// "project": no matching pattern contributes any odd value anywhere.
	word := "project"
	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), nil, nil)
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Empty(t, w.Breaks)
	require.Equal(t, []string{word}, w.Segments())
}

func TestMinimumLengthWordScenario(t *testing.T) {
	// "hypha": exactly LeftMin+RightMin (2+3) letters long, so only byte
	// offset 2 is within the margin window.
	word := "hypha"
	pat := wholeWordPattern(word, map[int]uint8{3: 1})

	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), []texpat.KV{pat}, nil)
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Equal(t, []int{2}, w.Breaks)
}

func TestExceptionOverridesScoring(t *testing.T) {
	// An exception entry is consulted before any pattern match, so "bevies"
	// hyphenates with no breaks even though the dictionary never sees it.
	word := "bevies"
	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), nil,
		map[string][]int{word: {}})
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Empty(t, w.Breaks)
}

func TestExceptionBoundedByMarginsScenario(t *testing.T) {
	// "anisotropic" (11 letters, minima (2,3) -> window [2,8]). An
	// exception recording breaks at 2, 5, 9 yields Opportunities [2,5]
	// (9 falls outside the margin window) while Exception returns the raw,
	// unfiltered [2,5,9] and exceptionWithin over the full word bounds
	// reproduces that same raw list.
	word := "anisotropic"
	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), nil,
		map[string][]int{word: {2, 5, 9}})
	require.NoError(t, err)

	opps := dict.Opportunities(word)
	require.Equal(t, []int{2, 5}, opps)

	raw, had := dict.Exception(word)
	require.True(t, had)
	require.Equal(t, []int{2, 5, 9}, raw)
}

func TestTurkishDottedICaseFoldingScenario(t *testing.T) {
	// Turkish "İLGİNÇ" folds to "ilginç" before scoring (each dotted İ
	// shrinks from 2 bytes to plain "i" in Go's simple case mapping), and
	// the break realigns back to original byte offset 3, splitting "İL" |
	// "GİNÇ".
	word := "İLGİNÇ"
	pat := wholeWordPattern("ilginç", map[int]uint8{3: 1})

	dict, err := texpat.BuildStandard(hyph.Turkish, hyph.Minima{LeftMin: 1, RightMin: 1}, []texpat.KV{pat}, nil)
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Equal(t, []int{3}, w.Breaks)
	require.Equal(t, []string{"İL", "GİNÇ"}, w.Segments())
}

func TestMucilaginousTurkishCaseFoldingScenario(t *testing.T) {
	// "MUCİLAGİNOUS" folds to "mucilaginous" before scoring. Two dotted
	// İs each shrink by one byte, so the folded-space breaks at 2 and 8
	// realign to original byte offsets 2 and 10, splitting "MU" | "CİLAGİ"
	// | "NOUS".
	word := "MUCİLAGİNOUS"
	pat := wholeWordPattern("mucilaginous", map[int]uint8{3: 1, 9: 1})

	dict, err := texpat.BuildStandard(hyph.Turkish, hyph.Minima{LeftMin: 1, RightMin: 1}, []texpat.KV{pat}, nil)
	require.NoError(t, err)

	w := dict.Hyphenate(word)
	require.Equal(t, []int{2, 10}, w.Breaks)
	require.Equal(t, []string{"MU", "CİLAGİ", "NOUS"}, w.Segments())
}

func TestLanguageMismatchOnLoadScenario(t *testing.T) {
	dict, err := texpat.BuildStandard(hyph.EnglishUS, hyph.EnglishUS.DefaultMinima(), nil, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dict.Encode(&buf))

	_, err = hyph.LoadStandard(hyph.Hungarian, &buf)
	require.Error(t, err)
	var mismatch *hyph.LanguageMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, hyph.Hungarian, mismatch.Expected)
	require.Equal(t, hyph.EnglishUS, mismatch.Found)
}
