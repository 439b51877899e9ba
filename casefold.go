package hyph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// shift records a byte-length change introduced by case folding a single
// rune, anchored at the folded-string offset immediately before that
// rune's lowercase form was written. delta is the cumulative number of
// bytes to add to a folded offset strictly after index to recover the
// corresponding offset in the original, pre-fold word.
type shift struct {
	index int // folded-string byte offset where this rune's lowering began
	delta int // cumulative bytes to add to a folded offset to recover the original
}

// foldCase lowercases word rune by rune, recording a shift wherever a
// single rune's lowercase form has a different UTF-8 byte length than the
// rune itself. Go's case mapping is a simple one-rune-to-one-rune table
// (unicode.ToLower, the same mapping strings.ToLower uses): Turkish
// "İ" (U+0130, 2 bytes) maps directly to plain "i" (1 byte) with no
// intermediate combining-mark expansion, so the shift is derived straight
// from that per-rune byte-length difference rather than by pattern-matching
// any post-hoc sequence.
func foldCase(word string) (folded string, shifts []shift) {
	hasUpper := false
	for _, r := range word {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return word, nil
	}

	var b strings.Builder
	b.Grow(len(word))
	cumulative := 0
	for _, r := range word {
		origSize := utf8.RuneLen(r)
		lower := unicode.ToLower(r)
		before := b.Len()
		b.WriteRune(lower)
		lowerSize := b.Len() - before
		if lowerSize != origSize {
			cumulative += origSize - lowerSize
			shifts = append(shifts, shift{index: before, delta: cumulative})
		}
	}
	return b.String(), shifts
}

// realign maps a byte offset in the folded string back to the
// corresponding offset in the original, pre-fold word, using the cumulative
// delta of the last shift entry whose index is strictly less than i. The
// delta is positive where folding shrank the text (e.g. "İ" to "i") and
// negative where a rune's lowercase form is longer than the rune itself,
// so adding it back recovers the original offset in both cases.
func realign(i int, shifts []shift) int {
	delta := 0
	for _, s := range shifts {
		if s.index < i {
			delta = s.delta
		} else {
			break
		}
	}
	return i + delta
}
