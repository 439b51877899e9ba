package hyph

import (
	"unicode/utf8"
)

const softHyphen = '­'

// runeByteOffset returns the byte offset of the runeIdx-th rune (0-based)
// in s, or len(s) if runeIdx is at or beyond the rune count.
func runeByteOffset(s string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	i, count := 0, 0
	for i < len(s) {
		if count == runeIdx {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return len(s)
}

// boundaries computes the margin window (left, right) for word under
// minima: ok is false when the word is too short to carry any opportunity.
func boundaries(word string, minima Minima) (left, right int, ok bool) {
	rc := utf8.RuneCountInString(word)
	if rc < minima.LeftMin+minima.RightMin {
		return 0, 0, false
	}
	left = runeByteOffset(word, minima.LeftMin)
	right = runeByteOffset(word, rc-minima.RightMin)
	return left, right, true
}

// softHyphenOffsets returns the byte offsets of every U+00AD soft hyphen
// in word, in order. A non-empty result short-circuits pattern hyphenation
// entirely.
func softHyphenOffsets(word string) []int {
	var offsets []int
	for i, r := range word {
		if r == softHyphen {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// opportunitiesStandard implements spec step 4.5 "opportunities(word)" for
// an already-folded (lowercased) word: exception lookup first, falling
// back to scoring. Returned offsets are byte offsets into the folded word.
func opportunitiesStandard(d *StandardDictionary, folded string) []int {
	left, right, ok := boundaries(folded, d.core.Minima)
	if !ok {
		return nil
	}

	if ex, had := d.exceptionLocked(folded); had {
		return exceptionWithin(ex, left, right)
	}

	values := scoreStandard(d.core.Trie, d.tallies, folded)
	var breaks []int
	for i := 1; i < len(folded); i++ {
		if !isCharBoundary(folded, i) {
			continue
		}
		if i < left || i > right {
			continue
		}
		if values[i-1]%2 == 1 {
			breaks = append(breaks, i)
		}
	}
	return breaks
}

func opportunitiesExtended(d *ExtendedDictionary, folded string) []ExtendedBreak {
	left, right, ok := boundaries(folded, d.core.Minima)
	if !ok {
		return nil
	}

	if ex, had := d.exceptionLocked(folded); had {
		var out []ExtendedBreak
		for _, b := range ex {
			if b.Offset >= left && b.Offset <= right {
				out = append(out, b)
			}
		}
		return out
	}

	values, subregions := scoreExtended(d.core.Trie, d.tallies, folded)
	var breaks []ExtendedBreak
	for i := 1; i < len(folded); i++ {
		if !isCharBoundary(folded, i) {
			continue
		}
		if i < left || i > right {
			continue
		}
		if values[i-1]%2 == 1 {
			breaks = append(breaks, ExtendedBreak{Offset: i, Subregion: subregions[i-1]})
		}
	}
	return breaks
}

// exceptionWithin retains the exception breaks that fall within [left,
// right], per spec "exception_within".
func exceptionWithin(breaks []int, left, right int) []int {
	var out []int
	for _, b := range breaks {
		if b >= left && b <= right {
			out = append(out, b)
		}
	}
	return out
}

func isCharBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}

func hyphenateStandard(d *StandardDictionary, word string) StandardWord {
	if offs := softHyphenOffsets(word); len(offs) > 0 {
		return StandardWord{Text: word, Breaks: offs}
	}

	folded, shifts := foldCase(word)
	opps := opportunitiesStandard(d, folded)
	breaks := make([]int, len(opps))
	for i, o := range opps {
		breaks[i] = realign(o, shifts)
	}
	return StandardWord{Text: word, Breaks: breaks}
}

func hyphenateExtended(d *ExtendedDictionary, word string) ExtendedWord {
	if offs := softHyphenOffsets(word); len(offs) > 0 {
		breaks := make([]ExtendedBreak, len(offs))
		for i, o := range offs {
			breaks[i] = ExtendedBreak{Offset: o}
		}
		return ExtendedWord{Text: word, Breaks: breaks}
	}

	folded, shifts := foldCase(word)
	opps := opportunitiesExtended(d, folded)
	breaks := make([]ExtendedBreak, len(opps))
	for i, o := range opps {
		breaks[i] = ExtendedBreak{Offset: realign(o.Offset, shifts), Subregion: o.Subregion}
	}
	return ExtendedWord{Text: word, Breaks: breaks}
}
