package hyph

// Locus is a single (index, value) pair inside a pattern's tally: index is
// the byte position within the pattern key (0-based, counting a leading
// "." if present), value is the Knuth-Liang priority digit, 1-9. A value
// of 0 never appears in a stored Locus — zero-valued positions simply
// aren't recorded.
type Locus struct {
	Index uint8
	Value uint8
}

// Tally is the ordered list of loci encoded by one pattern's digits.
// Indices are strictly increasing and every value is greater than zero.
type Tally []Locus

// Subregion describes the Nemeth-style letter substitution applied around
// an extended hyphenation opportunity: Left bytes before the break and
// Right bytes after it are replaced by Substitution, with the break itself
// falling at byte offset Breakpoint within Substitution.
type Subregion struct {
	Left         int
	Right        int
	Substitution string
	Breakpoint   int
}

// ExtendedTally is a Tally plus an optional subregion rule. SubregionLocus
// carries the value and pattern-relative index of the subregion's break;
// Subregion is nil for patterns with no non-standard alternative.
type ExtendedTally struct {
	Standard       Tally
	SubregionLocus Locus
	Subregion      *Subregion
}

// Minima is the (left_min, right_min) margin pair: the minimum number of
// Unicode scalar values that must precede the first break and follow the
// last, expressed in code points per TeX convention (not grapheme
// clusters).
type Minima struct {
	LeftMin  int
	RightMin int
}

// ExtendedBreak is one hyphenation opportunity in an extended dictionary:
// a byte offset into the (unfolded) word, plus the subregion substitution
// to apply there, if any.
type ExtendedBreak struct {
	Offset    int
	Subregion *Subregion
}
