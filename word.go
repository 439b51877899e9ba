package hyph

import (
	"iter"
	"strings"
)

// StandardWord is the result of hyphenating a word against a
// StandardDictionary: the original text plus its break offsets, each
// guaranteed to lie on a UTF-8 character boundary within the margin
// window (or, for the soft-hyphen shortcut, at the soft hyphen's own
// position).
type StandardWord struct {
	Text   string
	Breaks []int
}

// Iter returns a fresh StandardSegments iterator over w's segments.
func (w StandardWord) Iter() *StandardSegments {
	return &StandardSegments{text: w.Text, breaks: w.Breaks}
}

// Segments materializes every segment as a slice of strings, a
// convenience over Iter for callers that don't need to stream.
func (w StandardWord) Segments() []string {
	it := w.Iter()
	out := make([]string, 0, it.Len())
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// MarkWith joins w's segments with marker inserted between every pair,
// but not after the last segment.
func (w StandardWord) MarkWith(marker string) string {
	segs := w.Segments()
	return strings.Join(segs, marker)
}

// Marked joins w's segments with the conventional "-" marker.
func (w StandardWord) Marked() string {
	return w.MarkWith("-")
}

// Punctuate joins w's segments with a U+00AD soft hyphen, matching the
// original hyphenation crate's punctuate().
func (w StandardWord) Punctuate() string {
	return w.MarkWith(string(softHyphen))
}

// PunctuateWith is an alias of MarkWith, matching the original crate's
// punctuate_with(marker) naming.
func (w StandardWord) PunctuateWith(marker string) string {
	return w.MarkWith(marker)
}

// StandardSegments iterates a StandardWord's segments in order, in the
// style of bufio.Scanner: call Next, then Value.
type StandardSegments struct {
	text   string
	breaks []int
	pos    int
	start  int
	value  string
}

// Len reports how many segments remain, including the one Value would
// return if Next were called right now having not yet been called since
// construction; it decreases by one on every successful Next.
func (s *StandardSegments) Len() int {
	return len(s.breaks) + 1 - s.pos
}

// Next advances to the next segment, returning false once exhausted.
func (s *StandardSegments) Next() bool {
	if s.pos > len(s.breaks) {
		return false
	}
	end := len(s.text)
	if s.pos < len(s.breaks) {
		end = s.breaks[s.pos]
	}
	s.value = s.text[s.start:end]
	s.start = end
	s.pos++
	return true
}

// Value returns the segment produced by the most recent Next call.
func (s *StandardSegments) Value() string {
	return s.value
}

// All adapts the iterator for use with range, per go1.23's iter.Seq.
func (s *StandardSegments) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}
}

// ExtendedWord is Hyphenate's result for an ExtendedDictionary: breaks may
// carry a Subregion describing a Nemeth-style letter substitution around
// the break.
type ExtendedWord struct {
	Text   string
	Breaks []ExtendedBreak
}

// Iter returns a fresh ExtendedSegments iterator over w's segments.
func (w ExtendedWord) Iter() *ExtendedSegments {
	return &ExtendedSegments{text: w.Text, breaks: w.Breaks}
}

// Segments materializes every segment as a slice of strings.
func (w ExtendedWord) Segments() []string {
	it := w.Iter()
	out := make([]string, 0, it.Len())
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// MarkWith joins w's segments with marker inserted between every pair.
func (w ExtendedWord) MarkWith(marker string) string {
	return strings.Join(w.Segments(), marker)
}

// Marked joins w's segments with the conventional "-" marker.
func (w ExtendedWord) Marked() string {
	return w.MarkWith("-")
}

// Punctuate joins w's segments with a U+00AD soft hyphen.
func (w ExtendedWord) Punctuate() string {
	return w.MarkWith(string(softHyphen))
}

// PunctuateWith is an alias of MarkWith.
func (w ExtendedWord) PunctuateWith(marker string) string {
	return w.MarkWith(marker)
}

// ExtendedSegments iterates an ExtendedWord's segments, applying any
// subregion substitution around each break and carrying the substitution's
// tail forward into the following segment.
type ExtendedSegments struct {
	text    string
	breaks  []ExtendedBreak
	idx     int
	start   int
	pending string
	value   string
}

// Len reports how many segments remain.
func (s *ExtendedSegments) Len() int {
	return len(s.breaks) + 1 - s.idx
}

// Next advances to the next segment, returning false once exhausted.
func (s *ExtendedSegments) Next() bool {
	if s.idx > len(s.breaks) {
		return false
	}

	var seg string
	if s.idx < len(s.breaks) {
		b := s.breaks[s.idx]
		if b.Subregion != nil {
			sub := b.Subregion
			seg = s.pending + s.text[s.start:b.Offset-sub.Left] + sub.Substitution[:sub.Breakpoint]
			s.pending = sub.Substitution[sub.Breakpoint:]
			s.start = b.Offset + sub.Right
		} else {
			seg = s.pending + s.text[s.start:b.Offset]
			s.pending = ""
			s.start = b.Offset
		}
	} else {
		seg = s.pending + s.text[s.start:]
		s.pending = ""
	}

	s.value = seg
	s.idx++
	return true
}

// Value returns the segment produced by the most recent Next call.
func (s *ExtendedSegments) Value() string {
	return s.value
}

// All adapts the iterator for use with range.
func (s *ExtendedSegments) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}
}
