// Package hyph implements multilingual text hyphenation using Frank
// Liang's Knuth-Liang pattern algorithm, extended with László Németh's
// non-standard hyphenation for orthographies where letters change around
// a break (Hungarian "ssz" -> "sz-sz", and similar).
//
// A typical use loads a compiled dictionary for a language, then
// hyphenates individual words against it:
//
//	dict, err := hyph.LoadStandard(hyph.EnglishUS, r)
//	if err != nil {
//		// handle err
//	}
//	word := dict.Hyphenate("hyphenation")
//	for _, seg := range word.Segments() {
//		fmt.Println(seg)
//	}
//	// hy
//	// phen
//	// a
//	// tion
//
// Core functionality is provided by StandardDictionary.Opportunities,
// which returns the byte offsets of valid hyphenation points within a
// word, and StandardDictionary.Hyphenate, which wraps those offsets in a
// StandardWord alongside the segment iterators in word.go.
//
// ExtendedDictionary is Standard's Nemeth-extended counterpart: its
// breaks may carry a Subregion describing a letter substitution around
// the opportunity, and its segment iterator applies that substitution
// while materializing segments.
//
// Hyphenation is always performed on a single word; tokenizing free text
// into words is left to the caller (see internal/texpat for the offline
// pattern-compiling pipeline that produces the dictionaries this package
// consumes, and SPEC_FULL.md for the full design).
package hyph
