package hyph

import (
	"sync"

	"github.com/stackquest-hq/hyph/internal/kltrie"
)

// dictionaryCore holds the pieces shared by Standard and Extended
// dictionaries: the language tag, the immutable pattern trie, and the
// margin minima. It carries no exception table of its own since the two
// variants store differently shaped exception values.
type dictionaryCore struct {
	Lang   Language
	Trie   *kltrie.Trie
	Minima Minima
}

// StandardDictionary pairs a language's pattern trie with its standard
// (Knuth-Liang-only) exception table. Immutable once constructed except
// for the exception table, which is safe for concurrent use.
type StandardDictionary struct {
	core       dictionaryCore
	tallies    []Tally
	exceptions *standardExceptions
}

type standardExceptions struct {
	mu sync.RWMutex
	m  map[string][]int
}

// ExtendedDictionary is StandardDictionary's Nemeth-extended counterpart:
// its exceptions and scored breaks may each carry a Subregion.
type ExtendedDictionary struct {
	core       dictionaryCore
	tallies    []ExtendedTally
	exceptions *extendedExceptions
}

type extendedExceptions struct {
	mu sync.RWMutex
	m  map[string][]ExtendedBreak
}

// Language returns the dictionary's language.
func (d *StandardDictionary) Language() Language { return d.core.Lang }

// Language returns the dictionary's language.
func (d *ExtendedDictionary) Language() Language { return d.core.Lang }

// Minima returns the dictionary's margin minima.
func (d *StandardDictionary) Minima() Minima { return d.core.Minima }

// Minima returns the dictionary's margin minima.
func (d *ExtendedDictionary) Minima() Minima { return d.core.Minima }

func (d *StandardDictionary) exceptionLocked(word string) ([]int, bool) {
	d.exceptions.mu.RLock()
	defer d.exceptions.mu.RUnlock()
	v, ok := d.exceptions.m[word]
	return v, ok
}

func (d *ExtendedDictionary) exceptionLocked(word string) ([]ExtendedBreak, bool) {
	d.exceptions.mu.RLock()
	defer d.exceptions.mu.RUnlock()
	v, ok := d.exceptions.m[word]
	return v, ok
}

// Hyphenate determines the hyphenation opportunities in word, honoring
// soft hyphens, exceptions, case folding, and margins, per spec section
// 4.5 "hyphenate(word)".
func (d *StandardDictionary) Hyphenate(word string) StandardWord {
	return hyphenateStandard(d, word)
}

// Opportunities returns only the byte-offset breaks for word (no
// surrounding Word wrapper), applying the same folding and margin rules as
// Hyphenate.
func (d *StandardDictionary) Opportunities(word string) []int {
	return d.Hyphenate(word).Breaks
}

// Exception returns the exception breaks recorded for word's lowercase
// form, if any.
func (d *StandardDictionary) Exception(word string) ([]int, bool) {
	return d.exceptionLocked(lowercaseKey(word))
}

// AddException records (or replaces) the exception breaks for word,
// returning whatever was previously recorded, if anything.
func (d *StandardDictionary) AddException(word string, breaks []int) ([]int, bool) {
	key := lowercaseKey(word)
	d.exceptions.mu.Lock()
	defer d.exceptions.mu.Unlock()
	prev, had := d.exceptions.m[key]
	d.exceptions.m[key] = breaks
	return prev, had
}

// RemoveException deletes the exception breaks recorded for word,
// returning whatever was removed, if anything.
func (d *StandardDictionary) RemoveException(word string) ([]int, bool) {
	key := lowercaseKey(word)
	d.exceptions.mu.Lock()
	defer d.exceptions.mu.Unlock()
	prev, had := d.exceptions.m[key]
	delete(d.exceptions.m, key)
	return prev, had
}

// Hyphenate is ExtendedDictionary's counterpart to
// StandardDictionary.Hyphenate, producing breaks that may carry subregion
// substitutions.
func (d *ExtendedDictionary) Hyphenate(word string) ExtendedWord {
	return hyphenateExtended(d, word)
}

// Opportunities returns only the breaks for word.
func (d *ExtendedDictionary) Opportunities(word string) []ExtendedBreak {
	return d.Hyphenate(word).Breaks
}

// Exception returns the exception breaks recorded for word's lowercase
// form, if any.
func (d *ExtendedDictionary) Exception(word string) ([]ExtendedBreak, bool) {
	return d.exceptionLocked(lowercaseKey(word))
}

// AddException records (or replaces) the exception breaks for word.
func (d *ExtendedDictionary) AddException(word string, breaks []ExtendedBreak) ([]ExtendedBreak, bool) {
	key := lowercaseKey(word)
	d.exceptions.mu.Lock()
	defer d.exceptions.mu.Unlock()
	prev, had := d.exceptions.m[key]
	d.exceptions.m[key] = breaks
	return prev, had
}

// RemoveException deletes the exception breaks recorded for word.
func (d *ExtendedDictionary) RemoveException(word string) ([]ExtendedBreak, bool) {
	key := lowercaseKey(word)
	d.exceptions.mu.Lock()
	defer d.exceptions.mu.Unlock()
	prev, had := d.exceptions.m[key]
	delete(d.exceptions.m, key)
	return prev, had
}

func lowercaseKey(word string) string {
	folded, _ := foldCase(word)
	return folded
}
