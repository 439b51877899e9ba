package hyph

import (
	"io"

	"github.com/stackquest-hq/hyph/internal/kltrie"
)

// NewStandardDictionary assembles a StandardDictionary from pre-built
// parts: a serialized pattern trie (internal/kltrie.Builder.Close output),
// its matching deduplicated tally vector, and an optional seed exception
// table. It is the seam internal/texpat's build pipeline uses to hand off
// a freshly compiled dictionary; most callers will use Load* instead.
func NewStandardDictionary(lang Language, minima Minima, trieBytes []byte, tallies []Tally, exceptions map[string][]int) (*StandardDictionary, error) {
	trie, err := kltrie.Load(trieBytes)
	if err != nil {
		return nil, wrapDeserialization(err)
	}
	if exceptions == nil {
		exceptions = make(map[string][]int)
	}
	return &StandardDictionary{
		core:       dictionaryCore{Lang: lang, Trie: trie, Minima: minima},
		tallies:    tallies,
		exceptions: &standardExceptions{m: exceptions},
	}, nil
}

// NewExtendedDictionary is NewStandardDictionary's Extended counterpart.
func NewExtendedDictionary(lang Language, minima Minima, trieBytes []byte, tallies []ExtendedTally, exceptions map[string][]ExtendedBreak) (*ExtendedDictionary, error) {
	trie, err := kltrie.Load(trieBytes)
	if err != nil {
		return nil, wrapDeserialization(err)
	}
	if exceptions == nil {
		exceptions = make(map[string][]ExtendedBreak)
	}
	return &ExtendedDictionary{
		core:       dictionaryCore{Lang: lang, Trie: trie, Minima: minima},
		tallies:    tallies,
		exceptions: &extendedExceptions{m: exceptions},
	}, nil
}

// Encode serializes d to w as a dictionary artifact, in the envelope
// format LoadStandard and LoadStandardFS understand.
func (d *StandardDictionary) Encode(w io.Writer) error {
	d.exceptions.mu.RLock()
	defer d.exceptions.mu.RUnlock()
	env := envelope{
		Variant:       StandardVariant,
		Language:      d.core.Lang,
		Minima:        d.core.Minima,
		TrieBytes:     d.core.Trie.Bytes(),
		StdTallies:    d.tallies,
		StdExceptions: d.exceptions.m,
	}
	return encodeEnvelope(env, w)
}

// Encode serializes d to w as a dictionary artifact.
func (d *ExtendedDictionary) Encode(w io.Writer) error {
	d.exceptions.mu.RLock()
	defer d.exceptions.mu.RUnlock()
	env := envelope{
		Variant:       ExtendedVariant,
		Language:      d.core.Lang,
		Minima:        d.core.Minima,
		TrieBytes:     d.core.Trie.Bytes(),
		ExtTallies:    d.tallies,
		ExtExceptions: d.exceptions.m,
	}
	return encodeEnvelope(env, w)
}
