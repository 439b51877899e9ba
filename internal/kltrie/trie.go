// Package kltrie implements the pattern trie used by the hyphenation
// scorer: an ordered byte-keyed map from Knuth-Liang pattern keys to
// tally-ids, built once from sorted key/id pairs and queried by walking
// every byte-prefix of a suffix of the word under scoring.
//
// It is backed by github.com/blevesearch/vellum, a minimal ordered finite
// state transducer with deterministic byte transitions and a compact
// serialized form. Vellum's own prefix/range walk API operates over the
// automaton's registered transitions rather than an arbitrary
// caller-supplied byte slice, so GetPrefixes is built on top of repeated
// Get calls, one per prefix length of the query; the cost is therefore
// quadratic rather than linear in the query length, which stays cheap for
// the short suffixes of a single word.
package kltrie

import (
	"bytes"
	"fmt"

	"github.com/blevesearch/vellum"
)

// Trie is an immutable pattern trie: lookup by exact key, or enumeration
// of every prefix of a query that is itself a key in the trie.
type Trie struct {
	fst *vellum.FST
	raw []byte
}

// Builder accumulates (key, id) pairs in strictly increasing lexicographic
// order and produces a Trie.
type Builder struct {
	buf  *bytes.Buffer
	fb   *vellum.Builder
	last []byte
	n    int
}

// NewBuilder starts a fresh trie build.
func NewBuilder() (*Builder, error) {
	buf := new(bytes.Buffer)
	fb, err := vellum.New(buf, nil)
	if err != nil {
		return nil, fmt.Errorf("kltrie: starting builder: %w", err)
	}
	return &Builder{buf: buf, fb: fb}, nil
}

// Insert adds one pattern key with its tally-id. Keys must be inserted in
// strictly increasing lexicographic order and must be unique; violating
// either is a build-time error (spec: "duplicate keys on build -> error").
func (b *Builder) Insert(key []byte, id uint64) error {
	if b.last != nil && bytes.Compare(key, b.last) <= 0 {
		return fmt.Errorf("kltrie: key %q is not strictly greater than previous key %q", key, b.last)
	}
	if err := b.fb.Insert(key, id); err != nil {
		return fmt.Errorf("kltrie: insert %q: %w", key, err)
	}
	b.last = append(b.last[:0], key...)
	b.n++
	return nil
}

// Close finalizes the trie and returns it along with its serialized bytes,
// ready to be embedded in a dictionary artifact.
func (b *Builder) Close() (*Trie, []byte, error) {
	if err := b.fb.Close(); err != nil {
		return nil, nil, fmt.Errorf("kltrie: closing builder: %w", err)
	}
	raw := b.buf.Bytes()
	fst, err := vellum.Load(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("kltrie: loading built trie: %w", err)
	}
	return &Trie{fst: fst, raw: raw}, raw, nil
}

// Load reconstructs a Trie from bytes previously produced by Builder.Close.
func Load(raw []byte) (*Trie, error) {
	fst, err := vellum.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("kltrie: loading trie: %w", err)
	}
	return &Trie{fst: fst, raw: raw}, nil
}

// Bytes returns the serialized form of the trie, suitable for embedding in
// a dictionary artifact envelope.
func (t *Trie) Bytes() []byte {
	return t.raw
}

// Get performs an exact lookup.
func (t *Trie) Get(key []byte) (id uint64, ok bool) {
	if t == nil || t.fst == nil {
		return 0, false
	}
	v, exists, err := t.fst.Get(key)
	if err != nil || !exists {
		return 0, false
	}
	return v, true
}

// GetPrefixes yields, in order of increasing prefix length, the tally-id
// for every prefix of query that is a key in the trie. An empty query or a
// query with no matching prefix yields nothing.
func (t *Trie) GetPrefixes(query []byte) []uint64 {
	if t == nil || t.fst == nil || len(query) == 0 {
		return nil
	}
	var out []uint64
	for i := 1; i <= len(query); i++ {
		if v, exists, err := t.fst.Get(query[:i]); err == nil && exists {
			out = append(out, v)
		}
	}
	return out
}

// Close releases resources held by the trie's underlying FST.
func (t *Trie) Close() error {
	if t == nil || t.fst == nil {
		return nil
	}
	return t.fst.Close()
}
