package hyph

import (
	"bytes"
	"embed"
	"encoding/gob"
	"fmt"
	"io"
	"io/fs"

	"github.com/stackquest-hq/hyph/internal/kltrie"
)

// dictionaries bundles whatever compiled dictionary artifacts ship with
// this module, keyed by "{code}.{standard|extended}.hyphdict". The
// offline build pipeline that populates this directory is an external
// collaborator; the module ships without precompiled artifacts and
// callers supply their own via LoadStandard/LoadExtended or
// LoadStandardFS/LoadExtendedFS.
//
//go:embed all:dictionaries
var dictionaries embed.FS

// envelope is the on-disk container for one compiled dictionary: language
// tag, margins, the serialized pattern trie, its deduplicated tally
// vector, and the exception table. Standard and Extended artifacts share
// the same envelope shape; exactly one of the Std*/Ext* tally/exception
// fields is populated, selected by Variant.
type envelope struct {
	Variant       Variant
	Language      Language
	Minima        Minima
	TrieBytes     []byte
	StdTallies    []Tally
	ExtTallies    []ExtendedTally
	StdExceptions map[string][]int
	ExtExceptions map[string][]ExtendedBreak
}

// Variant distinguishes a Standard (Knuth-Liang only) dictionary artifact
// from an Extended (Nemeth non-standard) one.
type Variant uint8

const (
	StandardVariant Variant = iota
	ExtendedVariant
)

func (v Variant) String() string {
	switch v {
	case StandardVariant:
		return "standard"
	case ExtendedVariant:
		return "extended"
	default:
		return "unknown"
	}
}

// decodeEnvelope reads r to completion before handing it to gob, so that a
// failure while pulling bytes off the reader (the network, the file
// handle, whatever backs r) is distinguishable from gob finding those
// bytes well-formed-but-not-an-envelope: the former is ErrIO, the latter
// ErrDeserialization.
func decodeEnvelope(r io.Reader) (envelope, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return envelope{}, wrapIO(err)
	}
	var env envelope
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return envelope{}, wrapDeserialization(err)
	}
	return env, nil
}

func encodeEnvelope(env envelope, w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("hyph: encoding dictionary artifact: %w", err)
	}
	return nil
}

func buildCore(env envelope) (dictionaryCore, error) {
	trie, err := kltrie.Load(env.TrieBytes)
	if err != nil {
		return dictionaryCore{}, wrapDeserialization(err)
	}
	return dictionaryCore{Lang: env.Language, Trie: trie, Minima: env.Minima}, nil
}

// LoadStandard decodes a Standard dictionary artifact from r, returning a
// *LanguageMismatchError if the artifact's embedded language tag disagrees
// with lang.
func LoadStandard(lang Language, r io.Reader) (*StandardDictionary, error) {
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, err
	}
	if env.Language != lang {
		return nil, &LanguageMismatchError{Expected: lang, Found: env.Language}
	}
	return standardFromEnvelope(env)
}

// AnyStandardFromReader decodes a Standard dictionary artifact from r
// without checking its embedded language tag.
func AnyStandardFromReader(r io.Reader) (*StandardDictionary, error) {
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, err
	}
	return standardFromEnvelope(env)
}

func standardFromEnvelope(env envelope) (*StandardDictionary, error) {
	core, err := buildCore(env)
	if err != nil {
		return nil, err
	}
	m := env.StdExceptions
	if m == nil {
		m = make(map[string][]int)
	}
	return &StandardDictionary{
		core:       core,
		tallies:    env.StdTallies,
		exceptions: &standardExceptions{m: m},
	}, nil
}

// LoadExtended decodes an Extended dictionary artifact from r.
func LoadExtended(lang Language, r io.Reader) (*ExtendedDictionary, error) {
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, err
	}
	if env.Language != lang {
		return nil, &LanguageMismatchError{Expected: lang, Found: env.Language}
	}
	return extendedFromEnvelope(env)
}

// AnyExtendedFromReader decodes an Extended dictionary artifact from r
// without checking its embedded language tag.
func AnyExtendedFromReader(r io.Reader) (*ExtendedDictionary, error) {
	env, err := decodeEnvelope(r)
	if err != nil {
		return nil, err
	}
	return extendedFromEnvelope(env)
}

func extendedFromEnvelope(env envelope) (*ExtendedDictionary, error) {
	core, err := buildCore(env)
	if err != nil {
		return nil, err
	}
	m := env.ExtExceptions
	if m == nil {
		m = make(map[string][]ExtendedBreak)
	}
	return &ExtendedDictionary{
		core:       core,
		tallies:    env.ExtTallies,
		exceptions: &extendedExceptions{m: m},
	}, nil
}

func resourceName(lang Language, variant Variant) string {
	return fmt.Sprintf("dictionaries/%s.%s.hyphdict", lang.Code(), variant)
}

func openResource(fsys fs.FS, lang Language, variant Variant) ([]byte, error) {
	name := resourceName(lang, variant)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceMissing, name)
	}
	return data, nil
}

// EmbeddedStandard loads the Standard dictionary bundled with this module
// for lang, if any.
func EmbeddedStandard(lang Language) (*StandardDictionary, error) {
	data, err := openResource(dictionaries, lang, StandardVariant)
	if err != nil {
		return nil, err
	}
	return LoadStandard(lang, bytes.NewReader(data))
}

// EmbeddedExtended loads the Extended dictionary bundled with this module
// for lang, if any.
func EmbeddedExtended(lang Language) (*ExtendedDictionary, error) {
	data, err := openResource(dictionaries, lang, ExtendedVariant)
	if err != nil {
		return nil, err
	}
	return LoadExtended(lang, bytes.NewReader(data))
}

// LoadStandardFS is EmbeddedStandard generalized to an arbitrary fs.FS,
// for callers (and tests) that assemble dictionaries outside this
// module's own embed.FS, e.g. via fstest.MapFS.
func LoadStandardFS(fsys fs.FS, lang Language) (*StandardDictionary, error) {
	data, err := openResource(fsys, lang, StandardVariant)
	if err != nil {
		return nil, err
	}
	return LoadStandard(lang, bytes.NewReader(data))
}

// LoadExtendedFS is EmbeddedExtended generalized to an arbitrary fs.FS.
func LoadExtendedFS(fsys fs.FS, lang Language) (*ExtendedDictionary, error) {
	data, err := openResource(fsys, lang, ExtendedVariant)
	if err != nil {
		return nil, err
	}
	return LoadExtended(lang, bytes.NewReader(data))
}
