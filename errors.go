package hyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Wrapped errors returned by Load
// and friends satisfy errors.Is against these.
var (
	// ErrDeserialization means the byte stream did not decode to a
	// well-formed dictionary artifact.
	ErrDeserialization = errors.New("hyph: malformed dictionary artifact")

	// ErrIO means reading the dictionary's byte stream failed.
	ErrIO = errors.New("hyph: i/o error reading dictionary")

	// ErrResourceMissing means an embedded-resource lookup found no blob
	// for the requested language and variant.
	ErrResourceMissing = errors.New("hyph: no embedded dictionary for language")

	// ErrTrieBuild means duplicate or unsorted keys reached the pattern
	// trie builder. Build-time only; never returned by Load.
	ErrTrieBuild = errors.New("hyph: invalid pattern trie build order")
)

// LanguageMismatchError is returned when a decoded dictionary's embedded
// language tag disagrees with the language requested by the caller.
type LanguageMismatchError struct {
	Expected Language
	Found    Language
}

func (e *LanguageMismatchError) Error() string {
	return fmt.Sprintf("hyph: requested dictionary for %q but artifact is for %q", e.Expected, e.Found)
}

// Is reports whether target is any *LanguageMismatchError, so callers can
// write errors.Is(err, new(LanguageMismatchError)) without caring about
// the specific languages involved.
func (e *LanguageMismatchError) Is(target error) bool {
	_, ok := target.(*LanguageMismatchError)
	return ok
}

func wrapDeserialization(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDeserialization, err)
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
