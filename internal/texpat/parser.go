// Package texpat implements the offline TeX hyphenation-pattern build
// pipeline: parsing hyph-{code}.pat.txt / .hyp.txt / .ext.txt source lines
// into the (key, Tally) / (word, breaks) pairs the engine's dictionaries
// are built from.
//
// It is adapted from github.com/stackquest-hq/gophen's NewHyphDict, which
// parsed the same Liang-pattern digit/letter interleaving out of a single
// hyph_*.dic file; this generalizes that parsing to the line-type triplet
// (patterns, hyphenated exceptions, extended/Nemeth alternatives) and to
// an explicit, caller-selected Unicode normalization form instead of
// gophen's hard-coded CP1251-only special case (which is retained here for
// the source files that still ship in that legacy encoding).
package texpat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/stackquest-hq/hyph"
)

// NormalForm selects the Unicode normalization applied to every source
// line before parsing, matching the "none / NFC / NFD / NFKC / NFKD"
// choice described by the engine's build-side interface.
type NormalForm int

const (
	NormalizeNone NormalForm = iota
	NFC
	NFD
	NFKC
	NFKD
)

// Parser holds the build-time configuration for turning TeX pattern
// source lines into dictionary parts. The zero value normalizes nothing,
// matching raw TeX pattern files.
type Parser struct {
	Normalize NormalForm
}

func (p *Parser) normalize(s string) string {
	switch p.Normalize {
	case NFC:
		return norm.NFC.String(s)
	case NFD:
		return norm.NFD.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	case NFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}

// ignoredPrefixes mirrors gophen.go's `ignored` list: metadata and
// configuration lines that appear interleaved with patterns in TeX
// sources but carry no pattern of their own.
var ignoredPrefixes = []string{
	"%", "#",
	"LEFTHYPHENMIN", "RIGHTHYPHENMIN",
	"COMPOUNDLEFTHYPHENMIN", "COMPOUNDRIGHTHYPHENMIN",
}

func isIgnoredLine(line string) bool {
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseHexEscape matches gophen.go's `^^hh` TeX hex-escape syntax for
// bytes that don't survive plain-text editing.
var parseHexEscape = regexp.MustCompile(`\^{2}([0-9a-fA-F]{2})`)

func expandHexEscapes(line string) string {
	return parseHexEscape.ReplaceAllStringFunc(line, func(s string) string {
		v, _ := strconv.ParseInt(s[2:], 16, 32)
		return string(rune(v))
	})
}

// klTokens matches gophen.go's `(\d?)(\D?)` tokenizer: each match is an
// optional leading digit (the Knuth-Liang value immediately before a
// letter) followed by an optional non-digit rune.
var klTokens = regexp.MustCompile(`(\d?)(\D?)`)

// DecodeCP1251 converts a single line of Windows-1251 (the legacy encoding
// still used by some Cyrillic-script TeX pattern files, e.g. Russian and
// Ukrainian) to UTF-8, adapted directly from gophen.go's NewHyphDict.
func DecodeCP1251(line string) (string, error) {
	decoded, _, err := transform.String(charmap.Windows1251.NewDecoder(), line)
	if err != nil {
		return line, fmt.Errorf("texpat: decoding cp1251 line: %w", err)
	}
	return decoded, nil
}

// ParsePatternLine parses one line of a hyph-{code}.pat.txt source into
// its alphabetical key and Tally. Ignored/blank/all-zero lines return an
// empty key and a nil tally with ok=false.
func (p *Parser) ParsePatternLine(line string) (key string, tally hyph.Tally, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || isIgnoredLine(line) {
		return "", nil, false, nil
	}
	line = expandHexEscapes(line)
	line = p.normalize(line)

	var letters []byte
	anyNonZero := false

	for _, m := range klTokens.FindAllStringSubmatch(line, -1) {
		digitStr, letter := m[1], m[2]
		if digitStr == "" && letter == "" {
			continue
		}
		var v uint8
		if digitStr != "" {
			n, convErr := strconv.Atoi(digitStr)
			if convErr != nil {
				return "", nil, false, fmt.Errorf("texpat: bad digit in pattern %q: %w", line, convErr)
			}
			v = uint8(n)
		}
		if v > 0 {
			anyNonZero = true
			tally = append(tally, hyph.Locus{Index: uint8(len(letters)), Value: v})
		}
		letters = append(letters, letter...)
	}

	if !anyNonZero {
		return "", nil, false, nil
	}

	key = string(letters)
	return key, tally, true, nil
}

// ParseExceptionLine parses one line of a hyph-{code}.hyp.txt source:
// a word with embedded "-" marking each permitted break, e.g. "as-so-ciate".
func (p *Parser) ParseExceptionLine(line string) (word string, breaks []int, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || isIgnoredLine(line) {
		return "", nil, false, nil
	}
	line = p.normalize(line)

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if r == '-' {
			breaks = append(breaks, b.Len())
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String()), breaks, true, nil
}

// ParseExtendedPatternLine parses one line of a hyph-{code}.ext.txt
// source. Németh extended patterns have the form
// "standard/substitution,chars_to_op,span", where substitution embeds the
// literal break position as an "=" marker (e.g. "ss1z/sz=sz,2,3"). A line
// with no "/" is parsed as an ordinary standard pattern with no subregion.
func (p *Parser) ParseExtendedPatternLine(line string) (key string, tally hyph.ExtendedTally, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isIgnoredLine(trimmed) {
		return "", hyph.ExtendedTally{}, false, nil
	}

	slash := strings.IndexByte(trimmed, '/')
	if slash < 0 {
		k, t, found, perr := p.ParsePatternLine(line)
		return k, hyph.ExtendedTally{Standard: t}, found, perr
	}

	standardPattern, extension := trimmed[:slash], trimmed[slash+1:]
	key, standardTally, found, perr := p.ParsePatternLine(standardPattern)
	if perr != nil || !found {
		return "", hyph.ExtendedTally{}, found, perr
	}

	eq := strings.IndexByte(extension, '=')
	comma := strings.IndexByte(extension, ',')
	if eq < 0 || comma < 0 || eq > comma {
		return "", hyph.ExtendedTally{}, false, fmt.Errorf("texpat: malformed extended pattern %q", line)
	}
	subPattern := extension[:comma]
	breakpoint := eq // byte offset of '=' coincides with its offset within subPattern
	substitution := strings.ReplaceAll(subPattern, "=", "")

	rest := strings.Split(extension[comma+1:], ",")
	if len(rest) != 2 {
		return "", hyph.ExtendedTally{}, false, fmt.Errorf("texpat: malformed extended pattern indices %q", line)
	}
	charsToOp, err1 := strconv.Atoi(strings.TrimSpace(rest[0]))
	span, err2 := strconv.Atoi(strings.TrimSpace(rest[1]))
	if err1 != nil || err2 != nil {
		return "", hyph.ExtendedTally{}, false, fmt.Errorf("texpat: malformed extended pattern indices %q", line)
	}
	if strings.HasPrefix(standardPattern, ".") {
		charsToOp++
	}

	charsToStart := charsToOp - 1
	if charsToStart < 0 {
		charsToStart = 0
	}

	runes := []rune(key)
	byteOffset := func(charIdx int) int {
		if charIdx >= len(runes) {
			return len(key)
		}
		return len(string(runes[:charIdx]))
	}

	start := byteOffset(charsToStart)
	end := byteOffset(charsToStart + span)
	opOffset := byteOffset(charsToOp)

	var locusValue uint8
	var foundLocus bool
	for _, l := range standardTally {
		if int(l.Index) == opOffset {
			locusValue = l.Value
			foundLocus = true
			break
		}
	}
	if !foundLocus {
		return "", hyph.ExtendedTally{}, false, fmt.Errorf("texpat: extended pattern %q has no standard locus at its break position", line)
	}

	sub := &hyph.Subregion{
		Left:         opOffset - start,
		Right:        end - opOffset,
		Substitution: substitution,
		Breakpoint:   breakpoint,
	}

	return key, hyph.ExtendedTally{
		Standard:       standardTally,
		SubregionLocus: hyph.Locus{Index: uint8(opOffset), Value: locusValue},
		Subregion:      sub,
	}, true, nil
}
