package texpat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/stackquest-hq/hyph"
	"github.com/stackquest-hq/hyph/internal/kltrie"
)

// KV is one parsed standard pattern, ready for BuildStandard.
type KV struct {
	Key   string
	Tally hyph.Tally
}

// ExtKV is one parsed extended pattern, ready for BuildExtended.
type ExtKV struct {
	Key   string
	Tally hyph.ExtendedTally
}

func standardTallyKey(t hyph.Tally) string {
	var b strings.Builder
	for _, l := range t {
		b.WriteByte(l.Index)
		b.WriteByte(l.Value)
	}
	return b.String()
}

func extendedTallyKey(t hyph.ExtendedTally) string {
	var b strings.Builder
	b.WriteString(standardTallyKey(t.Standard))
	if t.Subregion != nil {
		b.WriteByte(t.SubregionLocus.Index)
		b.WriteByte(t.SubregionLocus.Value)
		b.WriteString(strconv.Itoa(t.Subregion.Left))
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(t.Subregion.Right))
		b.WriteByte(0)
		b.WriteString(t.Subregion.Substitution)
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(t.Subregion.Breakpoint))
	}
	return b.String()
}

// BuildStandard sorts and deduplicates kvs, builds the pattern trie, and
// assembles a ready StandardDictionary. A later entry for a duplicate key
// replaces the earlier one, matching the last-insert-wins behavior of a
// map literal built straight from source lines.
func BuildStandard(lang hyph.Language, minima hyph.Minima, kvs []KV, exceptions map[string][]int) (*hyph.StandardDictionary, error) {
	kvs = dedupeByKeyStandard(kvs)
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })

	builder, err := kltrie.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("texpat: %w", err)
	}

	tallyIDs := make(map[string]uint64)
	var tallies []hyph.Tally
	for _, kv := range kvs {
		tk := standardTallyKey(kv.Tally)
		id, ok := tallyIDs[tk]
		if !ok {
			id = uint64(len(tallies))
			tallies = append(tallies, kv.Tally)
			tallyIDs[tk] = id
		}
		if err := builder.Insert([]byte(kv.Key), id); err != nil {
			return nil, fmt.Errorf("texpat: %w: %w", hyph.ErrTrieBuild, err)
		}
	}

	_, raw, err := builder.Close()
	if err != nil {
		return nil, fmt.Errorf("texpat: %w", err)
	}

	return hyph.NewStandardDictionary(lang, minima, raw, tallies, exceptions)
}

// BuildExtended is BuildStandard's counterpart for Nemeth-extended
// dictionaries.
func BuildExtended(lang hyph.Language, minima hyph.Minima, kvs []ExtKV, exceptions map[string][]hyph.ExtendedBreak) (*hyph.ExtendedDictionary, error) {
	kvs = dedupeByKeyExtended(kvs)
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })

	builder, err := kltrie.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("texpat: %w", err)
	}

	tallyIDs := make(map[string]uint64)
	var tallies []hyph.ExtendedTally
	for _, kv := range kvs {
		tk := extendedTallyKey(kv.Tally)
		id, ok := tallyIDs[tk]
		if !ok {
			id = uint64(len(tallies))
			tallies = append(tallies, kv.Tally)
			tallyIDs[tk] = id
		}
		if err := builder.Insert([]byte(kv.Key), id); err != nil {
			return nil, fmt.Errorf("texpat: %w: %w", hyph.ErrTrieBuild, err)
		}
	}

	_, raw, err := builder.Close()
	if err != nil {
		return nil, fmt.Errorf("texpat: %w", err)
	}

	return hyph.NewExtendedDictionary(lang, minima, raw, tallies, exceptions)
}

func dedupeByKeyStandard(kvs []KV) []KV {
	seen := make(map[string]int, len(kvs))
	out := make([]KV, 0, len(kvs))
	for _, kv := range kvs {
		if i, ok := seen[kv.Key]; ok {
			out[i] = kv
			continue
		}
		seen[kv.Key] = len(out)
		out = append(out, kv)
	}
	return out
}

func dedupeByKeyExtended(kvs []ExtKV) []ExtKV {
	seen := make(map[string]int, len(kvs))
	out := make([]ExtKV, 0, len(kvs))
	for _, kv := range kvs {
		if i, ok := seen[kv.Key]; ok {
			out[i] = kv
			continue
		}
		seen[kv.Key] = len(out)
		out = append(out, kv)
	}
	return out
}
