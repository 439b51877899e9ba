package hyph

import "github.com/stackquest-hq/hyph/internal/kltrie"

func scoreLength(n int) int {
	if n-1 < 0 {
		return 0
	}
	return n - 1
}

// scoreStandard computes, for a folded (already-lowercased) word, the
// per-position Knuth-Liang score: element i is the score between byte i
// and byte i+1 of word. It walks the pattern trie over every suffix of
// ".word." and folds all matching patterns' loci together with max.
func scoreStandard(trie *kltrie.Trie, tallies []Tally, word string) []uint8 {
	n := len(word)
	values := make([]uint8, scoreLength(n))
	if n == 0 {
		return values
	}

	mb := []byte("." + word + ".")
	for i := 0; i < len(mb)-1; i++ {
		for _, id := range trie.GetPrefixes(mb[i:]) {
			if int(id) >= len(tallies) {
				continue
			}
			for _, locus := range tallies[id] {
				k := i + int(locus.Index)
				if k < 2 || k > n {
					continue
				}
				idx := k - 2
				if locus.Value > values[idx] {
					values[idx] = locus.Value
				}
			}
		}
	}
	return values
}

// scoreExtended is scoreStandard's counterpart for extended dictionaries:
// each matched tally may also carry a subregion locus, applied before the
// tally's standard loci so that an equal-valued standard locus at the same
// position never displaces an already-recorded subregion (strict ">"
// comparison per the scoring contract).
func scoreExtended(trie *kltrie.Trie, tallies []ExtendedTally, word string) ([]uint8, []*Subregion) {
	n := len(word)
	values := make([]uint8, scoreLength(n))
	subregions := make([]*Subregion, len(values))
	if n == 0 {
		return values, subregions
	}

	mb := []byte("." + word + ".")
	for i := 0; i < len(mb)-1; i++ {
		for _, id := range trie.GetPrefixes(mb[i:]) {
			if int(id) >= len(tallies) {
				continue
			}
			tally := tallies[id]

			if tally.Subregion != nil {
				k := i + int(tally.SubregionLocus.Index)
				if k >= 2 && k <= n {
					idx := k - 2
					if tally.SubregionLocus.Value > values[idx] {
						values[idx] = tally.SubregionLocus.Value
						subregions[idx] = tally.Subregion
					}
				}
			}

			for _, locus := range tally.Standard {
				k := i + int(locus.Index)
				if k < 2 || k > n {
					continue
				}
				idx := k - 2
				if locus.Value > values[idx] {
					values[idx] = locus.Value
					subregions[idx] = nil
				}
			}
		}
	}
	return values, subregions
}
