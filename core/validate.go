// Package core: the partition-invariant checker shared by BinningSpec and
// WoESpec construction.

package core

import (
	"fmt"
	"math"
	"sort"
)

// CheckRanges validates that bins exactly partition the feature's domain.
// tolerance <= 0 falls back to NumericAccuracy.
//
// Conditions are checked in order and the first violation is returned:
//  1. coverage of the domain start (ErrCoverageMin),
//  2. coverage of the domain end (ErrCoverageMax),
//  3. every domain token claimed by some bin (ErrMissingTokens, reporting
//     the missing set),
//  4. no token claimed twice (ErrDuplicateTokens),
//  5. numeric contiguity: sorted by start, each bin's end meets the next
//     bin's start within tolerance (ErrDisjointRanges).
//
// Bins without a numeric part are excluded from the numeric aggregates; a
// bin set with no numeric-bearing bin at all falls back to the feature's own
// bounds, so the coverage checks pass vacuously. Fewer than two numeric bins
// trivially satisfy contiguity.
func CheckRanges(feature Feature, bins []Range, tolerance float64) error {
	if tolerance <= 0 {
		tolerance = NumericAccuracy
	}

	domain := feature.Range()

	// Numeric aggregates over the numeric-bearing bins only.
	numeric := make([]Range, 0, len(bins))
	for _, bin := range bins {
		if bin.HasNumeric() {
			numeric = append(numeric, bin)
		}
	}

	minNumeric, maxNumeric := domain.Start(), domain.End()
	if len(numeric) > 0 {
		if !domain.HasNumeric() {
			// Numeric bins over a purely categorical domain cannot cover it.
			return fmt.Errorf("core: feature %q has no numeric domain: %w",
				feature.Name(), ErrCoverageMin)
		}
		minNumeric, maxNumeric = numeric[0].Start(), numeric[0].End()
		for _, bin := range numeric[1:] {
			minNumeric = math.Min(minNumeric, bin.Start())
			maxNumeric = math.Max(maxNumeric, bin.End())
		}
	}

	if math.Abs(minNumeric-domain.Start()) > tolerance {
		return fmt.Errorf("core: feature %q: bin minimum %v vs domain start %v: %w",
			feature.Name(), minNumeric, domain.Start(), ErrCoverageMin)
	}
	if math.Abs(maxNumeric-domain.End()) > tolerance {
		return fmt.Errorf("core: feature %q: bin maximum %v vs domain end %v: %w",
			feature.Name(), maxNumeric, domain.End(), ErrCoverageMax)
	}

	// Token bookkeeping: every domain token claimed exactly once.
	claimed := make(map[string]int)
	for _, bin := range bins {
		for _, tok := range bin.Tokens() {
			claimed[tok]++
		}
	}

	var missing []string
	for _, tok := range domain.Tokens() {
		if claimed[tok] == 0 {
			missing = append(missing, tok)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("core: feature %q: tokens %v: %w", feature.Name(), missing, ErrMissingTokens)
	}

	for _, tok := range sortedKeys(claimed) {
		if claimed[tok] > 1 {
			return fmt.Errorf("core: feature %q: token %q: %w", feature.Name(), tok, ErrDuplicateTokens)
		}
	}

	return checkContiguity(feature, numeric, tolerance)
}

// checkContiguity verifies that the numeric bins, ordered by start, tile the
// line with no gap or overlap beyond tolerance: bin i's end must meet bin
// i+1's start. This is the robust form of the disjointness check — it pairs
// each end with its true spatial successor instead of sorting starts and
// ends independently.
func checkContiguity(feature Feature, numeric []Range, tolerance float64) error {
	if len(numeric) < 2 {
		return nil
	}

	ordered := make([]Range, len(numeric))
	copy(ordered, numeric)
	sortRanges(ordered)

	for i := 1; i < len(ordered); i++ {
		if math.Abs(ordered[i-1].End()-ordered[i].Start()) > tolerance {
			return fmt.Errorf("core: feature %q: end %v does not meet next start %v: %w",
				feature.Name(), ordered[i-1].End(), ordered[i].Start(), ErrDisjointRanges)
		}
	}

	return nil
}

// sortedKeys returns the map keys in sorted order for deterministic error
// reporting.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
