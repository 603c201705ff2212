// Package core: BinningSpec, WoEBin and WoESpec — the fitted, serializable
// artifacts of the binning and WoE stages.

package core

import "fmt"

// BinningSpec is a Feature plus the set of bins that partition its domain.
// Construction validates the partition invariant; a BinningSpec value is
// therefore always well-formed.
type BinningSpec struct {
	feature Feature
	bins    []Range
}

// NewBinningSpec builds a BinningSpec from a feature and its bins.
// Duplicate Ranges (by value) collapse to one. tolerance <= 0 falls back to
// NumericAccuracy.
//
// Errors: the first violated partition condition, per CheckRanges.
func NewBinningSpec(feature Feature, bins []Range, tolerance float64) (BinningSpec, error) {
	deduped := dedupeRanges(bins)
	if err := CheckRanges(feature, deduped, tolerance); err != nil {
		return BinningSpec{}, err
	}
	sortRanges(deduped)

	return BinningSpec{feature: feature, bins: deduped}, nil
}

// Feature returns the feature the binning applies to.
func (s BinningSpec) Feature() Feature { return s.feature }

// Bins returns the bins in deterministic order (numeric bins ascending by
// interval, then categorical bins). The slice is a copy.
func (s BinningSpec) Bins() []Range {
	out := make([]Range, len(s.bins))
	copy(out, s.bins)

	return out
}

// Equal reports structural equality of feature and bin set.
func (s BinningSpec) Equal(other BinningSpec) bool {
	if !s.feature.Equal(other.feature) || len(s.bins) != len(other.bins) {
		return false
	}
	for i := range s.bins {
		if !s.bins[i].Equal(other.bins[i]) {
			return false
		}
	}

	return true
}

// WoEBin is a bin plus its fitted statistics. Constructed by the WoE
// transformer during fitting (or decoded from a persisted spec); immutable.
type WoEBin struct {
	bin           Range
	woe           float64
	iv            float64
	eventCount    int
	nonEventCount int
}

// NewWoEBin builds a WoEBin from a bin, its event/non-event counts and its
// computed WoE and IV values.
//
// Errors:
//   - ErrNegativeCount if either count is negative.
func NewWoEBin(bin Range, eventCount, nonEventCount int, woe, iv float64) (WoEBin, error) {
	if eventCount < 0 || nonEventCount < 0 {
		return WoEBin{}, fmt.Errorf("core: counts (%d, %d): %w", eventCount, nonEventCount, ErrNegativeCount)
	}

	return WoEBin{bin: bin, woe: woe, iv: iv, eventCount: eventCount, nonEventCount: nonEventCount}, nil
}

// Bin returns the Range the statistics were computed over.
func (b WoEBin) Bin() Range { return b.bin }

// WoE returns the bin's Weight-of-Evidence value.
func (b WoEBin) WoE() float64 { return b.woe }

// IV returns the bin's Information Value contribution.
func (b WoEBin) IV() float64 { return b.iv }

// EventCount returns the number of event (target == 1) rows in the bin.
func (b WoEBin) EventCount() int { return b.eventCount }

// NonEventCount returns the number of non-event (target == 0) rows in the bin.
func (b WoEBin) NonEventCount() int { return b.nonEventCount }

// Equal reports structural equality of range, counts and statistics.
func (b WoEBin) Equal(other WoEBin) bool {
	return b.bin.Equal(other.bin) &&
		b.woe == other.woe && b.iv == other.iv &&
		b.eventCount == other.eventCount && b.nonEventCount == other.nonEventCount
}

// WoESpec aggregates a feature's WoEBins. The underlying Ranges must
// partition the feature's domain exactly as in BinningSpec; construction
// re-validates this.
type WoESpec struct {
	feature Feature
	bins    []WoEBin
}

// NewWoESpec builds a WoESpec from a feature and its fitted bins.
// tolerance <= 0 falls back to NumericAccuracy.
//
// Errors: the first violated partition condition over the bins' Ranges,
// per CheckRanges.
func NewWoESpec(feature Feature, bins []WoEBin, tolerance float64) (WoESpec, error) {
	deduped := dedupeWoEBins(bins)
	ranges := make([]Range, len(deduped))
	for i, b := range deduped {
		ranges[i] = b.bin
	}
	if err := CheckRanges(feature, ranges, tolerance); err != nil {
		return WoESpec{}, err
	}
	sortWoEBins(deduped)

	return WoESpec{feature: feature, bins: deduped}, nil
}

// Feature returns the feature the WoE transformation applies to.
func (s WoESpec) Feature() Feature { return s.feature }

// Bins returns the fitted bins in deterministic order. The slice is a copy.
func (s WoESpec) Bins() []WoEBin {
	out := make([]WoEBin, len(s.bins))
	copy(out, s.bins)

	return out
}

// IV returns the feature's total Information Value: the sum of per-bin IV
// contributions, the conventional measure of a feature's predictive power.
func (s WoESpec) IV() float64 {
	total := 0.0
	for _, b := range s.bins {
		total += b.iv
	}

	return total
}

// Equal reports structural equality of feature and bin set.
func (s WoESpec) Equal(other WoESpec) bool {
	if !s.feature.Equal(other.feature) || len(s.bins) != len(other.bins) {
		return false
	}
	for i := range s.bins {
		if !s.bins[i].Equal(other.bins[i]) {
			return false
		}
	}

	return true
}

// dedupeRanges collapses value-equal Ranges, preserving first-seen order.
func dedupeRanges(bins []Range) []Range {
	seen := make(map[string]struct{}, len(bins))
	out := make([]Range, 0, len(bins))
	for _, bin := range bins {
		key := bin.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, bin)
	}

	return out
}

// dedupeWoEBins collapses WoEBins whose underlying Ranges are value-equal,
// preserving first-seen order. Two fitted bins over the same Range carry the
// same statistics by construction, so keeping the first is lossless.
func dedupeWoEBins(bins []WoEBin) []WoEBin {
	seen := make(map[string]struct{}, len(bins))
	out := make([]WoEBin, 0, len(bins))
	for _, bin := range bins {
		key := bin.bin.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, bin)
	}

	return out
}

// sortWoEBins orders fitted bins by their underlying Ranges, mirroring
// sortRanges.
func sortWoEBins(bins []WoEBin) {
	ranges := make([]Range, len(bins))
	for i, b := range bins {
		ranges[i] = b.bin
	}
	// Sort bins by the deterministic Range order via index mapping.
	order := make(map[string]int, len(ranges))
	sortRanges(ranges)
	for i, r := range ranges {
		order[r.Key()] = i
	}
	sorted := make([]WoEBin, len(bins))
	for _, b := range bins {
		sorted[order[b.bin.Key()]] = b
	}
	copy(bins, sorted)
}
