// Package core_test: the partition-invariant checker and spec construction —
// coverage, token bookkeeping, contiguity, and the membership-exclusivity
// property every valid partition must satisfy.
package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credscope/woebin/core"
)

// mustRange builds a numeric Range or fails the test.
func mustRange(t *testing.T, start, end float64, tokens ...string) core.Range {
	t.Helper()
	rng, err := core.NewRange(start, end, tokens...)
	require.NoError(t, err)

	return rng
}

// mustFeature builds a Feature over the canonical test domain
// (0.5, 2.5] with tokens {M, C, _}.
func mustFeature(t *testing.T) core.Feature {
	t.Helper()
	f, err := core.NewFeature("score", mustRange(t, 0.5, 2.5, "M", "C", "_"))
	require.NoError(t, err)

	return f
}

// ------------------------------------------------------------------------
// 1. Coverage failures.
// ------------------------------------------------------------------------

func TestCheckRanges_CoverageMin(t *testing.T) {
	// One bin starting at 0.2 against a domain starting at 0.5: the bin set
	// does not meet the domain start within tolerance.
	feature := mustFeature(t)
	bins := []core.Range{mustRange(t, 0.2, 0.8, "M", "C", "_")}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrCoverageMin)
}

func TestCheckRanges_CoverageMax(t *testing.T) {
	// Start is covered, the end falls short of 2.5.
	feature := mustFeature(t)
	bins := []core.Range{mustRange(t, 0.5, 1.8, "M", "C", "_")}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrCoverageMax)
}

func TestCheckRanges_ToleratedOvershoot(t *testing.T) {
	// Bins (0.4, 1.5] and (1.5, 2.6] overshoot the domain (0.5, 2.5] by 0.1
	// on both sides; with a 0.15 tolerance the partition is accepted and
	// the tokens split cleanly across the two bins.
	feature := mustFeature(t)
	bins := []core.Range{
		mustRange(t, 0.4, 1.5, "_"),
		mustRange(t, 1.5, 2.6, "M", "C"),
	}

	assert.NoError(t, core.CheckRanges(feature, bins, 0.15))

	_, err := core.NewBinningSpec(feature, bins, 0.15)
	assert.NoError(t, err)
}

// ------------------------------------------------------------------------
// 2. Token bookkeeping.
// ------------------------------------------------------------------------

func TestCheckRanges_MissingTokens(t *testing.T) {
	// "_" is in the domain but claimed by no bin.
	feature := mustFeature(t)
	bins := []core.Range{mustRange(t, 0.5, 2.5, "M", "C")}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	require.ErrorIs(t, err, core.ErrMissingTokens)
	assert.Contains(t, err.Error(), "_", "the missing set is reported")
}

func TestCheckRanges_DuplicateTokens(t *testing.T) {
	// "M" is claimed by both bins.
	feature := mustFeature(t)
	bins := []core.Range{
		mustRange(t, 0.5, 1.5, "M", "_"),
		mustRange(t, 1.5, 2.5, "M", "C"),
	}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrDuplicateTokens)
}

// ------------------------------------------------------------------------
// 3. Contiguity.
// ------------------------------------------------------------------------

func TestCheckRanges_Gap(t *testing.T) {
	feature := mustFeature(t)
	bins := []core.Range{
		mustRange(t, 0.5, 1.0, "_"),
		mustRange(t, 1.4, 2.5, "M", "C"), // gap between 1.0 and 1.4
	}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrDisjointRanges)
}

func TestCheckRanges_Overlap(t *testing.T) {
	feature := mustFeature(t)
	bins := []core.Range{
		mustRange(t, 0.5, 1.6, "_"),
		mustRange(t, 1.4, 2.5, "M", "C"), // overlaps 1.4..1.6, yet min/max cover
	}

	err := core.CheckRanges(feature, bins, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrDisjointRanges)
}

func TestCheckRanges_SingleNumericBinPasses(t *testing.T) {
	feature := mustFeature(t)
	bins := []core.Range{mustRange(t, 0.5, 2.5, "M", "C", "_")}

	assert.NoError(t, core.CheckRanges(feature, bins, core.NumericAccuracy))
}

func TestCheckRanges_NoNumericBins(t *testing.T) {
	// With no numeric-bearing bin the numeric coverage is vacuously
	// satisfied against the feature's own bounds.
	catDomain, err := core.NewCategoricalRange("M", "C")
	require.NoError(t, err)
	feature, err := core.NewFeature("grade", catDomain)
	require.NoError(t, err)

	binM, err := core.NewCategoricalRange("M")
	require.NoError(t, err)
	binC, err := core.NewCategoricalRange("C")
	require.NoError(t, err)

	assert.NoError(t, core.CheckRanges(feature, []core.Range{binM, binC}, core.NumericAccuracy))
}

// ------------------------------------------------------------------------
// 4. Spec construction on top of the checker.
// ------------------------------------------------------------------------

func TestNewBinningSpec_ValidPartition(t *testing.T) {
	feature := mustFeature(t)
	spec, err := core.NewBinningSpec(feature, []core.Range{
		mustRange(t, 1.5, 2.5, "M", "C"),
		mustRange(t, 0.5, 1.5, "_"),
	}, core.NumericAccuracy)
	require.NoError(t, err)

	bins := spec.Bins()
	require.Len(t, bins, 2)
	// Deterministic order: numeric bins ascending by start.
	assert.Equal(t, 0.5, bins[0].Start())
	assert.Equal(t, 1.5, bins[1].Start())
}

func TestNewBinningSpec_DeduplicatesValueEqualBins(t *testing.T) {
	feature := mustFeature(t)
	bin := mustRange(t, 0.5, 2.5, "M", "C", "_")
	spec, err := core.NewBinningSpec(feature, []core.Range{bin, bin}, core.NumericAccuracy)
	require.NoError(t, err)

	assert.Len(t, spec.Bins(), 1)
}

func TestNewWoESpec_RevalidatesPartition(t *testing.T) {
	feature := mustFeature(t)
	// A WoESpec over bins that miss the "_" token must fail the same way a
	// BinningSpec would.
	bin, err := core.NewWoEBin(mustRange(t, 0.5, 2.5, "M", "C"), 1, 1, 0, 0)
	require.NoError(t, err)

	_, err = core.NewWoESpec(feature, []core.WoEBin{bin}, core.NumericAccuracy)
	assert.ErrorIs(t, err, core.ErrMissingTokens)
}

func TestNewWoEBin_NegativeCounts(t *testing.T) {
	_, err := core.NewWoEBin(mustRange(t, 0, 1), -1, 0, 0, 0)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

func TestWoESpec_TotalIV(t *testing.T) {
	feature := mustFeature(t)
	binA, err := core.NewWoEBin(mustRange(t, 0.5, 1.5, "_"), 10, 40, -0.5, 0.125)
	require.NoError(t, err)
	binB, err := core.NewWoEBin(mustRange(t, 1.5, 2.5, "M", "C"), 40, 10, 0.5, 0.25)
	require.NoError(t, err)

	spec, err := core.NewWoESpec(feature, []core.WoEBin{binA, binB}, core.NumericAccuracy)
	require.NoError(t, err)

	assert.InDelta(t, 0.375, spec.IV(), 1e-12)
}

// ------------------------------------------------------------------------
// 5. Membership exclusivity over a valid partition.
// ------------------------------------------------------------------------

func TestPartition_MembershipExclusivity(t *testing.T) {
	feature := mustFeature(t)
	spec, err := core.NewBinningSpec(feature, []core.Range{
		mustRange(t, 0.5, 1.2),
		mustRange(t, 1.2, 1.9, "_"),
		mustRange(t, 1.9, 2.5, "M", "C"),
	}, core.NumericAccuracy)
	require.NoError(t, err)

	samples := []string{"0.6", "1.2", "1.3", "1.9", "2.0", "2.5", "M", "C", "_"}
	for _, raw := range samples {
		matches := 0
		for _, bin := range spec.Bins() {
			if bin.Contains(raw) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, fmt.Sprintf("value %q must fall in exactly one bin", raw))
	}
}
