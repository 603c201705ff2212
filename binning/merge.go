// Package binning: iterative statistical merging of adjacent bins with
// indistinguishable event rates.

package binning

import (
	"fmt"
	"sort"

	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/frame"
	"github.com/credscope/woebin/proptest"
)

// binStats holds one bin's membership statistics over the dataset.
type binStats struct {
	events int
	total  int
}

// rate returns the bin's event rate; an empty bin rates 0, so it merges
// freely instead of dividing by zero.
func (s binStats) rate() float64 {
	if s.total == 0 {
		return 0
	}

	return float64(s.events) / float64(s.total)
}

// mergeBins coalesces bins until a pass leaves the count unchanged.
//
// Each pass: recompute every bin's event/total counts over the full column,
// order bins by ascending event rate (candidacy order, not spatial order),
// then scan pairwise — p >= threshold merges the pair into the union range
// and skips both, p < threshold keeps the lower bin and advances by one; a
// final unpaired bin is kept unmerged.
//
// Errors:
//   - ErrMergeDiverged if a pass increases the count (internal defect).
//   - core range errors from a malformed union (also unreachable for bins
//     produced by this package).
func mergeBins(bins []core.Range, series frame.Series, y frame.Target, test proptest.Func, threshold float64) ([]core.Range, error) {
	for len(bins) > 1 {
		stats := collectStats(bins, series, y)

		order := make([]int, len(bins))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			ri, rj := stats[order[i]].rate(), stats[order[j]].rate()
			if ri != rj {
				return ri < rj
			}
			// Deterministic tie-break so equal-rate passes are reproducible.
			return bins[order[i]].Key() < bins[order[j]].Key()
		})

		out := make([]core.Range, 0, len(bins))
		for i := 0; i < len(order); {
			if i == len(order)-1 {
				// The scan landed on the last element: keep it unmerged.
				out = append(out, bins[order[i]])
				i++

				continue
			}
			a, b := order[i], order[i+1]
			p := test(stats[a].events, stats[a].total, stats[b].events, stats[b].total)
			if p >= threshold {
				merged, err := core.Union(bins[a], bins[b])
				if err != nil {
					return nil, fmt.Errorf("binning: merging bins: %w", err)
				}
				out = append(out, merged)
				i += 2
			} else {
				out = append(out, bins[a])
				i++
			}
		}

		switch {
		case len(out) > len(bins):
			return nil, ErrMergeDiverged
		case len(out) == len(bins):
			return bins, nil // converged: a full pass merged nothing
		default:
			bins = out
		}
	}

	return bins, nil
}

// collectStats computes each bin's event and total counts via the bin
// membership test over every row.
func collectStats(bins []core.Range, series frame.Series, y frame.Target) []binStats {
	stats := make([]binStats, len(bins))
	for row := 0; row < series.Len(); row++ {
		cell := series.Cell(row)
		for i, bin := range bins {
			if !CellInRange(cell, bin) {
				continue
			}
			stats[i].total++
			stats[i].events += y[row]
		}
	}

	return stats
}

// CellInRange is the bin membership test over a coerced cell: a numeric
// cell matches the interval (start, end]; any cell, numeric-looking or not,
// also matches by token membership. For a valid partition exactly one bin
// matches any in-domain cell.
func CellInRange(cell frame.Cell, bin core.Range) bool {
	if v, ok := cell.Float(); ok && bin.ContainsNumeric(v) {
		return true
	}

	return bin.HasToken(cell.Raw())
}
