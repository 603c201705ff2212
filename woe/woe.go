// Package woe: WoE/IV computation and the fit/transform state machine.

package woe

import (
	"errors"
	"fmt"
	"math"

	"github.com/credscope/woebin/binning"
	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/frame"
)

// Sentinel errors for the transformer.
var (
	// ErrNoSource indicates a Transformer built with neither a binner nor a
	// pre-supplied spec.
	ErrNoSource = errors.New("woe: either a binner or a WoE spec is required")

	// ErrTwoSources indicates a Transformer built with both a binner and a
	// pre-supplied spec.
	ErrTwoSources = errors.New("woe: a binner and a WoE spec are mutually exclusive")

	// ErrNotFitted indicates Transform or Spec before Fit.
	ErrNotFitted = errors.New("woe: transformer is not fitted")

	// ErrValueOutOfBins indicates a transform-time value matching no bin.
	ErrValueOutOfBins = errors.New("woe: value matches no bin")
)

// computeWoE returns the epsilon-smoothed Weight-of-Evidence of a bin.
// The epsilon keeps every denominator positive, so a degenerate class is
// never NaN: a bin with no events tends to negative infinity, one with no
// non-events to a large positive value.
func computeWoE(allEvents, allNonEvents, binEvents, binNonEvents int) float64 {
	eventPct := float64(binEvents) / (float64(allEvents) + core.NumericAccuracy)
	nonEventPct := float64(binNonEvents) / (float64(allNonEvents) + core.NumericAccuracy)

	return math.Log(eventPct / (nonEventPct + core.NumericAccuracy))
}

// computeIV returns the bin's Information Value contribution.
func computeIV(allEvents, allNonEvents, binEvents, binNonEvents int) float64 {
	eventPct := float64(binEvents) / (float64(allEvents) + core.NumericAccuracy)
	nonEventPct := float64(binNonEvents) / (float64(allNonEvents) + core.NumericAccuracy)

	return (eventPct - nonEventPct) * computeWoE(allEvents, allNonEvents, binEvents, binNonEvents)
}

// Transformer replaces raw feature values with their bin's WoE value.
// State machine: Unfit → (Fit) → Fitted; there is no way back — a fitted
// spec is immutable.
type Transformer struct {
	binner binning.Binner
	spec   map[string]core.WoESpec
}

// TransformerOption configures a Transformer at construction.
type TransformerOption func(*Transformer)

// WithBinner makes Fit learn the WoE specs through the given strategy.
func WithBinner(b binning.Binner) TransformerOption {
	return func(t *Transformer) { t.binner = b }
}

// WithSpec pre-supplies fitted WoE specs (typically deserialized); the
// Transformer starts Fitted and Fit is a no-op.
func WithSpec(spec map[string]core.WoESpec) TransformerOption {
	return func(t *Transformer) {
		t.spec = make(map[string]core.WoESpec, len(spec))
		for name, s := range spec {
			t.spec[name] = s
		}
	}
}

// NewTransformer builds a Transformer from exactly one source: a binner to
// learn from, or a pre-supplied spec to apply as-is.
//
// Errors:
//   - ErrNoSource / ErrTwoSources on a missing or ambiguous source.
func NewTransformer(opts ...TransformerOption) (*Transformer, error) {
	t := &Transformer{}
	for _, opt := range opts {
		opt(t)
	}
	if t.binner == nil && t.spec == nil {
		return nil, ErrNoSource
	}
	if t.binner != nil && t.spec != nil {
		return nil, ErrTwoSources
	}

	return t, nil
}

// Fit learns the per-feature WoE specs: the binner derives BinningSpecs,
// then every bin's event/non-event counts over (X, y) yield its WoE and IV.
// A Transformer holding a pre-supplied spec ignores Fit entirely.
//
// Errors:
//   - frame.ErrLengthMismatch if X and y disagree on row count;
//   - anything the binner's Fit/Spec returns;
//   - partition violations from WoESpec construction.
func (t *Transformer) Fit(X *frame.Frame, y frame.Target) error {
	if t.spec != nil {
		return nil // already fitted (pre-supplied or prior Fit)
	}
	if X.Rows() != len(y) {
		return fmt.Errorf("woe: %d rows vs %d targets: %w", X.Rows(), len(y), frame.ErrLengthMismatch)
	}

	if err := t.binner.Fit(X, y); err != nil {
		return err
	}
	binSpecs, err := t.binner.Spec()
	if err != nil {
		return err
	}

	allEvents, allNonEvents := y.Counts()

	spec := make(map[string]core.WoESpec, len(binSpecs))
	for name, binSpec := range binSpecs {
		series, err := X.Column(name)
		if err != nil {
			return err
		}

		bins := binSpec.Bins()
		woeBins := make([]core.WoEBin, len(bins))
		for i, bin := range bins {
			events, nonEvents := countBin(bin, series, y)
			woeBins[i], err = core.NewWoEBin(
				bin,
				events,
				nonEvents,
				computeWoE(allEvents, allNonEvents, events, nonEvents),
				computeIV(allEvents, allNonEvents, events, nonEvents),
			)
			if err != nil {
				return fmt.Errorf("woe: feature %q: %w", name, err)
			}
		}

		if spec[name], err = core.NewWoESpec(binSpec.Feature(), woeBins, core.NumericAccuracy); err != nil {
			return fmt.Errorf("woe: feature %q: %w", name, err)
		}
	}

	t.spec = spec

	return nil
}

// countBin tallies the events and non-events falling inside one bin.
func countBin(bin core.Range, series frame.Series, y frame.Target) (events, nonEvents int) {
	for row := 0; row < series.Len(); row++ {
		if !binning.CellInRange(series.Cell(row), bin) {
			continue
		}
		if y[row] == 1 {
			events++
		} else {
			nonEvents++
		}
	}

	return events, nonEvents
}

// Transform maps every value of every fitted feature column to its bin's
// WoE float, returning a fresh frame restricted to the fitted features in
// X's column order.
//
// Errors:
//   - ErrNotFitted before Fit;
//   - frame.ErrUnknownColumn if a fitted feature is absent from X;
//   - ErrValueOutOfBins for a value matching no bin.
func (t *Transformer) Transform(X *frame.Frame) (*frame.Frame, error) {
	if t.spec == nil {
		return nil, ErrNotFitted
	}

	columns := make([]frame.Series, 0, len(t.spec))
	for _, name := range X.Columns() {
		spec, ok := t.spec[name]
		if !ok {
			continue // not a fitted feature; dropped from the output
		}
		series, err := X.Column(name)
		if err != nil {
			return nil, err
		}
		transformed, err := transformSeries(spec, series)
		if err != nil {
			return nil, err
		}
		columns = append(columns, transformed)
	}

	// Every fitted feature must be present in the incoming data.
	for name := range t.spec {
		if _, err := X.Column(name); err != nil {
			return nil, err
		}
	}

	return frame.New(columns...)
}

// transformSeries maps one column through its WoESpec.
func transformSeries(spec core.WoESpec, series frame.Series) (frame.Series, error) {
	bins := spec.Bins()
	cells := make([]frame.Cell, series.Len())

rows:
	for row := 0; row < series.Len(); row++ {
		cell := series.Cell(row)
		for _, woeBin := range bins {
			if binning.CellInRange(cell, woeBin.Bin()) {
				cells[row] = frame.NumericCell(woeBin.WoE())

				continue rows
			}
		}

		return frame.Series{}, fmt.Errorf("woe: feature %q row %d value %q: %w",
			spec.Feature().Name(), row, cell.Raw(), ErrValueOutOfBins)
	}

	return frame.NewSeriesFromCells(series.Name(), cells), nil
}

// Spec returns a copy of the fitted per-feature WoE specs.
//
// Errors:
//   - ErrNotFitted before Fit.
func (t *Transformer) Spec() (map[string]core.WoESpec, error) {
	if t.spec == nil {
		return nil, ErrNotFitted
	}
	out := make(map[string]core.WoESpec, len(t.spec))
	for name, s := range t.spec {
		out[name] = s
	}

	return out, nil
}
