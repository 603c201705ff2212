// Package validate: domain inference and the fit/transform validator.

package validate

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/frame"
)

// Sentinel errors for domain learning and revalidation.
var (
	// ErrNotFitted indicates Transform before any feature domain exists.
	ErrNotFitted = errors.New("validate: validator is not fitted")

	// ErrEmptyColumn indicates domain inference over a column with no rows.
	ErrEmptyColumn = errors.New("validate: column has no rows")

	// ErrBelowDomain indicates an observed numeric minimum beyond the
	// learned domain start.
	ErrBelowDomain = errors.New("validate: value below the feature domain")

	// ErrAboveDomain indicates an observed numeric maximum beyond the
	// learned domain end.
	ErrAboveDomain = errors.New("validate: value above the feature domain")

	// ErrUnknownToken indicates an observed categorical token outside the
	// learned set.
	ErrUnknownToken = errors.New("validate: unrecognised categorical token")
)

// InferFeature derives a Feature definition from an observed column.
// tolerance <= 0 falls back to core.NumericAccuracy. The numeric domain is
// [min - tolerance, max + tolerance]; a column with no numeric cell yields
// a purely categorical domain.
//
// Errors:
//   - ErrEmptyColumn for a zero-row column.
func InferFeature(series frame.Series, tolerance float64) (core.Feature, error) {
	if series.Len() == 0 {
		return core.Feature{}, fmt.Errorf("validate: column %q: %w", series.Name(), ErrEmptyColumn)
	}
	if tolerance <= 0 {
		tolerance = core.NumericAccuracy
	}

	numeric, tokens := splitColumn(series)

	var (
		rng core.Range
		err error
	)
	if len(numeric) > 0 {
		rng, err = core.NewRange(floats.Min(numeric)-tolerance, floats.Max(numeric)+tolerance, tokens...)
	} else {
		rng, err = core.NewCategoricalRange(tokens...)
	}
	if err != nil {
		return core.Feature{}, fmt.Errorf("validate: column %q: %w", series.Name(), err)
	}

	return core.NewFeature(series.Name(), rng)
}

// splitColumn separates a column into its coerced numeric values and its
// distinct categorical tokens (sorted for determinism).
func splitColumn(series frame.Series) (numeric []float64, tokens []string) {
	seen := make(map[string]struct{})
	for i := 0; i < series.Len(); i++ {
		cell := series.Cell(i)
		if v, ok := cell.Float(); ok {
			numeric = append(numeric, v)

			continue
		}
		if _, dup := seen[cell.Raw()]; !dup {
			seen[cell.Raw()] = struct{}{}
			tokens = append(tokens, cell.Raw())
		}
	}
	sort.Strings(tokens)

	return numeric, tokens
}

// Validator learns per-column feature domains once and revalidates new data
// against them.
type Validator struct {
	features  map[string]core.Feature
	tolerance float64
}

// ValidatorOption configures a Validator at construction.
type ValidatorOption func(*Validator)

// WithFeatures pre-supplies a frozen feature map (typically deserialized
// from an earlier fit); Fit will never overwrite it.
func WithFeatures(features map[string]core.Feature) ValidatorOption {
	return func(v *Validator) {
		v.features = make(map[string]core.Feature, len(features))
		for name, f := range features {
			v.features[name] = f
		}
	}
}

// WithTolerance overrides the numeric accuracy used by inference and
// revalidation.
func WithTolerance(tol float64) ValidatorOption {
	return func(v *Validator) { v.tolerance = tol }
}

// New builds a Validator. Without WithFeatures it starts unfitted and
// learns domains on the first Fit.
func New(opts ...ValidatorOption) *Validator {
	v := &Validator{tolerance: core.NumericAccuracy}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Fit learns a domain for every column of X — but only once: when domains
// already exist (from a prior Fit or WithFeatures) the call is a no-op, so
// a domain frozen on the training snapshot survives repeated pipeline fits.
func (v *Validator) Fit(X *frame.Frame) error {
	if len(v.features) > 0 {
		return nil
	}

	features := make(map[string]core.Feature, len(X.Columns()))
	for _, name := range X.Columns() {
		series, err := X.Column(name)
		if err != nil {
			return err
		}
		if features[name], err = InferFeature(series, v.tolerance); err != nil {
			return err
		}
	}
	v.features = features

	return nil
}

// Features returns a copy of the learned per-column feature map.
func (v *Validator) Features() map[string]core.Feature {
	out := make(map[string]core.Feature, len(v.features))
	for name, f := range v.features {
		out[name] = f
	}

	return out
}

// Transform validates X against the learned domains and returns a fresh
// frame restricted to the known columns, numeric cells coerced and
// categorical cells kept as their raw text.
//
// Errors:
//   - ErrNotFitted before any domain exists.
//   - frame.ErrUnknownColumn if a known column is absent from X.
//   - ErrBelowDomain / ErrAboveDomain on a numeric bound breach beyond the
//     tolerance.
//   - ErrUnknownToken on a token outside the learned set (reporting the
//     offending set).
func (v *Validator) Transform(X *frame.Frame) (*frame.Frame, error) {
	if len(v.features) == 0 {
		return nil, ErrNotFitted
	}

	columns := make([]frame.Series, 0, len(v.features))
	for _, name := range X.Columns() {
		feature, ok := v.features[name]
		if !ok {
			continue // unknown columns are dropped, not validated
		}
		series, err := X.Column(name)
		if err != nil {
			return nil, err
		}
		if err := v.checkSeries(feature, series); err != nil {
			return nil, err
		}
		columns = append(columns, copySeries(series))
	}

	// Every learned feature must be present in the incoming data.
	for name := range v.features {
		if _, err := X.Column(name); err != nil {
			return nil, err
		}
	}

	return frame.New(columns...)
}

// checkSeries validates one column against its learned domain.
func (v *Validator) checkSeries(feature core.Feature, series frame.Series) error {
	domain := feature.Range()

	numeric, tokens := splitColumn(series)

	if len(numeric) > 0 {
		if !domain.HasNumeric() {
			return fmt.Errorf("validate: feature %q observed numeric value in a categorical domain: %w",
				feature.Name(), ErrBelowDomain)
		}
		if domain.Start()-floats.Min(numeric) > v.tolerance {
			return fmt.Errorf("validate: feature %q minimum %v under domain start %v: %w",
				feature.Name(), floats.Min(numeric), domain.Start(), ErrBelowDomain)
		}
		if floats.Max(numeric)-domain.End() > v.tolerance {
			return fmt.Errorf("validate: feature %q maximum %v over domain end %v: %w",
				feature.Name(), floats.Max(numeric), domain.End(), ErrAboveDomain)
		}
	}

	var unknown []string
	for _, tok := range tokens {
		if !domain.HasToken(tok) {
			unknown = append(unknown, tok)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("validate: feature %q tokens %v: %w", feature.Name(), unknown, ErrUnknownToken)
	}

	return nil
}

// copySeries rebuilds a column cell by cell: numeric cells re-emitted as
// coerced numerics, categorical cells as their raw text.
func copySeries(series frame.Series) frame.Series {
	cells := make([]frame.Cell, series.Len())
	for i := 0; i < series.Len(); i++ {
		cell := series.Cell(i)
		if v, ok := cell.Float(); ok {
			cells[i] = frame.NumericCell(v)
		} else {
			cells[i] = frame.ParseCell(cell.Raw())
		}
	}

	return frame.NewSeriesFromCells(series.Name(), cells)
}
