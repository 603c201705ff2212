// Package binning: the Binner interface, sentinel errors, defaults and
// functional options.

package binning

import (
	"errors"

	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/dtree"
	"github.com/credscope/woebin/frame"
	"github.com/credscope/woebin/proptest"
)

// DefaultPValueThreshold is the significance level below which two bins'
// event rates are deemed distinguishable and the bins stay separate.
const DefaultPValueThreshold = 0.05

// Sentinel errors for binning strategies.
var (
	// ErrNotFitted indicates Spec was requested before Fit.
	ErrNotFitted = errors.New("binning: binner is not fitted")

	// ErrNoSpec indicates a PreSpecified binner built with an empty spec.
	ErrNoSpec = errors.New("binning: pre-specified spec is empty")

	// ErrNoFeatures indicates a TreeBinner built with no feature definitions.
	ErrNoFeatures = errors.New("binning: no feature definitions")

	// ErrMissingFeature indicates a data column without a feature definition.
	ErrMissingFeature = errors.New("binning: column has no feature definition")

	// ErrNilTest indicates a nil injected proportion test.
	ErrNilTest = errors.New("binning: proportion test is nil")

	// ErrBadThreshold indicates a p-value threshold outside (0, 1).
	ErrBadThreshold = errors.New("binning: p-value threshold must be in (0, 1)")

	// ErrMergeDiverged indicates a merge pass that increased the bin count.
	// Unreachable by construction; treat an occurrence as a defect.
	ErrMergeDiverged = errors.New("binning: merge pass increased the bin count")
)

// Binner is the strategy capability: learn a BinningSpec per feature from
// data, then hand the specs out. Implementations are single-shot values —
// fit once, read many.
type Binner interface {
	// Fit computes the bins from the raw data and target.
	Fit(X *frame.Frame, y frame.Target) error

	// Spec returns the per-feature binning specs.
	// Returns ErrNotFitted when Fit has not completed.
	Spec() (map[string]core.BinningSpec, error)
}

// Options configures the tree-derived strategy. Construct through
// NewTreeBinner and the With... setters; zero fields take the documented
// defaults.
type Options struct {
	// PValueThreshold is the significance level for the merge test.
	PValueThreshold float64

	// Tolerance is the numeric accuracy for partition checks.
	Tolerance float64

	// Test is the injected two-proportion test.
	Test proptest.Func

	// Tree carries hyperparameter overrides for the per-feature split trees.
	Tree []dtree.Option
}

// Option mutates Options before fitting starts.
type Option func(*Options)

// WithPValueThreshold overrides the merge significance level.
func WithPValueThreshold(p float64) Option { return func(o *Options) { o.PValueThreshold = p } }

// WithTolerance overrides the numeric accuracy for partition checks.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithTest injects a two-proportion test implementation.
func WithTest(f proptest.Func) Option { return func(o *Options) { o.Test = f } }

// WithTreeOptions forwards hyperparameters to the per-feature split trees.
func WithTreeOptions(opts ...dtree.Option) Option {
	return func(o *Options) { o.Tree = append(o.Tree, opts...) }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		PValueThreshold: DefaultPValueThreshold,
		Tolerance:       core.NumericAccuracy,
		Test:            proptest.TwoProportionZ,
	}
}

// validate rejects nonsensical configuration.
func (o Options) validate() error {
	if o.Test == nil {
		return ErrNilTest
	}
	if o.PValueThreshold <= 0 || o.PValueThreshold >= 1 {
		return ErrBadThreshold
	}

	return nil
}
