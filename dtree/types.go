// Package dtree: sentinel errors, hyperparameter defaults and functional
// options.

package dtree

import "errors"

// Hyperparameter defaults, tuned for binning: shallow trees with large
// leaves yield few, well-populated candidate bins.
const (
	// DefaultMaxDepth bounds the split depth of a grown tree.
	DefaultMaxDepth = 4

	// DefaultMinSamplesLeaf is the minimum number of rows each side of an
	// accepted split must keep.
	DefaultMinSamplesLeaf = 1000

	// DefaultMinSamplesSplit is the minimum number of rows a node needs
	// before a split is attempted.
	DefaultMinSamplesSplit = 2

	// leafSentinel marks the child ids of a leaf node.
	leafSentinel = -1
)

// Sentinel errors returned by the classifier.
var (
	// ErrNoData indicates Fit was called with zero rows.
	ErrNoData = errors.New("dtree: no training rows")

	// ErrLengthMismatch indicates values and labels of different length.
	ErrLengthMismatch = errors.New("dtree: values and labels differ in length")

	// ErrNonBinaryLabel indicates a training label other than 0 or 1.
	ErrNonBinaryLabel = errors.New("dtree: labels must be 0 or 1")

	// ErrBadOption indicates a nonsensical hyperparameter value.
	ErrBadOption = errors.New("dtree: invalid hyperparameter")

	// ErrNotFitted indicates node access or prediction before Fit.
	ErrNotFitted = errors.New("dtree: tree is not fitted")
)

// Options holds the tree hyperparameters. Zero values mean "use default";
// construct through New and the With... setters rather than by hand.
type Options struct {
	// MaxDepth bounds the split depth; the root sits at depth 0.
	MaxDepth int

	// MinSamplesLeaf is the minimum number of rows each child of an
	// accepted split must keep.
	MinSamplesLeaf int

	// MinSamplesSplit is the minimum number of rows a node needs before a
	// split is attempted.
	MinSamplesSplit int
}

// Option mutates Options before growing starts.
type Option func(*Options)

// WithMaxDepth bounds the split depth (must be >= 1).
func WithMaxDepth(d int) Option { return func(o *Options) { o.MaxDepth = d } }

// WithMinSamplesLeaf sets the minimum rows per leaf (must be >= 1).
func WithMinSamplesLeaf(n int) Option { return func(o *Options) { o.MinSamplesLeaf = n } }

// WithMinSamplesSplit sets the minimum rows needed to attempt a split
// (must be >= 2).
func WithMinSamplesSplit(n int) Option { return func(o *Options) { o.MinSamplesSplit = n } }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		MaxDepth:        DefaultMaxDepth,
		MinSamplesLeaf:  DefaultMinSamplesLeaf,
		MinSamplesSplit: DefaultMinSamplesSplit,
	}
}

// validate rejects nonsensical hyperparameters with ErrBadOption.
func (o Options) validate() error {
	if o.MaxDepth < 1 || o.MinSamplesLeaf < 1 || o.MinSamplesSplit < 2 {
		return ErrBadOption
	}

	return nil
}
