// Package binning: the tree-derived strategy — per feature, fit a shallow
// classifier over the numeric cells, harvest its split thresholds into an
// initial fine partition, then statistically merge.

package binning

import (
	"fmt"
	"sort"

	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/dtree"
	"github.com/credscope/woebin/frame"
)

// TreeBinner learns a BinningSpec per feature from decision-tree split
// structure refined by statistical merging.
type TreeBinner struct {
	features map[string]core.Feature
	opts     Options
	spec     map[string]core.BinningSpec
}

// NewTreeBinner builds the strategy over the features it may bin. Columns
// fitted later must each have a definition here; extra definitions are
// ignored.
//
// Errors:
//   - ErrNoFeatures if no definition is supplied.
//   - ErrNilTest / ErrBadThreshold for nonsensical options.
func NewTreeBinner(features map[string]core.Feature, opts ...Option) (*TreeBinner, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	copied := make(map[string]core.Feature, len(features))
	for name, f := range features {
		copied[name] = f
	}

	return &TreeBinner{features: copied, opts: o}, nil
}

// Fit learns a spec for every column of X. Each feature is independent:
// rows with numeric cells train that feature's tree, the harvested
// thresholds become the initial numeric bins, every domain token becomes a
// singleton categorical bin, and the merge loop coalesces statistical
// look-alikes. A column with no numeric cells skips the tree and starts
// from the categorical singletons alone.
//
// Errors:
//   - frame.ErrLengthMismatch if X and y disagree on row count.
//   - ErrMissingFeature for a column without a definition.
//   - dtree fitting errors, partition violations, ErrMergeDiverged.
func (b *TreeBinner) Fit(X *frame.Frame, y frame.Target) error {
	if X.Rows() != len(y) {
		return fmt.Errorf("binning: %d rows vs %d targets: %w", X.Rows(), len(y), frame.ErrLengthMismatch)
	}

	spec := make(map[string]core.BinningSpec, len(b.features))
	for _, name := range X.Columns() {
		feature, ok := b.features[name]
		if !ok {
			return fmt.Errorf("binning: column %q: %w", name, ErrMissingFeature)
		}
		series, err := X.Column(name)
		if err != nil {
			return err
		}

		bins, err := b.initialBins(feature, series, y)
		if err != nil {
			return fmt.Errorf("binning: feature %q: %w", name, err)
		}
		merged, err := mergeBins(bins, series, y, b.opts.Test, b.opts.PValueThreshold)
		if err != nil {
			return fmt.Errorf("binning: feature %q: %w", name, err)
		}
		if spec[name], err = core.NewBinningSpec(feature, merged, b.opts.Tolerance); err != nil {
			return fmt.Errorf("binning: feature %q: %w", name, err)
		}
	}

	b.spec = spec

	return nil
}

// Spec returns a copy of the learned per-feature specs.
//
// Errors:
//   - ErrNotFitted before a successful Fit.
func (b *TreeBinner) Spec() (map[string]core.BinningSpec, error) {
	if b.spec == nil {
		return nil, ErrNotFitted
	}
	out := make(map[string]core.BinningSpec, len(b.spec))
	for name, s := range b.spec {
		out[name] = s
	}

	return out, nil
}

// initialBins builds the pre-merge partition for one feature: tree-derived
// numeric bins over the domain plus one singleton categorical bin per
// domain token.
func (b *TreeBinner) initialBins(feature core.Feature, series frame.Series, y frame.Target) ([]core.Range, error) {
	var bins []core.Range

	if feature.Range().HasNumeric() {
		xs, ys := numericRows(series, y)
		thresholds := []float64{feature.Range().Start(), feature.Range().End()}
		if len(xs) > 0 {
			tree := dtree.New(b.opts.Tree...)
			if err := tree.Fit(xs, ys); err != nil {
				return nil, err
			}
			thresholds = append(thresholds, harvestThresholds(tree)...)
		}
		numeric, err := binsFromThresholds(thresholds)
		if err != nil {
			return nil, err
		}
		bins = append(bins, numeric...)
	}

	for _, tok := range feature.Range().Tokens() {
		cat, err := core.NewCategoricalRange(tok)
		if err != nil {
			return nil, err
		}
		bins = append(bins, cat)
	}

	return bins, nil
}

// numericRows extracts the rows whose cell coerced to a number, with their
// aligned targets.
func numericRows(series frame.Series, y frame.Target) (xs []float64, ys []int) {
	for i := 0; i < series.Len(); i++ {
		if v, ok := series.Cell(i).Float(); ok {
			xs = append(xs, v)
			ys = append(ys, y[i])
		}
	}

	return xs, ys
}

// harvestThresholds walks the fitted tree from the root with an explicit
// stack and records the split threshold of every internal node that has at
// least one leaf child.
func harvestThresholds(tree *dtree.Tree) []float64 {
	var out []float64
	stack := []int{tree.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tree.IsLeaf(id) {
			continue
		}
		left, right := tree.Left(id), tree.Right(id)
		stack = append(stack, right, left)
		if tree.IsLeaf(left) || tree.IsLeaf(right) {
			out = append(out, tree.Threshold(id))
		}
	}

	return out
}

// binsFromThresholds deduplicates and sorts the thresholds, then builds one
// numeric Range per consecutive pair.
func binsFromThresholds(thresholds []float64) ([]core.Range, error) {
	set := make(map[float64]struct{}, len(thresholds))
	for _, t := range thresholds {
		set[t] = struct{}{}
	}
	sorted := make([]float64, 0, len(set))
	for t := range set {
		sorted = append(sorted, t)
	}
	sort.Float64s(sorted)

	bins := make([]core.Range, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		bin, err := core.NewRange(sorted[i-1], sorted[i])
		if err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}

	return bins, nil
}
