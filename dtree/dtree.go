// Package dtree: tree growth, prediction and the flat node-array contract.

package dtree

import (
	"fmt"
	"math"
	"sort"
)

// Tree is a CART gini classifier over a single numeric column. Grow it with
// Fit, then walk the node arrays via Root, Left, Right, Threshold and
// IsLeaf, or classify with Predict.
type Tree struct {
	opts Options

	// Flat node storage: index is the node id. A leaf has
	// left[id] == right[id] == leafSentinel and a NaN threshold.
	left      []int
	right     []int
	threshold []float64
	pred      []int

	fitted bool
}

// New builds an unfitted Tree with the given hyperparameter overrides.
func New(opts ...Option) *Tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree{opts: o}
}

// growth is one pending node on the explicit growing stack.
type growth struct {
	node  int
	rows  []int
	depth int
}

// Fit grows the tree over aligned values and binary labels. Refitting
// replaces the previous tree wholesale.
//
// Errors:
//   - ErrBadOption for nonsensical hyperparameters.
//   - ErrNoData for zero rows.
//   - ErrLengthMismatch if xs and ys differ in length.
//   - ErrNonBinaryLabel for labels other than 0/1.
func (t *Tree) Fit(xs []float64, ys []int) error {
	if err := t.opts.validate(); err != nil {
		return err
	}
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("dtree: %d values vs %d labels: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	for i, y := range ys {
		if y != 0 && y != 1 {
			return fmt.Errorf("dtree: row %d holds label %d: %w", i, y, ErrNonBinaryLabel)
		}
	}

	t.left, t.right, t.threshold, t.pred = nil, nil, nil, nil
	t.fitted = false

	rows := make([]int, len(xs))
	for i := range rows {
		rows[i] = i
	}

	// Iterative growth over an explicit stack keeps deep trees off the
	// call stack.
	stack := []growth{{node: t.newNode(), rows: rows, depth: 0}}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		events := 0
		for _, r := range g.rows {
			events += ys[r]
		}
		t.pred[g.node] = majority(events, len(g.rows))

		if events == 0 || events == len(g.rows) ||
			g.depth >= t.opts.MaxDepth || len(g.rows) < t.opts.MinSamplesSplit {
			continue // leaf: sentinel children already in place
		}

		thr, ok := t.bestSplit(xs, ys, g.rows)
		if !ok {
			continue
		}

		var leftRows, rightRows []int
		for _, r := range g.rows {
			if xs[r] <= thr {
				leftRows = append(leftRows, r)
			} else {
				rightRows = append(rightRows, r)
			}
		}

		l, r := t.newNode(), t.newNode()
		t.left[g.node], t.right[g.node], t.threshold[g.node] = l, r, thr
		stack = append(stack,
			growth{node: r, rows: rightRows, depth: g.depth + 1},
			growth{node: l, rows: leftRows, depth: g.depth + 1},
		)
	}

	t.fitted = true

	return nil
}

// newNode appends a fresh leaf node and returns its id.
func (t *Tree) newNode() int {
	id := len(t.left)
	t.left = append(t.left, leafSentinel)
	t.right = append(t.right, leafSentinel)
	t.threshold = append(t.threshold, math.NaN())
	t.pred = append(t.pred, 0)

	return id
}

// bestSplit searches the gini-optimal threshold over the node's rows.
// Candidates are midpoints between consecutive distinct values; both sides
// must keep MinSamplesLeaf rows and the split must strictly reduce the
// weighted impurity. Returns ok=false when no admissible split exists.
func (t *Tree) bestSplit(xs []float64, ys []int, rows []int) (float64, bool) {
	sorted := make([]int, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return xs[sorted[i]] < xs[sorted[j]] })

	total := len(sorted)
	totalEvents := 0
	for _, r := range sorted {
		totalEvents += ys[r]
	}
	parent := gini(totalEvents, total)

	best, bestImpurity, found := 0.0, parent-1e-12, false
	leftEvents := 0
	for i := 1; i < total; i++ {
		leftEvents += ys[sorted[i-1]]
		if xs[sorted[i-1]] == xs[sorted[i]] {
			continue // not a boundary between distinct values
		}
		leftN, rightN := i, total-i
		if leftN < t.opts.MinSamplesLeaf || rightN < t.opts.MinSamplesLeaf {
			continue
		}
		weighted := (float64(leftN)*gini(leftEvents, leftN) +
			float64(rightN)*gini(totalEvents-leftEvents, rightN)) / float64(total)
		if weighted < bestImpurity {
			bestImpurity = weighted
			best = (xs[sorted[i-1]] + xs[sorted[i]]) / 2
			found = true
		}
	}

	return best, found
}

// gini computes the binary gini impurity of a node with the given event
// count out of n rows.
func gini(events, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(events) / float64(n)

	return 2 * p * (1 - p)
}

// majority returns the majority label; ties go to the non-event class.
func majority(events, n int) int {
	if 2*events > n {
		return 1
	}

	return 0
}

// Root returns the root node id (always 0 on a fitted tree).
func (t *Tree) Root() int { return 0 }

// NodeCount returns the number of nodes; 0 before Fit.
func (t *Tree) NodeCount() int { return len(t.left) }

// Left returns the left child id of node id; the leaf sentinel (-1) marks
// a missing child. The id must come from this tree's node range.
func (t *Tree) Left(id int) int { return t.left[id] }

// Right returns the right child id of node id; see Left.
func (t *Tree) Right(id int) int { return t.right[id] }

// Threshold returns node id's split threshold (x <= threshold goes left);
// NaN on leaves.
func (t *Tree) Threshold(id int) float64 { return t.threshold[id] }

// IsLeaf reports whether node id is a leaf: its child ids are equal.
func (t *Tree) IsLeaf(id int) bool { return t.left[id] == t.right[id] }

// Predict routes v down the tree and returns the majority label of the
// reached leaf.
//
// Errors:
//   - ErrNotFitted before Fit.
func (t *Tree) Predict(v float64) (int, error) {
	if !t.fitted {
		return 0, ErrNotFitted
	}

	id := t.Root()
	for !t.IsLeaf(id) {
		if v <= t.threshold[id] {
			id = t.left[id]
		} else {
			id = t.right[id]
		}
	}

	return t.pred[id], nil
}
