// Package dtree implements an array-backed CART decision-tree classifier
// over a single numeric column with a binary target — the split-threshold
// supplier for tree-derived binning.
//
// What
//
//   - Tree: a gini-criterion binary classifier grown over (value, label)
//     pairs, stored in flat node arrays: per node id, a left child id, a
//     right child id, and a split threshold. A node is a leaf exactly when
//     its left child id equals its right child id (the -1 sentinel).
//   - Fit: grows the tree with an explicit stack (no recursion, so depth
//     is bounded by the options, not the goroutine stack).
//   - Predict: routes a value down the tree (x <= threshold goes left) and
//     returns the majority label of the reached leaf.
//
// The flat layout is the public contract: consumers walk the node arrays
// via Root/Left/Right/Threshold/IsLeaf to harvest split thresholds without
// knowing anything about how the tree was grown.
//
// Options (functional, with package-constant defaults):
//
//	WithMaxDepth        – maximum split depth (default 4).
//	WithMinSamplesLeaf  – minimum rows each side of a split keeps (default 1000).
//	WithMinSamplesSplit – minimum rows a node needs to attempt a split (default 2).
//
// Complexity: Fit sorts each node's rows once, so growing costs
// O(n·log n · depth) time and O(n) auxiliary space.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrNoData         – Fit called with no rows.
//	ErrLengthMismatch – values and labels differ in length.
//	ErrNonBinaryLabel – a label other than 0 or 1.
//	ErrBadOption      – a nonsensical hyperparameter value.
//	ErrNotFitted      – Predict or node access before Fit.
package dtree
