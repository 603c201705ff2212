// Package binning derives per-feature BinningSpecs: the Binner strategy
// interface, a pre-specified implementation, and a decision-tree-derived
// implementation refined by iterative statistical merging.
//
// What
//
//   - Binner: the single capability shared by all strategies — learn bins
//     from data (Fit), hand them out (Spec).
//   - PreSpecified: no learning; serves a spec supplied at construction
//     (the reload-a-persisted-spec path).
//   - TreeBinner: per feature, grows a dtree over the numeric cells,
//     harvests split thresholds into an initial fine partition (one
//     numeric bin per consecutive threshold pair, one singleton
//     categorical bin per domain token), then statistically merges
//     adjacent bins whose event rates are indistinguishable.
//
// Threshold harvest
//
//	The tree is walked root-down with an explicit stack; every internal
//	node with at least one leaf child contributes its split threshold.
//	Thresholds join the domain's start and end, are deduplicated and
//	sorted; traversal order cannot affect the result since the set is
//	formed before sorting.
//
// Statistical merge
//
//	Each pass computes every bin's membership, event count and event rate
//	over the full dataset, sorts bins by ascending rate (the merge
//	candidacy order — deliberately not the spatial order), and scans
//	pairwise: a p-value at or above the threshold merges the pair into the
//	union range; below it, the lower bin is kept and the scan moves on by
//	one. A final unpaired bin is kept as-is. Passes repeat until the bin
//	count stops shrinking; a growing count is an internal defect
//	(ErrMergeDiverged), not a data error. The merged set re-enters
//	BinningSpec construction, so the partition invariant is re-proven
//	after every merge.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrNotFitted      – Spec before Fit on a learning strategy.
//	ErrNoSpec         – PreSpecified constructed with an empty spec.
//	ErrNoFeatures     – TreeBinner constructed with no feature definitions.
//	ErrMissingFeature – a data column without a feature definition.
//	ErrNilTest        – the injected proportion test is nil.
//	ErrBadThreshold   – a p-value threshold outside (0, 1).
//	ErrMergeDiverged  – a merge pass increased the bin count (defect).
package binning
