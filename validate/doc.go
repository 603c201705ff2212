// Package validate learns each feature's legal domain from training data
// and re-validates inference-bound data against it — the strict gatekeeper
// in front of binning and WoE transformation.
//
// What
//
//   - InferFeature: derives a Feature from an observed column. Cells that
//     coerce to numbers define the numeric domain, padded by the tolerance
//     on both sides so observed extremes stay inside the half-open bin
//     convention; cells that do not become the categorical token set.
//   - Validator: holds a per-column Feature map. Fit learns domains once
//     and never overwrites them (freeze-once semantics, so a domain learned
//     on the training snapshot survives repeated pipeline fits). Transform
//     checks new data and fails loudly on any numeric bound breach or
//     unseen token, returning a fresh frame restricted to the known columns
//     with numeric cells coerced.
//
// A Validator constructed with a pre-supplied feature map (a deserialized
// earlier fit) treats it as already frozen: Fit keeps it untouched.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrNotFitted    – Transform before any domain exists.
//	ErrEmptyColumn  – domain inference over a column with no rows.
//	ErrBelowDomain  – observed numeric minimum beyond the domain start.
//	ErrAboveDomain  – observed numeric maximum beyond the domain end.
//	ErrUnknownToken – an observed token outside the learned set.
package validate
