// Package woebin computes Weight-of-Evidence (WoE) and Information Value
// (IV) transformations for binary-classification feature engineering — the
// classic credit-scoring technique of replacing raw feature values with the
// log-odds of the target class observed inside each bin.
//
// 🚀 What is woebin?
//
//	A batch, value-semantics library that brings together:
//		• core     — immutable Range/Feature/spec values with a validated partition invariant
//		• frame    — a small column-oriented table of mixed numeric/string cells (+ CSV ingestion)
//		• dtree    — an array-backed CART gini classifier over a single numeric column
//		• proptest — a two-proportion pooled z-test (gonum normal CDF)
//		• binning  — pre-specified and decision-tree-derived binning strategies,
//		             with iterative statistical merging of indistinguishable bins
//		• validate — feature-domain learning and strict inference-time revalidation
//		• woe      — WoE/IV computation, the fit/transform state machine, pipeline glue
//
// ✨ Why choose woebin?
//
//   - Deterministic – no global state, no implicit randomness; specs are pure values
//   - Safe by construction – validating constructors never yield a half-valid spec
//   - Serializable – every fitted spec round-trips through JSON and YAML
//   - Composable – validator and transformer plug into a two-step fit/transform pipeline
//
// Typical flow:
//
//	raw data → validate (learn domains) → binning (tree thresholds, merge)
//	         → woe (per-bin statistics)  → transform (values become WoE floats)
//
// Dive into the per-package docs for algorithms, invariants, and error
// contracts.
//
//	go get github.com/credscope/woebin
package woebin
