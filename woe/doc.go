// Package woe computes Weight-of-Evidence and Information Value statistics
// over fitted bins and applies them to data: the final stage of the
// raw-data → validated → binned → WoE pipeline.
//
// What
//
//   - Per bin: event and non-event counts via the membership test, class
//     shares smoothed by the numeric accuracy epsilon (so an absent class
//     never divides by zero), woe = ln(eventPct / (nonEventPct + eps)) and
//     iv = (eventPct - nonEventPct) · woe.
//   - Transformer: the Unfit → Fitted state machine. Construct it from
//     either a Binner strategy or a pre-supplied WoESpec map (exactly one);
//     Fit learns (or accepts) the specs, Transform replaces every raw value
//     with its bin's WoE float. Fitted is terminal — specs are immutable
//     once learned.
//   - Pipeline: validator → transformer glue for the common
//     infer-everything path.
//
// Strictness
//
//	Transform fails with ErrValueOutOfBins when a value matches no bin
//	instead of passing it through: a raw string inside a column of WoE
//	floats would silently poison any downstream model. Data that cleared
//	the validator never trips this.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrNoSource       – Transformer built with neither binner nor spec.
//	ErrTwoSources     – Transformer built with both.
//	ErrNotFitted      – Transform or Spec before Fit.
//	ErrValueOutOfBins – a transform-time value matching no bin.
package woe
