// Package core defines the immutable value types of the WoE/IV model —
// Range, Feature, BinningSpec, WoEBin, WoESpec — together with the
// partition-invariant checker and invariant-preserving range arithmetic.
//
// What
//
//   - Range: a contiguous half-open numeric interval (start, end] and/or a
//     set of categorical tokens. A Range is either purely categorical or
//     carries a numeric component, optionally combined with tokens.
//   - Feature: a named column plus the full domain (as a Range) its values
//     are allowed to take.
//   - BinningSpec: a Feature plus a set of Ranges ("bins") that partition
//     its domain exactly once.
//   - WoEBin / WoESpec: a bin plus its fitted statistics (event and
//     non-event counts, WoE, IV), aggregated per feature.
//
// Partition invariant
//
//	The union of all bin numeric intervals covers the feature's numeric
//	domain with no gap or overlap larger than a tolerance, and the union of
//	all bin token sets equals the feature's token set with no token claimed
//	by two bins. CheckRanges enforces this; BinningSpec and WoESpec
//	constructors run it and never return a violating value.
//
// Immutability
//
//	All five types are frozen at construction: fields are unexported,
//	accessors copy, and a "new" spec is always a fresh value, never an
//	in-place edit. Equality is structural (Equal), and Key provides a
//	deterministic identity string for set semantics.
//
// Serialization
//
//	Every type round-trips through JSON and YAML with structural equality;
//	decoding re-runs the validating constructors, so a corrupted document
//	can never materialize an invalid spec.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrInvertedRange   – numeric range ends before it starts.
//	ErrHalfOpenBounds  – exactly one numeric bound supplied.
//	ErrInfiniteBound   – a bound is NaN or reaches the Infinity sentinel.
//	ErrEmptyRange      – neither a numeric part nor any token.
//	ErrEmptyFeatureName– feature name is the empty string.
//	ErrNegativeCount   – a WoEBin count is negative.
//	ErrCoverageMin     – bins start short of / beyond the domain start.
//	ErrCoverageMax     – bins end short of / beyond the domain end.
//	ErrMissingTokens   – domain tokens absent from every bin.
//	ErrDuplicateTokens – a token claimed by two or more bins.
//	ErrDisjointRanges  – numeric bins leave a gap or overlap.
package core
