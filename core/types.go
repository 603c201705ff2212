// Package core: value types and their validating constructors.
// This file declares the numeric policy constants, the sentinel errors
// shared across the package, and the Range and Feature values.

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Numeric policy.
const (
	// Infinity is the sentinel magnitude no numeric bound may reach.
	// Bounds are finite by contract; "unbounded" is expressed by a wide
	// domain, never by an infinite one.
	Infinity = 1e20

	// NumericAccuracy is the default tolerance: two floats closer than this
	// are deemed equal by every coverage and contiguity check.
	NumericAccuracy = 1e-6
)

// Sentinel errors for value construction and the partition invariant.
var (
	// ErrInvertedRange indicates a numeric range that ends before it starts.
	ErrInvertedRange = errors.New("core: numeric range ends before it starts")

	// ErrHalfOpenBounds indicates that exactly one numeric bound was supplied;
	// a Range carries either both bounds or neither.
	ErrHalfOpenBounds = errors.New("core: numeric bounds must both be present or both absent")

	// ErrInfiniteBound indicates a bound that is NaN or whose magnitude
	// reaches the Infinity sentinel.
	ErrInfiniteBound = errors.New("core: numeric bound is not finite")

	// ErrEmptyRange indicates a Range with neither a numeric part nor any
	// categorical token.
	ErrEmptyRange = errors.New("core: range has no numeric part and no tokens")

	// ErrEmptyFeatureName indicates a Feature with an empty name.
	ErrEmptyFeatureName = errors.New("core: feature name is empty")

	// ErrNegativeCount indicates a WoEBin constructed with a negative event
	// or non-event count.
	ErrNegativeCount = errors.New("core: bin count is negative")

	// ErrCoverageMin indicates the smallest bin start does not meet the
	// feature's domain start within tolerance.
	ErrCoverageMin = errors.New("core: bins do not cover the domain start")

	// ErrCoverageMax indicates the largest bin end does not meet the
	// feature's domain end within tolerance.
	ErrCoverageMax = errors.New("core: bins do not cover the domain end")

	// ErrMissingTokens indicates domain tokens absent from every bin.
	ErrMissingTokens = errors.New("core: categorical tokens missing from bins")

	// ErrDuplicateTokens indicates a token claimed by two or more bins.
	ErrDuplicateTokens = errors.New("core: categorical token appears in multiple bins")

	// ErrDisjointRanges indicates numeric bins that leave a gap or overlap.
	ErrDisjointRanges = errors.New("core: numeric bins contain a gap or overlap")
)

// Range is a contiguous half-open numeric interval (start, end] and/or a
// set of categorical tokens. The numeric part is assumed contiguous: there
// are no disconnected numeric pieces inside one Range.
//
// Range is immutable after construction; copy freely by value.
type Range struct {
	start   float64
	end     float64
	numeric bool
	tokens  map[string]struct{}
}

// NewRange builds a Range with a numeric interval (start, end] and optional
// categorical tokens.
//
// Errors:
//   - ErrInfiniteBound if a bound is NaN or |bound| >= Infinity.
//   - ErrInvertedRange if start > end.
func NewRange(start, end float64, tokens ...string) (Range, error) {
	if math.IsNaN(start) || math.IsNaN(end) ||
		math.Abs(start) >= Infinity || math.Abs(end) >= Infinity {
		return Range{}, fmt.Errorf("core: bounds [%v, %v]: %w", start, end, ErrInfiniteBound)
	}
	if start > end {
		return Range{}, fmt.Errorf("core: start %v > end %v: %w", start, end, ErrInvertedRange)
	}

	return Range{start: start, end: end, numeric: true, tokens: tokenSet(tokens)}, nil
}

// NewCategoricalRange builds a Range with no numeric part, matching values
// by token membership only.
//
// Errors:
//   - ErrEmptyRange if no token is supplied (the range would match nothing).
func NewCategoricalRange(tokens ...string) (Range, error) {
	if len(tokens) == 0 {
		return Range{}, ErrEmptyRange
	}

	return Range{tokens: tokenSet(tokens)}, nil
}

// tokenSet copies tokens into a fresh set, deduplicating on the way.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}

	return set
}

// HasNumeric reports whether the Range carries a numeric interval.
func (r Range) HasNumeric() bool { return r.numeric }

// Start returns the numeric interval start; meaningful only when
// HasNumeric reports true.
func (r Range) Start() float64 { return r.start }

// End returns the numeric interval end; meaningful only when HasNumeric
// reports true.
func (r Range) End() float64 { return r.end }

// Tokens returns the categorical tokens in sorted order. The slice is a
// copy; mutating it does not affect the Range.
func (r Range) Tokens() []string {
	out := make([]string, 0, len(r.tokens))
	for tok := range r.tokens {
		out = append(out, tok)
	}
	sort.Strings(out)

	return out
}

// HasToken reports whether tok is one of the Range's categorical tokens.
func (r Range) HasToken(tok string) bool {
	_, ok := r.tokens[tok]

	return ok
}

// ContainsNumeric reports whether the already-coerced value v falls inside
// the numeric interval. The interval is right-closed, left-open:
// start < v <= end, so a value tied with a boundary belongs to the lower bin.
func (r Range) ContainsNumeric(v float64) bool {
	return r.numeric && v > r.start && v <= r.end
}

// Contains reports whether the raw value belongs to the Range: a value that
// coerces to a number matches the numeric interval (start, end]; any value,
// numeric-looking or not, also matches by token membership.
func (r Range) Contains(raw string) bool {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && r.ContainsNumeric(v) {
		return true
	}

	return r.HasToken(raw)
}

// Equal reports structural equality: identical numeric presence and bounds,
// identical token sets. Two equal Ranges are interchangeable everywhere.
func (r Range) Equal(other Range) bool {
	if r.numeric != other.numeric || len(r.tokens) != len(other.tokens) {
		return false
	}
	if r.numeric && (r.start != other.start || r.end != other.end) {
		return false
	}
	for tok := range r.tokens {
		if _, ok := other.tokens[tok]; !ok {
			return false
		}
	}

	return true
}

// Key returns a deterministic identity string: equal Ranges produce equal
// keys, so Key serves as a hash for set semantics and stable ordering.
func (r Range) Key() string {
	var b strings.Builder
	if r.numeric {
		fmt.Fprintf(&b, "n[%s,%s]",
			strconv.FormatFloat(r.start, 'g', -1, 64),
			strconv.FormatFloat(r.end, 'g', -1, 64))
	}
	if len(r.tokens) > 0 {
		b.WriteString("c{")
		b.WriteString(strings.Join(r.Tokens(), "\x1f"))
		b.WriteString("}")
	}

	return b.String()
}

// Union merges two Ranges into one spanning both: the numeric interval is
// the envelope (min start, max end) of whichever operands carry one, and the
// token set is the union. Over non-overlapping adjacent pieces this is the
// invariant-preserving merge used by bin coalescing.
//
// Errors:
//   - ErrEmptyRange if neither operand has a numeric part and the token
//     union is empty (cannot happen for well-formed operands).
func Union(a, b Range) (Range, error) {
	tokens := make([]string, 0, len(a.tokens)+len(b.tokens))
	tokens = append(tokens, a.Tokens()...)
	tokens = append(tokens, b.Tokens()...)

	switch {
	case a.numeric && b.numeric:
		return NewRange(math.Min(a.start, b.start), math.Max(a.end, b.end), tokens...)
	case a.numeric:
		return NewRange(a.start, a.end, tokens...)
	case b.numeric:
		return NewRange(b.start, b.end, tokens...)
	default:
		return NewCategoricalRange(tokens...)
	}
}

// Feature is a named column plus the full domain its values may take.
// Immutable; identity is by value.
type Feature struct {
	name string
	rng  Range
}

// NewFeature builds a Feature from a non-empty name and its domain Range.
//
// Errors:
//   - ErrEmptyFeatureName if name is empty.
func NewFeature(name string, rng Range) (Feature, error) {
	if name == "" {
		return Feature{}, ErrEmptyFeatureName
	}

	return Feature{name: name, rng: rng}, nil
}

// Name returns the feature's column name.
func (f Feature) Name() string { return f.name }

// Range returns the feature's full legal domain.
func (f Feature) Range() Range { return f.rng }

// Equal reports structural equality of name and domain.
func (f Feature) Equal(other Feature) bool {
	return f.name == other.name && f.rng.Equal(other.rng)
}

// sortRanges orders ranges deterministically: numeric-bearing bins first,
// ascending by start then end, followed by purely categorical bins in Key
// order. The input slice is sorted in place.
func sortRanges(rs []Range) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		switch {
		case a.numeric && b.numeric:
			if a.start != b.start {
				return a.start < b.start
			}
			if a.end != b.end {
				return a.end < b.end
			}

			return a.Key() < b.Key()
		case a.numeric != b.numeric:
			return a.numeric
		default:
			return a.Key() < b.Key()
		}
	})
}
