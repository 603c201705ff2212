// Package frame provides the small column-oriented table the fitting and
// transform stages consume: named columns of mixed numeric/string cells, a
// same-length binary target column, and CSV ingestion.
//
// What
//
//   - Cell: a tagged value — numeric (with its parsed float) or categorical
//     (a raw string that failed numeric coercion).
//   - Series: one named column of Cells.
//   - Frame: an ordered collection of equal-length Series, indexed by name.
//   - Target: the binary classification column, validated to hold only 0/1.
//   - ReadCSV: header-row CSV ingestion, each cell coerced on read.
//
// Determinism & ownership
//
//	Frames are read-only snapshots: constructors copy their inputs,
//	accessors copy their outputs, and no operation mutates a Frame in
//	place. Column order is the construction order and is preserved by
//	every accessor.
//
// Errors (sentinel, errors.Is-matchable):
//
//	ErrEmptyFrame      – frame constructed with no columns.
//	ErrLengthMismatch  – columns (or target) of unequal length.
//	ErrDuplicateColumn – two columns share a name.
//	ErrUnknownColumn   – a requested column does not exist.
//	ErrNonBinaryTarget – a target value other than 0 or 1.
//	ErrNoHeader        – CSV input without a header row.
package frame
