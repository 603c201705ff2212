// Package frame: Cell, Series, Frame and Target types.

package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrEmptyFrame indicates a Frame constructed with no columns.
	ErrEmptyFrame = errors.New("frame: no columns")

	// ErrLengthMismatch indicates columns or a target of unequal length.
	ErrLengthMismatch = errors.New("frame: column lengths differ")

	// ErrDuplicateColumn indicates two columns sharing a name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrUnknownColumn indicates a lookup of a column that does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrNonBinaryTarget indicates a target value other than 0 or 1.
	ErrNonBinaryTarget = errors.New("frame: target values must be 0 or 1")
)

// Cell is one table value: either numeric (raw text that coerced to a
// float) or categorical (raw text that did not). The raw representation is
// always retained, so a Cell never loses information.
type Cell struct {
	raw     string
	num     float64
	numeric bool
}

// ParseCell coerces raw text into a Cell. Values that parse as floats
// (after trimming surrounding whitespace) become numeric; everything else
// is categorical.
func ParseCell(raw string) Cell {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return Cell{raw: raw, num: v, numeric: true}
	}

	return Cell{raw: raw}
}

// NumericCell builds a numeric Cell directly from a float value.
func NumericCell(v float64) Cell {
	return Cell{raw: strconv.FormatFloat(v, 'g', -1, 64), num: v, numeric: true}
}

// IsNumeric reports whether the cell coerced to a number.
func (c Cell) IsNumeric() bool { return c.numeric }

// Float returns the coerced numeric value and whether one exists.
func (c Cell) Float() (float64, bool) { return c.num, c.numeric }

// Raw returns the original textual representation.
func (c Cell) Raw() string { return c.raw }

// Series is one named column of Cells. Immutable after construction.
type Series struct {
	name  string
	cells []Cell
}

// NewSeries builds a Series by coercing each raw value through ParseCell.
func NewSeries(name string, raws []string) Series {
	cells := make([]Cell, len(raws))
	for i, raw := range raws {
		cells[i] = ParseCell(raw)
	}

	return Series{name: name, cells: cells}
}

// NewNumericSeries builds a Series of numeric Cells.
func NewNumericSeries(name string, vals []float64) Series {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = NumericCell(v)
	}

	return Series{name: name, cells: cells}
}

// NewSeriesFromCells builds a Series around already-built cells. The
// Series takes ownership of the slice; callers must not mutate it after.
func NewSeriesFromCells(name string, cells []Cell) Series {
	return Series{name: name, cells: cells}
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// Len returns the number of rows.
func (s Series) Len() int { return len(s.cells) }

// Cell returns the cell at row i.
func (s Series) Cell(i int) Cell { return s.cells[i] }

// Numeric returns the coerced values aligned with the rows, plus a mask
// reporting which rows carried a numeric cell. Non-numeric positions hold
// zero in the value slice; consult the mask before use.
func (s Series) Numeric() (values []float64, numeric []bool) {
	values = make([]float64, len(s.cells))
	numeric = make([]bool, len(s.cells))
	for i, c := range s.cells {
		values[i], numeric[i] = c.Float()
	}

	return values, numeric
}

// Frame is an ordered collection of equal-length Series, indexed by name.
// Immutable after construction; all accessors copy.
type Frame struct {
	order []string
	cols  map[string]Series
}

// New builds a Frame from columns. Column order is preserved.
//
// Errors:
//   - ErrEmptyFrame if no column is supplied.
//   - ErrDuplicateColumn if two columns share a name.
//   - ErrLengthMismatch if columns differ in length.
func New(columns ...Series) (*Frame, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyFrame
	}

	f := &Frame{
		order: make([]string, 0, len(columns)),
		cols:  make(map[string]Series, len(columns)),
	}
	rows := columns[0].Len()
	for _, col := range columns {
		if _, ok := f.cols[col.name]; ok {
			return nil, fmt.Errorf("frame: column %q: %w", col.name, ErrDuplicateColumn)
		}
		if col.Len() != rows {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d: %w",
				col.name, col.Len(), rows, ErrLengthMismatch)
		}
		f.order = append(f.order, col.name)
		f.cols[col.name] = col
	}

	return f, nil
}

// Columns returns the column names in construction order. The slice is a
// copy.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// Column returns the named Series.
//
// Errors:
//   - ErrUnknownColumn if no column carries the name.
func (f *Frame) Column(name string) (Series, error) {
	col, ok := f.cols[name]
	if !ok {
		return Series{}, fmt.Errorf("frame: column %q: %w", name, ErrUnknownColumn)
	}

	return col, nil
}

// Rows returns the number of rows shared by every column.
func (f *Frame) Rows() int {
	if len(f.order) == 0 {
		return 0
	}

	return f.cols[f.order[0]].Len()
}

// Target is the binary classification column: 1 marks an event (e.g. a bad
// loan outcome), 0 a non-event.
type Target []int

// NewTarget validates that every value is 0 or 1.
//
// Errors:
//   - ErrNonBinaryTarget on the first offending value.
func NewTarget(vals []int) (Target, error) {
	for i, v := range vals {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("frame: row %d holds %d: %w", i, v, ErrNonBinaryTarget)
		}
	}
	out := make(Target, len(vals))
	copy(out, vals)

	return out, nil
}

// Counts returns the total event and non-event counts.
func (t Target) Counts() (events, nonEvents int) {
	for _, v := range t {
		if v == 1 {
			events++
		} else {
			nonEvents++
		}
	}

	return events, nonEvents
}
