// Package frame: CSV ingestion. The reader expects a header row naming the
// columns; every cell is coerced through ParseCell on the way in.

package frame

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader indicates CSV input that ended before a header row.
var ErrNoHeader = errors.New("frame: CSV input has no header row")

// ReadCSV reads a header-first CSV document into a Frame.
//
// Errors:
//   - ErrNoHeader if the input is empty.
//   - ErrDuplicateColumn via New if the header repeats a name.
//   - the underlying csv error for malformed records (including rows whose
//     field count differs from the header).
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(bufio.NewReader(r))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("frame: reading CSV header: %w", err)
	}

	cells := make([][]Cell, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame: reading CSV record: %w", err)
		}
		for i, raw := range record {
			cells[i] = append(cells[i], ParseCell(raw))
		}
	}

	columns := make([]Series, len(header))
	for i, name := range header {
		columns[i] = NewSeriesFromCells(name, cells[i])
	}

	return New(columns...)
}

// ReadCSVWithTarget reads a header-first CSV document, splitting off the
// named column as the binary target and returning the remaining columns as
// a Frame.
//
// Errors:
//   - everything ReadCSV returns;
//   - ErrUnknownColumn if targetColumn is not in the header;
//   - ErrNonBinaryTarget if the target column holds anything but 0/1;
//   - ErrEmptyFrame if the target was the only column.
func ReadCSVWithTarget(r io.Reader, targetColumn string) (*Frame, Target, error) {
	full, err := ReadCSV(r)
	if err != nil {
		return nil, nil, err
	}

	targetSeries, err := full.Column(targetColumn)
	if err != nil {
		return nil, nil, err
	}
	vals := make([]int, targetSeries.Len())
	for i := range vals {
		v, ok := targetSeries.Cell(i).Float()
		if !ok || (v != 0 && v != 1) {
			return nil, nil, fmt.Errorf("frame: target %q row %d holds %q: %w",
				targetColumn, i, targetSeries.Cell(i).Raw(), ErrNonBinaryTarget)
		}
		vals[i] = int(v)
	}
	target, err := NewTarget(vals)
	if err != nil {
		return nil, nil, err
	}

	columns := make([]Series, 0, len(full.order)-1)
	for _, name := range full.order {
		if name == targetColumn {
			continue
		}
		columns = append(columns, full.cols[name])
	}
	rest, err := New(columns...)
	if err != nil {
		return nil, nil, err
	}

	return rest, target, nil
}
