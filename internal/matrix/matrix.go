// Package matrix provides the shared, read-only integer grid that the
// partition strategies reduce. A Matrix is filled exactly once, by a single
// goroutine, before any worker is started; afterwards it exposes only read
// accessors, so concurrent readers need no synchronization.
package matrix

import (
	"fmt"

	apperrors "github.com/agbru/matreduce/internal/errors"
)

// Reference sizing used by the command-line tool.
const (
	DefaultRows = 1000
	DefaultCols = 100
)

// Matrix is an immutable rows x cols grid of int32 values stored row-major.
type Matrix struct {
	rows, cols int
	data       []int32
}

// FillFunc returns the value stored at (row, col) during construction.
type FillFunc func(row, col int) int32

// Build allocates a rows x cols matrix and populates it with fill in a single
// sequential pass.
func Build(rows, cols int, fill FillFunc) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	m := &Matrix{rows: rows, cols: cols, data: make([]int32, rows*cols)}
	if fill == nil {
		return m, nil
	}
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			m.data[base+c] = fill(r, c)
		}
	}
	return m, nil
}

// FromRows builds a matrix from literal rows. Every row must have the same,
// non-zero length.
func FromRows(values [][]int32) (*Matrix, error) {
	if len(values) == 0 {
		return nil, apperrors.ValidationError{Field: "rows", Message: "must be positive, got 0"}
	}
	cols := len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, apperrors.ValidationError{
				Field:   "cols",
				Message: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), cols),
			}
		}
	}
	return Build(len(values), cols, func(r, c int) int32 { return values[r][c] })
}

func validateDims(rows, cols int) error {
	if rows <= 0 {
		return apperrors.ValidationError{Field: "rows", Message: fmt.Sprintf("must be positive, got %d", rows)}
	}
	if cols <= 0 {
		return apperrors.ValidationError{Field: "cols", Message: fmt.Sprintf("must be positive, got %d", cols)}
	}
	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (row, col). It panics if either index is out of range.
func (m *Matrix) At(row, col int) int32 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", row, col, m.rows, m.cols))
	}
	return m.data[row*m.cols+col]
}

// RowSum adds every column of row into a 64-bit unsigned accumulator.
// Negative elements wrap modulo 2^64, which keeps sums independent of the
// order in which rows are combined.
func (m *Matrix) RowSum(row int) uint64 {
	var sum uint64
	for _, v := range m.data[row*m.cols : (row+1)*m.cols] {
		sum += uint64(int64(v))
	}
	return sum
}

// Total is the sequential reduction of the whole matrix, used as the
// reference the parallel strategies are checked against.
func (m *Matrix) Total() uint64 {
	var sum uint64
	for r := 0; r < m.rows; r++ {
		sum += m.RowSum(r)
	}
	return sum
}
