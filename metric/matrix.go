package metric

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a backing slice does not match the declared shape.
	ErrShapeMismatch = errors.New("metric: data length does not match rows*dims")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("metric: rows have different lengths")
)

// Matrix is an n×d row-major block of float32 feature vectors.
//
// A Matrix is never mutated by this module. Slice returns views that share
// the backing array; Gather returns an owned copy.
type Matrix struct {
	rows int
	dims int
	data []float32
}

// NewMatrix wraps data as a rows×dims matrix without copying.
func NewMatrix(rows, dims int, data []float32) (*Matrix, error) {
	if rows < 0 || dims < 0 {
		return nil, fmt.Errorf("%w: negative shape %dx%d", ErrShapeMismatch, rows, dims)
	}
	if len(data) != rows*dims {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrShapeMismatch, len(data), rows, dims)
	}

	return &Matrix{rows: rows, dims: dims, data: data}, nil
}

// FromRows copies rows into a single contiguous matrix.
func FromRows(rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}

	dims := len(rows[0])
	data := make([]float32, 0, len(rows)*dims)
	for i, r := range rows {
		if len(r) != dims {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(r), dims)
		}
		data = append(data, r...)
	}

	return &Matrix{rows: len(rows), dims: dims, data: data}, nil
}

// Rows returns the number of points.
func (m *Matrix) Rows() int { return m.rows }

// Dims returns the number of features per point.
func (m *Matrix) Dims() int { return m.dims }

// Data returns the row-major backing slice. Callers must not modify it.
func (m *Matrix) Data() []float32 { return m.data }

// Row returns a view of row i.
func (m *Matrix) Row(i int) []float32 {
	start := i * m.dims
	end := start + m.dims

	return m.data[start:end:end]
}

// Slice returns a zero-copy view of rows [start, end).
func (m *Matrix) Slice(start, end int) *Matrix {
	return &Matrix{
		rows: end - start,
		dims: m.dims,
		data: m.data[start*m.dims : end*m.dims : end*m.dims],
	}
}

// Gather copies the given rows, in order, into a new matrix.
// Duplicate indices are kept.
func (m *Matrix) Gather(indices []int) *Matrix {
	data := make([]float32, 0, len(indices)*m.dims)
	for _, idx := range indices {
		data = append(data, m.Row(idx)...)
	}

	return &Matrix{rows: len(indices), dims: m.dims, data: data}
}

// chunkCapacity is ceil(n/c).
func chunkCapacity(n, c int) int {
	if c < 1 {
		panic(fmt.Sprintf("metric: chunk count must be positive, got %d", c))
	}

	return (n + c - 1) / c
}

// chunkBounds returns the [start, end) row range of chunk i.
// Trailing chunks are empty once the rows run out.
func chunkBounds(n, capacity, i int) (int, int) {
	start := min(i*capacity, n)
	end := min(start+capacity, n)

	return start, end
}
