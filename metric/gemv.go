package metric

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// dotAll writes m·x into out, one dot product per row, in a single BLAS call.
func dotAll(m *Matrix, x []float32, out []float32) {
	if len(out) != m.rows {
		panic(fmt.Sprintf("metric: output buffer has length %d, want %d", len(out), m.rows))
	}
	if m.rows == 0 {
		return
	}
	if m.dims == 0 {
		clear(out)
		return
	}

	blas32.Gemv(
		blas.NoTrans,
		1.0,
		blas32.General{
			Rows:   m.rows,
			Cols:   m.dims,
			Stride: m.dims,
			Data:   m.data,
		},
		blas32.Vector{N: m.dims, Inc: 1, Data: x},
		0.0,
		blas32.Vector{N: m.rows, Inc: 1, Data: out},
	)
}
