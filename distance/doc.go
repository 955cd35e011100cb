// Package distance provides float32 vector kernels.
//
// # Kernels
//
//   - Dot: inner product (gonum BLAS Sdot)
//   - SquaredL2: squared Euclidean distance
//   - SquaredL2FromNorms: squared Euclidean distance from cached squared norms
//   - Norm / SquaredNorm: L2 norm of a single vector
//
// # Usage
//
//	dot := distance.Dot(a, b)
//	d2 := distance.SquaredL2FromNorms(distance.SquaredNorm(a), distance.SquaredNorm(b), dot)
//	ok := distance.NormalizeL2InPlace(vec)
package distance
