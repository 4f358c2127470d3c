// Package mat3 provides 3×3 matrix construction and algebra.
//
// Matrices are stored row-major and use the row-vector convention: a
// transform is applied as v' = v · M, and Mul(a, b) applies a first,
// then b. Every function returns a new value; inputs are never mutated.
package mat3

import (
	"geom3/internal/scalar"
	"geom3/vec3"
)

// Mat is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat[T scalar.Float] [9]T

// M3 is a Mat at the default float64 precision.
type M3 = Mat[float64]

// Identity returns the 3×3 identity matrix.
func Identity[T scalar.Float]() Mat[T] {
	return Mat[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Diag returns a diagonal matrix with x, y, z down the diagonal.
func Diag[T scalar.Float](x, y, z T) Mat[T] {
	return Mat[T]{x, 0, 0, 0, y, 0, 0, 0, z}
}

// FromScale returns the scaling matrix for the factors in s.
func FromScale[T scalar.Float](s vec3.Vec[T]) Mat[T] {
	return Diag(s[0], s[1], s[2])
}

// FromMatrix44 extracts the upper-left 3×3 block of a row-major 4×4
// matrix, keeping the rotation/scale component and discarding translation.
func FromMatrix44[T scalar.Float](m [16]T) Mat[T] {
	return Mat[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mul returns a × b. Under the row-vector convention, applying the result
// to a vector is equivalent to applying a first, then b.
func Mul[T scalar.Float](a, b Mat[T]) Mat[T] {
	var m Mat[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

func (m Mat[T]) Transpose() Mat[T] {
	return Mat[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}
