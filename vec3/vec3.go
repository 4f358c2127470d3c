// Package vec3 provides 3- and 4-component vector value types.
package vec3

import "geom3/internal/scalar"

// Vec is a 3-component vector (value type, stack-allocated).
type Vec[T scalar.Float] [3]T

// V3 is a Vec at the default float64 precision.
type V3 = Vec[float64]

func (a Vec[T]) Add(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec[T]) Sub(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec[T]) Scale(s T) Vec[T] {
	return Vec[T]{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec[T]) Dot(b Vec[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec[T]) Cross(b Vec[T]) Vec[T] {
	return Vec[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec[T]) Len() T {
	return scalar.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns v at unit length. A near-zero vector normalizes to the
// zero vector instead of NaN.
func (v Vec[T]) Normalize() Vec[T] {
	l := v.Len()
	if float64(l) < 1e-12 {
		return Vec[T]{}
	}
	return Vec[T]{v[0] / l, v[1] / l, v[2] / l}
}
