package vec3

import "geom3/internal/scalar"

// Vec4 is a 4-component homogeneous vector: (x, y, z, w).
type Vec4[T scalar.Float] [4]T

// V4 is a Vec4 at the default float64 precision.
type V4 = Vec4[float64]

func (v Vec4[T]) Len() T {
	return scalar.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Homogenize divides the spatial components by w. A zero w propagates
// Inf/NaN, matching the divide-by-w convention rather than validating.
func (v Vec4[T]) Homogenize() Vec[T] {
	return Vec[T]{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
