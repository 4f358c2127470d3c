// Package quat provides a unit-quaternion rotation representation.
package quat

import "geom3/internal/scalar"

// Quat represents a quaternion ordered (x, y, z, w).
type Quat[T scalar.Float] [4]T

// Q is a Quat at the default float64 precision.
type Q = Quat[float64]

// FromEulers converts Euler XYZ angles (radians) to a quaternion.
func FromEulers[T scalar.Float](rx, ry, rz T) Quat[T] {
	cx, sx := scalar.Cos(rx*0.5), scalar.Sin(rx*0.5)
	cy, sy := scalar.Cos(ry*0.5), scalar.Sin(ry*0.5)
	cz, sz := scalar.Cos(rz*0.5), scalar.Sin(rz*0.5)

	return Quat[T]{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

func (q Quat[T]) Len() T {
	return scalar.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// IsUnit reports whether the norm is 1 within the scalar.Close tolerance.
func (q Quat[T]) IsUnit() bool {
	return scalar.Close(q.Len(), 1)
}

// Normalize returns q at unit length. A near-zero quaternion normalizes to
// the zero quaternion instead of NaN.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Len()
	if float64(l) < 1e-12 {
		return Quat[T]{}
	}
	return Quat[T]{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// Conjugate returns the quaternion of the inverse rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q[0], -q[1], -q[2], q[3]}
}
