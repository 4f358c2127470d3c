package mat3

import (
	"geom3/internal/scalar"
	"geom3/quat"
)

// RotX returns the right-handed rotation about the X axis. Angle in
// radians. Oriented for the row-vector convention: v·RotX(θ) rotates v
// actively, so (0,1,0) maps to (0, cos θ, sin θ).
func RotX[T scalar.Float](theta T) Mat[T] {
	c, s := scalar.Cos(theta), scalar.Sin(theta)
	return Mat[T]{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotY returns the right-handed rotation about the Y axis.
func RotY[T scalar.Float](theta T) Mat[T] {
	c, s := scalar.Cos(theta), scalar.Sin(theta)
	return Mat[T]{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ returns the right-handed rotation about the Z axis.
func RotZ[T scalar.Float](theta T) Mat[T] {
	c, s := scalar.Cos(theta), scalar.Sin(theta)
	return Mat[T]{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// FromEulers builds a rotation matrix from (pitch, roll, yaw) radians
// using the fixed closed form over half-angle sines and cosines. The
// half-angle terms are part of the contract: FromEulers(p, 0, 0) equals
// RotX(-p/2). Angles are unrestricted and wrap via trig periodicity.
func FromEulers[T scalar.Float](pitch, roll, yaw T) Mat[T] {
	sp, cp := scalar.Sin(pitch*0.5), scalar.Cos(pitch*0.5)
	sr, cr := scalar.Sin(roll*0.5), scalar.Cos(roll*0.5)
	sy, cy := scalar.Sin(yaw*0.5), scalar.Cos(yaw*0.5)

	return Mat[T]{
		cy*cr + sy*sp*sr, -cy*sr + sy*sp*cr, sy * cp,
		sr * cp, cr * cp, -sp,
		-sy*cr + cy*sp*sr, sr*sy + cy*sp*cr, cy * cp,
	}
}

// FromQuaternion builds the rotation matrix of q. If q is not unit length
// within the scalar.Close tolerance it is normalized first; the caller's
// quaternion is never mutated.
func FromQuaternion[T scalar.Float](q quat.Quat[T]) Mat[T] {
	if !q.IsUnit() {
		q = q.Normalize()
	}
	x, y, z, w := q[0], q[1], q[2], q[3]

	x2, y2, z2 := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat[T]{
		1 - 2*(y2+z2), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(x2+z2), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(x2+y2),
	}
}

// FromInverseOfQuaternion builds the matrix of the conjugate rotation of
// q, equal to FromQuaternion(q).Transpose(). It applies the same
// normalization guard as the forward conversion.
func FromInverseOfQuaternion[T scalar.Float](q quat.Quat[T]) Mat[T] {
	if !q.IsUnit() {
		q = q.Normalize()
	}
	x, y, z, w := q[0], q[1], q[2], q[3]

	x2, y2, z2 := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat[T]{
		1 - 2*(y2+z2), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(x2+z2), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(x2+y2),
	}
}
