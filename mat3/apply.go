package mat3

import (
	"errors"
	"fmt"

	"geom3/internal/scalar"
	"geom3/vec3"
)

// ErrVectorSize is returned by Apply for a vector whose component count is
// neither 3 nor 4.
var ErrVectorSize = errors.New("mat3: vector size unsupported")

// Apply transforms v by m under the row-vector convention (v · m).
// A 3-component vector is transformed directly. A 4-component vector is
// treated as homogeneous: the spatial components are divided by w,
// transformed, and returned with w reset to 1. Any other length fails
// with ErrVectorSize.
func Apply[T scalar.Float](m Mat[T], v []T) ([]T, error) {
	switch len(v) {
	case 3:
		u := ApplyVec3(m, vec3.Vec[T]{v[0], v[1], v[2]})
		return []T{u[0], u[1], u[2]}, nil
	case 4:
		u := ApplyVec4(m, vec3.Vec4[T]{v[0], v[1], v[2], v[3]})
		return []T{u[0], u[1], u[2], u[3]}, nil
	default:
		return nil, fmt.Errorf("%w: length %d", ErrVectorSize, len(v))
	}
}

// ApplyVec3 returns v · m.
func ApplyVec3[T scalar.Float](m Mat[T], v vec3.Vec[T]) vec3.Vec[T] {
	return vec3.Vec[T]{
		v[0]*m[0] + v[1]*m[3] + v[2]*m[6],
		v[0]*m[1] + v[1]*m[4] + v[2]*m[7],
		v[0]*m[2] + v[1]*m[5] + v[2]*m[8],
	}
}

// ApplyVec4 transforms a homogeneous vector: divide by w, apply, and
// return the result with w = 1.
func ApplyVec4[T scalar.Float](m Mat[T], v vec3.Vec4[T]) vec3.Vec4[T] {
	u := ApplyVec3(m, v.Homogenize())
	return vec3.Vec4[T]{u[0], u[1], u[2], 1}
}
