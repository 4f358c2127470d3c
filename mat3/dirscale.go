package mat3

import (
	"geom3/internal/scalar"
	"geom3/vec3"
)

// DirectionScale returns the matrix S = I + (k-1)·nnᵀ, which scales space
// by k along dir and leaves the orthogonal complement unchanged. With
// k = 0 it flattens geometry onto the plane through the origin whose
// normal is dir. The direction is normalized first when it is not unit
// length within the scalar.Close tolerance.
func DirectionScale[T scalar.Float](dir vec3.Vec[T], k T) Mat[T] {
	n := dir
	if !scalar.Close(dir.Len(), 1) {
		n = dir.Normalize()
	}
	km := k - 1

	return Mat[T]{
		1 + km*n[0]*n[0], km * n[0] * n[1], km * n[0] * n[2],
		km * n[0] * n[1], 1 + km*n[1]*n[1], km * n[1] * n[2],
		km * n[0] * n[2], km * n[1] * n[2], 1 + km*n[2]*n[2],
	}
}
