// Package ray provides a ray primitive: an origin point and a unit-length
// direction extending from it.
package ray

import (
	"geom3/internal/scalar"
	"geom3/vec3"
)

// Ray is an origin plus a unit direction. The zero value is a degenerate
// ray with no direction; use New or FromLine.
type Ray[T scalar.Float] struct {
	origin    vec3.Vec[T]
	direction vec3.Vec[T]
}

// R3 is a Ray at the default float64 precision.
type R3 = Ray[float64]

// New returns a ray from origin along direction. The direction is
// normalized to unit length.
func New[T scalar.Float](origin, direction vec3.Vec[T]) Ray[T] {
	return Ray[T]{origin: origin, direction: direction.Normalize()}
}

// FromLine returns the ray from start towards end.
func FromLine[T scalar.Float](start, end vec3.Vec[T]) Ray[T] {
	return Ray[T]{origin: start, direction: end.Sub(start).Normalize()}
}

// Invert returns the ray pointing the opposite way from the same origin.
func (r Ray[T]) Invert() Ray[T] {
	return Ray[T]{origin: r.origin, direction: r.direction.Scale(-1)}
}

// Origin returns a copy of the ray's origin.
func (r Ray[T]) Origin() vec3.Vec[T] { return r.origin }

// Direction returns a copy of the ray's unit direction.
func (r Ray[T]) Direction() vec3.Vec[T] { return r.direction }
