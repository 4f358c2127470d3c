// Package scalar provides the floating-point scalar backend shared by the
// geom3 math types.
//
// Every public type in this module is generic over Float. Trigonometry and
// square roots dispatch on the concrete precision: float32 goes through
// math32, everything else is computed in float64 and converted back.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint used across the module.
type Float = constraints.Float

func Sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func Cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Close reports whether a and b are approximately equal using the bound
// |a-b| <= atol + rtol*|b| with atol = 1e-8 and rtol = 1e-5.
// The comparison runs in float64 so float32 inputs don't lose the atol term.
func Close[T Float](a, b T) bool {
	const (
		atol = 1e-8
		rtol = 1e-5
	)
	fa, fb := float64(a), float64(b)
	return math.Abs(fa-fb) <= atol+rtol*math.Abs(fb)
}
