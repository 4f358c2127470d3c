package mat3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"geom3/internal/scalar"
)

// Inverse returns the inverse of m, delegating to the dense float64
// solver. A singular (or numerically non-invertible) matrix fails with the
// backend's error wrapped; no partial result is returned. The solve runs
// in float64 regardless of T and converts back.
func Inverse[T scalar.Float](m Mat[T]) (Mat[T], error) {
	data := make([]float64, 9)
	for i, e := range m {
		data[i] = float64(e)
	}

	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(3, 3, data)); err != nil {
		return Mat[T]{}, fmt.Errorf("mat3: inverse: %w", err)
	}

	var out Mat[T]
	for i := range out {
		out[i] = T(inv.At(i/3, i%3))
	}
	return out, nil
}
