package vec3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOps(t *testing.T) {
	a := V3{1, 2, 3}
	b := V3{4, 5, 6}

	assert.Equal(t, V3{5, 7, 9}, a.Add(b))
	assert.Equal(t, V3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, V3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
}

func TestCross(t *testing.T) {
	x := V3{1, 0, 0}
	y := V3{0, 1, 0}

	assert.Equal(t, V3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, V3{0, 0, -1}, y.Cross(x))
	assert.Equal(t, V3{}, x.Cross(x))
}

func TestNormalize(t *testing.T) {
	v := V3{3, 0, 4}
	n := v.Normalize()

	assert.InDelta(t, 1.0, n.Len(), 1e-15)
	assert.InDelta(t, 0.6, n[0], 1e-15)
	assert.InDelta(t, 0.8, n[2], 1e-15)
}

func TestNormalizeZeroGuard(t *testing.T) {
	assert.Equal(t, V3{}, V3{}.Normalize())
}

func TestFloat32Precision(t *testing.T) {
	v := Vec[float32]{1, 1, 1}
	assert.InDelta(t, math.Sqrt(3), float64(v.Len()), 1e-6)
	assert.InDelta(t, 1.0, float64(v.Normalize().Len()), 1e-6)
}

func TestHomogenize(t *testing.T) {
	v := V4{2, 4, 6, 2}
	assert.Equal(t, V3{1, 2, 3}, v.Homogenize())
}

func TestHomogenizeZeroW(t *testing.T) {
	// Divide-by-w is not validated; a zero w propagates Inf.
	h := V4{1, 1, 1, 0}.Homogenize()
	assert.True(t, math.IsInf(h[0], 1))
}
