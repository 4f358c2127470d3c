package mat3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geom3/vec3"
)

func TestInverseRoundTrip(t *testing.T) {
	ms := []M3{
		RotX(0.7),
		Mul(RotY(-1.2), FromScale(vec3.V3{2, 3, 4})),
		{2, -1, 0.5, 3, 7, -2, 0, 1, 4},
	}
	id := Identity[float64]()

	for _, m := range ms {
		inv, err := Inverse(m)
		require.NoError(t, err)

		p := Mul(m, inv)
		for i := range p {
			assert.InDelta(t, id[i], p[i], 1e-6)
		}

		// inverse(m·inverse(m)) is the identity again
		p2, err := Inverse(p)
		require.NoError(t, err)
		for i := range p2 {
			assert.InDelta(t, id[i], p2[i], 1e-6)
		}
	}
}

func TestInverseAgainstOracle(t *testing.T) {
	m := M3{2, -1, 0.5, 3, 7, -2, 0, 1, 4}
	inv, err := Inverse(m)
	require.NoError(t, err)

	o := oracle(m).Inv()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, o.At(i, j), inv[i*3+j], 1e-12)
		}
	}
}

func TestInverseSingular(t *testing.T) {
	_, err := Inverse(M3{})
	assert.Error(t, err, "all-zero matrix has no inverse")

	// Rank-deficient: two identical rows
	_, err = Inverse(M3{1, 2, 3, 1, 2, 3, 0, 0, 1})
	assert.Error(t, err)
}

func TestInverseFloat32(t *testing.T) {
	m := RotZ(float32(0.9))
	inv, err := Inverse(m)
	require.NoError(t, err)

	p := Mul(m, inv)
	id := Identity[float32]()
	for i := range p {
		assert.InDelta(t, float64(id[i]), float64(p[i]), 1e-6)
	}
}
