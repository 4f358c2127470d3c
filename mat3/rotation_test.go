package mat3

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"geom3/quat"
	"geom3/vec3"
)

func TestAxisRotationProperties(t *testing.T) {
	for _, theta := range []float64{0, 0.3, math.Pi / 2, -1.2, 2 * math.Pi} {
		c, s := math.Cos(theta), math.Sin(theta)

		x := ApplyVec3(RotX(theta), vec3.V3{0, 1, 0})
		assertVec(t, vec3.V3{0, c, s}, x)

		y := ApplyVec3(RotY(theta), vec3.V3{0, 0, 1})
		assertVec(t, vec3.V3{s, 0, c}, y)

		z := ApplyVec3(RotZ(theta), vec3.V3{1, 0, 0})
		assertVec(t, vec3.V3{c, s, 0}, z)
	}
}

// The row-vector matrices are the transposes of the column-vector
// rotations mgl produces, so m[i][j] must equal the oracle's At(j, i).
func TestAxisRotationsAgainstOracle(t *testing.T) {
	for _, theta := range []float64{0.3, -1.2, 2.9} {
		cases := []struct {
			m M3
			o mgl64.Mat3
		}{
			{RotX(theta), mgl64.Rotate3DX(theta)},
			{RotY(theta), mgl64.Rotate3DY(theta)},
			{RotZ(theta), mgl64.Rotate3DZ(theta)},
		}
		for _, c := range cases {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					assert.InDelta(t, c.o.At(j, i), c.m[i*3+j], 1e-12)
				}
			}
		}
	}
}

func TestFromEulersHalfAngleForm(t *testing.T) {
	// The closed form consumes half angles: pitch alone reduces to
	// RotX(-pitch/2).
	for _, p := range []float64{0, 0.6, -2.2, math.Pi} {
		got := FromEulers(p, 0, 0)
		want := RotX(-p / 2)
		for i := range got {
			assert.InDelta(t, want[i], got[i], 1e-12)
		}
	}
}

func TestFromEulersOrthonormal(t *testing.T) {
	m := FromEulers(0.4, -1.3, 2.1)
	assert.InDelta(t, 1.0, m.Det(), 1e-12)
	assertOrthonormal(t, m)
}

func TestFromQuaternionIdentity(t *testing.T) {
	assert.Equal(t, Identity[float64](), FromQuaternion(quat.Q{0, 0, 0, 1}))
}

func TestFromQuaternionMatchesAxisRotation(t *testing.T) {
	for _, theta := range []float64{0.3, -1.2, 2.9} {
		q := quat.FromEulers(theta, 0, 0)
		got := FromQuaternion(q)
		want := RotX(theta)
		for i := range got {
			assert.InDelta(t, want[i], got[i], 1e-12)
		}
	}
}

func TestFromQuaternionNormalizesInput(t *testing.T) {
	q := quat.Q{0.2, -0.4, 0.1, 0.8}
	scaled := quat.Q{0.6, -1.2, 0.3, 2.4}
	orig := scaled

	a := FromQuaternion(q)
	b := FromQuaternion(scaled)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-12)
	}
	assert.Equal(t, orig, scaled, "caller's quaternion untouched")
}

func TestFromQuaternionOrthonormal(t *testing.T) {
	q := quat.FromEulers(0.7, -0.3, 1.9)
	m := FromQuaternion(q)
	assert.InDelta(t, 1.0, m.Det(), 1e-12)
	assertOrthonormal(t, m)
}

func TestInverseOfQuaternionIsTranspose(t *testing.T) {
	quats := []quat.Q{
		quat.FromEulers(0.7, -0.3, 1.9),
		{0, 0, 0, 1},
		// Non-unit inputs hit the shared normalization guard, so the
		// identity holds strictly for them too.
		{1, 2, 3, 4},
	}
	for _, q := range quats {
		fwd := FromQuaternion(q).Transpose()
		inv := FromInverseOfQuaternion(q)
		for i := range fwd {
			assert.InDelta(t, fwd[i], inv[i], 1e-12)
		}
	}
}

func TestInverseOfQuaternionUndoesRotation(t *testing.T) {
	q := quat.FromEulers(0.4, 1.1, -0.8)
	v := vec3.V3{1, -2, 3}

	rotated := ApplyVec3(FromQuaternion(q), v)
	back := ApplyVec3(FromInverseOfQuaternion(q), rotated)
	assertVec(t, v, back)
}

func TestRotationFloat32(t *testing.T) {
	m := RotZ(float32(math.Pi / 2))
	v := ApplyVec3(m, vec3.Vec[float32]{1, 0, 0})
	assert.InDelta(t, 0, float64(v[0]), 1e-6)
	assert.InDelta(t, 1, float64(v[1]), 1e-6)
}

func assertVec(t *testing.T, want, got vec3.V3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

// assertOrthonormal checks m·mᵀ ≈ I.
func assertOrthonormal(t *testing.T, m M3) {
	t.Helper()
	p := Mul(m, m.Transpose())
	id := Identity[float64]()
	for i := range p {
		assert.InDelta(t, id[i], p[i], 1e-12)
	}
}
