package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geom3/mat3"
	"geom3/vec3"
)

func TestCubeShape(t *testing.T) {
	c := Cube()
	assert.Len(t, c.Verts, 8)
	assert.Len(t, c.Tris, 12)
	assert.Len(t, c.UVs, 8)
	for _, v := range c.Verts {
		assert.InDelta(t, math.Sqrt(3), v.Len(), 1e-12)
	}
}

func TestOctahedronShape(t *testing.T) {
	o := Octahedron()
	assert.Len(t, o.Verts, 6)
	assert.Len(t, o.Tris, 8)
	for _, v := range o.Verts {
		assert.InDelta(t, 1.0, v.Len(), 1e-12)
	}
}

func TestTransform(t *testing.T) {
	o := Octahedron()
	rotated := o.Transform(mat3.RotY(math.Pi / 2))

	// (1,0,0) spun a quarter turn about Y lands on (0,0,-1)
	got := rotated.Verts[0]
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, -1, got[2], 1e-12)

	assert.Equal(t, vec3.V3{1, 0, 0}, o.Verts[0], "source mesh untouched")
}

func TestByName(t *testing.T) {
	c, err := ByName("")
	require.NoError(t, err)
	assert.Len(t, c.Verts, 8, "empty name defaults to cube")

	_, err = ByName("teapot")
	assert.Error(t, err)
}
