// Package mesh provides the generated triangle meshes consumed by the
// demo renderer.
package mesh

import (
	"fmt"

	"geom3/mat3"
	"geom3/vec3"
)

// Mesh is a triangle mesh in model space. UVs are per-vertex.
type Mesh struct {
	Verts []vec3.V3
	Tris  [][3]int
	UVs   [][2]float64
}

// Transform returns a copy of m with every vertex multiplied by r.
func (m Mesh) Transform(r mat3.M3) Mesh {
	out := Mesh{
		Verts: make([]vec3.V3, len(m.Verts)),
		Tris:  m.Tris,
		UVs:   m.UVs,
	}
	for i, v := range m.Verts {
		out.Verts[i] = mat3.ApplyVec3(r, v)
	}
	return out
}

// Cube returns the axis-aligned cube with corners at ±1.
func Cube() Mesh {
	verts := []vec3.V3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	tris := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // back
		{4, 6, 5}, {4, 7, 6}, // front
		{0, 5, 1}, {0, 4, 5}, // bottom
		{3, 2, 6}, {3, 6, 7}, // top
		{0, 3, 7}, {0, 7, 4}, // left
		{1, 5, 6}, {1, 6, 2}, // right
	}
	return Mesh{Verts: verts, Tris: tris, UVs: planarUVs(verts)}
}

// Octahedron returns the regular octahedron with unit vertices.
func Octahedron() Mesh {
	verts := []vec3.V3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	tris := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	return Mesh{Verts: verts, Tris: tris, UVs: planarUVs(verts)}
}

// ByName maps a config model name to its generator.
func ByName(name string) (Mesh, error) {
	switch name {
	case "", "cube":
		return Cube(), nil
	case "octahedron":
		return Octahedron(), nil
	default:
		return Mesh{}, fmt.Errorf("mesh: unknown model %q", name)
	}
}

func planarUVs(verts []vec3.V3) [][2]float64 {
	uvs := make([][2]float64, len(verts))
	for i, v := range verts {
		uvs[i] = [2]float64{(v[0] + 1) * 0.5, (v[1] + 1) * 0.5}
	}
	return uvs
}
