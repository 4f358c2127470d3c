// Package render turns a transformed mesh into images through an
// orthographic bounding-box-fit projection.
package render

import (
	"image"
	"math"

	"geom3/internal/mesh"
	"geom3/internal/raster"
	"geom3/mat3"
	"geom3/ray"
	"geom3/vec3"
)

// Options holds per-frame render settings.
type Options struct {
	Size        int
	Supersample int
	Shadow      bool
	Tex         *image.NRGBA
	Light       raster.Light
}

// shadowDepth keeps the shadow pass behind all body geometry.
const shadowDepth = -1e9

// Frame renders one frame of msh transformed by model, lit by light.
// When opts.Shadow is set, the mesh is flattened along the light's travel
// direction onto the ground plane and drawn dark beneath the body.
func Frame(msh mesh.Mesh, model mat3.M3, light ray.R3, opts Options) *image.NRGBA {
	body := msh.Transform(model)

	var shadow mesh.Mesh
	fit := body.Verts
	if opts.Shadow {
		shadow = flatten(body, light)
		fit = append(append([]vec3.V3{}, body.Verts...), shadow.Verts...)
	}

	renderSize := opts.Size * opts.Supersample
	fb := raster.New(renderSize, renderSize)
	view := fitView(fit, renderSize)

	if opts.Shadow {
		spx, spy, _ := view.project(shadow.Verts)
		spz := make([]float64, len(shadow.Verts))
		for i := range spz {
			spz[i] = shadowDepth
		}
		for _, tri := range shadow.Tris {
			raster.Tri(fb, spx, spy, spz, tri, nil, nil, 52, 52, 60, 255, 1)
		}
	}

	bpx, bpy, bpz := view.project(body.Verts)
	for _, tri := range body.Tris {
		n := faceNormal(body, tri)
		shade := opts.Light.Shade(n)
		raster.Tri(fb, bpx, bpy, bpz, tri, body.UVs, opts.Tex, 168, 172, 186, 255, shade)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}

// flatten collapses the mesh along the light direction onto the plane
// through the lowest body vertex, using a directional scale of zero
// conjugated around a point on that plane.
func flatten(body mesh.Mesh, light ray.R3) mesh.Mesh {
	minY := math.Inf(1)
	for _, v := range body.Verts {
		if v[1] < minY {
			minY = v[1]
		}
	}
	ground := vec3.V3{0, minY, 0}
	s := mat3.DirectionScale(light.Direction(), 0)

	out := mesh.Mesh{
		Verts: make([]vec3.V3, len(body.Verts)),
		Tris:  body.Tris,
	}
	for i, v := range body.Verts {
		out.Verts[i] = mat3.ApplyVec3(s, v.Sub(ground)).Add(ground)
	}
	return out
}

// viewport is an orthographic world-to-pixel mapping.
type viewport struct {
	cx, cy, scale, half float64
}

// fitView centers the vertices' bounding box in a renderSize frame,
// leaving a fixed pixel margin.
func fitView(verts []vec3.V3, renderSize int) viewport {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v[0])
		maxX = math.Max(maxX, v[0])
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span < 0.001 {
		span = 0.001
	}

	margin := 16.0 * float64(renderSize) / 256.0
	if margin < 16 {
		margin = 16
	}
	return viewport{
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		scale: (float64(renderSize) - 2*margin) / span,
		half:  float64(renderSize) / 2,
	}
}

// project maps vertices to pixel x, y and keeps world z as depth.
func (vp viewport) project(verts []vec3.V3) (px, py, pz []float64) {
	px = make([]float64, len(verts))
	py = make([]float64, len(verts))
	pz = make([]float64, len(verts))
	for i, v := range verts {
		px[i] = (v[0]-vp.cx)*vp.scale + vp.half
		py[i] = vp.half - (v[1]-vp.cy)*vp.scale
		pz[i] = v[2]
	}
	return px, py, pz
}

func faceNormal(m mesh.Mesh, tri [3]int) vec3.V3 {
	e1 := m.Verts[tri[1]].Sub(m.Verts[tri[0]])
	e2 := m.Verts[tri[2]].Sub(m.Verts[tri[0]])
	return e1.Cross(e2).Normalize()
}
