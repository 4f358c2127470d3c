package raster

import (
	"image"
	"math"
)

// Tri rasterizes one triangle with z-buffering.
//
// px, py are pixel coordinates and pz is depth (larger is nearer). When
// tex and uvs are present the color comes from bilinear texture samples,
// otherwise from the base RGBA. shade scales the color; pass 1 for unlit
// geometry such as shadows. Shading is flat: the caller computes shade
// once per face.
func Tri(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	uvs [][2]float64,
	tex *image.NRGBA,
	baseR, baseG, baseB, baseA uint8,
	shade float64,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	hasUV := tex != nil && len(uvs) == nv
	var u0, v0, u1, v1, u2, v2 float64
	if hasUV {
		u0, v0 = uvs[vi[0]][0], uvs[vi[0]][1]
		u1, v1 = uvs[vi[1]][0], uvs[vi[1]][1]
		u2, v2 = uvs[vi[2]][0], uvs[vi[2]][1]
	}

	// Bounding box clamped to the framebuffer
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.Depth[zIdx] {
				continue
			}

			cr, cg, cb, ca := baseR, baseG, baseB, baseA
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca = sample(tex, u, v)
			}
			if ca < 8 {
				continue
			}
			fb.Depth[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = mul8(cr, shade)
			fb.Color[pxIdx+1] = mul8(cg, shade)
			fb.Color[pxIdx+2] = mul8(cb, shade)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func mul8(c uint8, s float64) uint8 {
	v := float64(c) * s
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
