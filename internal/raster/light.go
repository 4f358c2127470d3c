package raster

import (
	"math"

	"geom3/vec3"
)

// Light holds the directional lighting parameters for flat shading.
type Light struct {
	Dir     vec3.V3 // unit vector towards the light
	Ambient float64
	Hemi    float64
	Direct  float64
}

// DefaultLight matches the renderer's standard key light.
func DefaultLight() Light {
	return Light{
		Dir:     vec3.V3{180, 260, 140}.Normalize(),
		Ambient: 0.40,
		Hemi:    0.25,
		Direct:  0.60,
	}
}

// Shade returns the flat shading factor for a face normal. Lighting is
// double-sided, so the Lambert term uses the absolute dot product.
func (l Light) Shade(n vec3.V3) float64 {
	ndl := math.Abs(n.Dot(l.Dir))
	hemi := ((1-math.Abs(n[1]))*0.5 + 0.5) * l.Hemi
	s := l.Ambient + hemi + ndl*l.Direct
	if s > 1 {
		s = 1
	}
	return s
}
