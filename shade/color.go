// Package shade turns a traverser Hit into a pixel color: simple
// Lambertian shading against a fixed key light, plus an optional
// CIELAB palette-matching stylization pass over a whole rendered image
// with Floyd–Steinberg error diffusion. The matching and dithering code
// is ported from a mesh-to-voxel converter's block-color quantizer,
// repointed from "nearest Minecraft block" to "nearest palette swatch".
package shade

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/scene"
)

// keyLightDir is the unit direction from a surface toward the fixed
// directional key light used for Lambertian shading: up (+Y), toward
// +Z, and to -X.
var keyLightDir = geom.Normalize(geom.Vec3{X: -0.4, Y: 0.8, Z: 0.5})

const ambient = 0.15

// Shade computes a Lambertian-shaded RGB color for a hit, given the
// struck triangle's geometric normal (the triangle's plane normal).
func Shade(scn *scene.Scene, tri *scene.Triangle) [3]uint8 {
	mat := scn.Material(tri)
	ndotl := geom.Dot(tri.Plane.N, keyLightDir)
	if ndotl < 0 {
		ndotl = -ndotl // light the visible face regardless of winding
	}
	intensity := ambient + (1-ambient)*ndotl

	return [3]uint8{
		toByte(mat.Diffuse.X * intensity),
		toByte(mat.Diffuse.Y * intensity),
		toByte(mat.Diffuse.Z * intensity),
	}
}

func toByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v * 255)
}

// LABColor is a color in CIELAB space.
type LABColor struct {
	L, A, B float64
}

// RGBToLAB converts an 8-bit RGB color to CIELAB.
func RGBToLAB(rgb [3]uint8) LABColor {
	r := float64(rgb[0]) / 255.0
	g := float64(rgb[1]) / 255.0
	b := float64(rgb[2]) / 255.0

	c := colorful.Color{R: r, G: g, B: b}
	l, a, bVal := c.Lab()
	return LABColor{L: l, A: a, B: bVal}
}

// LABToRGB converts a CIELAB color back to 8-bit RGB, clamping to the
// valid gamut.
func LABToRGB(lab LABColor) [3]uint8 {
	c := colorful.Lab(lab.L, lab.A, lab.B)
	r := math.Max(0, math.Min(1, c.R))
	g := math.Max(0, math.Min(1, c.G))
	b := math.Max(0, math.Min(1, c.B))
	return [3]uint8{uint8(r * 255), uint8(g * 255), uint8(b * 255)}
}

// DeltaE is the CIEDE2000 color distance between two LAB colors.
func DeltaE(a, b LABColor) float64 {
	ca := colorful.Lab(a.L, a.A, a.B)
	cb := colorful.Lab(b.L, b.A, b.B)
	return ca.DistanceCIEDE2000(cb)
}
