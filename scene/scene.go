// Package scene holds the read-only view the grid and traverser query:
// the triangle array, the axis-aligned domain bounds, and each
// triangle's precomputed supporting plane. Built once by an external
// preprocessor (a glTF load, or a test fixture); immutable thereafter
// except for the bounds inflation grid.Build applies at build time.
package scene

import (
	"fmt"

	"github.com/udd-raytracer/udd/geom"
)

// Plane is the supporting plane of a triangle in n.x + d = 0 form, with
// n unit-length and oriented by the triangle's winding (see PlaneOf).
type Plane struct {
	N geom.Vec3
	D float32
}

// Material is the subset of a glTF material this module cares about:
// the base diffuse color used for shading (an expansion-layer concern;
// grid and trace never read it).
type Material struct {
	Name    string
	Diffuse geom.Vec3 // RGB in [0,1]
}

// Triangle is an immutable triangle: three vertices, identity by index
// into the owning Scene's Triangles slice, and a precomputed plane.
type Triangle struct {
	Index         int
	V0, V1, V2    geom.Vec3
	Plane         Plane
	MaterialIndex int // -1 if none; expansion-layer only
}

// Bounds is the axis-aligned domain minimum/maximum.
type Bounds struct {
	Min, Max geom.Vec3
}

// Scene is the read-only handle the grid and traverser are built
// against. The scene must outlive any Grid built from it: the grid
// stores triangle indices, not copies.
type Scene struct {
	triangles []Triangle
	materials []Material
	bounds    Bounds
}

// New builds a Scene from raw vertex positions and a flat triangle
// index list (every three indices form one triangle), computing each
// triangle's plane from its vertices. matIndex, if non-nil, must have
// one entry per triangle; nil means no material assigned to any
// triangle.
func New(positions []geom.Vec3, indices []int, matIndex []int, materials []Material) (*Scene, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("scene: index count %d is not a multiple of 3", len(indices))
	}
	n := len(indices) / 3
	tris := make([]Triangle, 0, n)
	for i := 0; i < n; i++ {
		i0, i1, i2 := indices[3*i], indices[3*i+1], indices[3*i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(positions) || i1 >= len(positions) || i2 >= len(positions) {
			return nil, fmt.Errorf("scene: triangle %d references out-of-range vertex index", i)
		}
		v0, v1, v2 := positions[i0], positions[i1], positions[i2]
		plane, err := PlaneOf(v0, v1, v2)
		if err != nil {
			return nil, fmt.Errorf("scene: triangle %d: %w", i, err)
		}
		mi := -1
		if matIndex != nil {
			mi = matIndex[i]
		}
		tris = append(tris, Triangle{Index: i, V0: v0, V1: v1, V2: v2, Plane: plane, MaterialIndex: mi})
	}

	s := &Scene{triangles: tris, materials: materials}
	s.bounds = computeBounds(tris)
	return s, nil
}

// PlaneOf computes the unit-normal supporting plane of a triangle,
// oriented by the right-hand rule of (v1-v0) x (v2-v0).
func PlaneOf(v0, v1, v2 geom.Vec3) (Plane, error) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	n := geom.Cross(e1, e2)
	if geom.Dot(n, n) == 0 {
		return Plane{}, fmt.Errorf("degenerate triangle plane")
	}
	n = geom.Normalize(n)
	d := -geom.Dot(n, v0)
	return Plane{N: n, D: d}, nil
}

func computeBounds(tris []Triangle) Bounds {
	if len(tris) == 0 {
		return Bounds{}
	}
	min := tris[0].V0
	max := tris[0].V0
	expand := func(p geom.Vec3) {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	for _, t := range tris {
		expand(t.V0)
		expand(t.V1)
		expand(t.V2)
	}
	return Bounds{Min: min, Max: max}
}

// Triangles returns the scene's triangle array.
func (s *Scene) Triangles() []Triangle { return s.triangles }

// Triangle returns the triangle at the given index.
func (s *Scene) Triangle(i int) *Triangle { return &s.triangles[i] }

// Len returns the triangle count N.
func (s *Scene) Len() int { return len(s.triangles) }

// Bounds returns the scene's current axis-aligned domain bounds. Before
// grid.Build runs this is the tight vertex bounding box; afterward it is
// the epsilon-inflated domain grid.Build wrote back via SetBounds, per
// the scene contract in which bounds are mutable and the core owns
// their inflation.
func (s *Scene) Bounds() Bounds { return s.bounds }

// SetBounds overwrites the scene's bounds. Called by grid.Build once,
// at build time, to apply the epsilon inflation the grid builder
// performs; callers must accept the inflated values thereafter.
func (s *Scene) SetBounds(b Bounds) { s.bounds = b }

// Materials returns the scene's material table.
func (s *Scene) Materials() []Material { return s.materials }

// Material returns the material for a triangle's MaterialIndex, or a
// default mid-gray material if it has none.
func (s *Scene) Material(t *Triangle) Material {
	if t.MaterialIndex < 0 || t.MaterialIndex >= len(s.materials) {
		return Material{Diffuse: geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
	}
	return s.materials[t.MaterialIndex]
}
