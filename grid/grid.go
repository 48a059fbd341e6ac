// Package grid implements Uniform Domain Division: partitioning a
// scene's bounding box into a regular voxel grid, and the conservative
// triangle-to-voxel assignment (voxelization) that populates it. See
// the trace package for ray entry location and 3D-DDA traversal over
// the grid this package builds.
package grid

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/internal/logging"
	"github.com/udd-raytracer/udd/scene"
)

// epsilon is the bounds-inflation and extent-safety-margin constant.
// It must be applied before grid sizing so voxel size is consistent
// with the indexing used during voxelization; any re-derivation of
// bounds from vertices must include the same value.
const epsilon = 1e-3

// growthChunk is the additive growth increment for a voxel's triangle
// index list: start unallocated, allocate growthChunk on first insert,
// grow by growthChunk on overflow. Additive (not doubling) growth
// matches the expected small, bounded per-voxel count the cube-root
// density heuristic targets.
const growthChunk = 10

// ErrDegenerateExtent is returned when the scene bounds, even after
// epsilon inflation, are inverted on some axis although triangles
// exist — a precondition violation the builder is not strictly
// required to detect, but which it chooses to surface rather than
// silently produce a grid with non-finite voxel sizes. A flat axis of
// zero raw extent is not degenerate: inflation gives it width
// 2*epsilon.
var ErrDegenerateExtent = fmt.Errorf("grid: scene bounds are degenerate")

// Grid is the triple (nv, s, voxels): resolution, per-axis voxel
// size, and the linearized voxel array. The grid
// exclusively owns voxels; each Voxel owns its triangle-index list;
// those indices are non-owning references into the Scene that built
// the grid, which must outlive it.
type Grid struct {
	NV     [3]int     // resolution (nx, ny, nz)
	S      [3]float32 // per-axis voxel size
	Dmin   geom.Vec3  // inflated domain minimum
	Dmax   geom.Vec3  // inflated domain maximum
	voxels []Voxel
}

// Voxel is an ordered, append-only collection of triangle indices.
// Insertion order is not semantically meaningful to the traverser,
// which selects by nearest distance, not by order.
type Voxel struct {
	tris []int
}

// Triangles returns the triangle indices assigned to this voxel.
func (v *Voxel) Triangles() []int { return v.tris }

func (v *Voxel) insert(triIdx int) {
	if v.tris == nil {
		v.tris = make([]int, 0, growthChunk)
	} else if len(v.tris) == cap(v.tris) {
		grown := make([]int, len(v.tris), cap(v.tris)+growthChunk)
		copy(grown, v.tris)
		v.tris = grown
	}
	v.tris = append(v.tris, triIdx)
}

// Idx computes the fixed row-major-like linear index of voxel (i,j,k).
func (g *Grid) Idx(i, j, k int) int {
	return (i*g.NV[1]+j)*g.NV[2] + k
}

// InBounds reports whether (i,j,k) is a valid voxel coordinate.
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.NV[0] && j >= 0 && j < g.NV[1] && k >= 0 && k < g.NV[2]
}

// VoxelAt returns the voxel at (i,j,k). The caller must ensure the
// coordinate is in bounds.
func (g *Grid) VoxelAt(i, j, k int) *Voxel {
	return &g.voxels[g.Idx(i, j, k)]
}

// Len returns the total voxel count nx*ny*nz.
func (g *Grid) Len() int { return len(g.voxels) }

// Build computes grid resolution and voxel size from the scene's
// extent and triangle count, inflates and writes back the scene's
// bounds, and allocates the (initially empty) voxel array.
// It does not voxelize triangles — call Voxelize afterward.
func Build(scn *scene.Scene) (*Grid, error) {
	b := scn.Bounds()
	n := scn.Len()

	if n == 0 {
		// S6: empty grid. A single nominal voxel keeps every downstream
		// invariant (nv[a] >= 1, s[a] > 0) intact without fabricating
		// scene geometry.
		dmin := b.Min.Sub(geom.Vec3{X: epsilon, Y: epsilon, Z: epsilon})
		dmax := b.Max.Add(geom.Vec3{X: epsilon, Y: epsilon, Z: epsilon})
		if b.Max.X <= b.Min.X {
			dmax.X = dmin.X + 1
		}
		if b.Max.Y <= b.Min.Y {
			dmax.Y = dmin.Y + 1
		}
		if b.Max.Z <= b.Min.Z {
			dmax.Z = dmin.Z + 1
		}
		scn.SetBounds(scene.Bounds{Min: dmin, Max: dmax})
		g := &Grid{
			NV:     [3]int{1, 1, 1},
			S:      [3]float32{dmax.X - dmin.X, dmax.Y - dmin.Y, dmax.Z - dmin.Z},
			Dmin:   dmin,
			Dmax:   dmax,
			voxels: make([]Voxel, 1),
		}
		return g, nil
	}

	dmin := b.Min.Sub(geom.Vec3{X: epsilon, Y: epsilon, Z: epsilon})
	dmax := b.Max.Add(geom.Vec3{X: epsilon, Y: epsilon, Z: epsilon})

	for a := 0; a < 3; a++ {
		if dmax.Get(a) <= dmin.Get(a) {
			return nil, ErrDegenerateExtent
		}
	}
	scn.SetBounds(scene.Bounds{Min: dmin, Max: dmax})

	ds := [3]float32{
		dmax.X - dmin.X + epsilon,
		dmax.Y - dmin.Y + epsilon,
		dmax.Z - dmin.Z + epsilon,
	}

	volume := ds[0] * ds[1] * ds[2]
	density := math32.Cbrt(float32(n)/volume) + epsilon

	var nv [3]int
	var s [3]float32
	for a := 0; a < 3; a++ {
		nv[a] = int(math32.Ceil(ds[a] * density))
		if nv[a] < 1 {
			nv[a] = 1
		}
		s[a] = ds[a] / float32(nv[a])
	}

	total := nv[0] * nv[1] * nv[2]
	logging.Get().Debug().
		Int("triangles", n).
		Ints("resolution", nv[:]).
		Floats32("voxelSize", s[:]).
		Int("voxelCount", total).
		Msg("grid: built")

	return &Grid{
		NV:     nv,
		S:      s,
		Dmin:   dmin,
		Dmax:   dmax,
		voxels: make([]Voxel, total),
	}, nil
}
