package trace

import (
	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/grid"
	"github.com/udd-raytracer/udd/scene"
)

// Predicate is the external, pluggable intersection test the
// traverser requires: pure and thread-safe, returning whether r hits triangle t
// and at what positive parametric distance. The traverser never
// constructs one itself — callers inject it (e.g. kernel.MollerTrumbore).
type Predicate func(t *scene.Triangle, r geom.Ray) (dist float32, hit bool)

// Hit is the traverser's result: the triangle struck and the world-space
// intersection point.
type Hit struct {
	Triangle *scene.Triangle
	Point    geom.Vec3
	Dist     float32
}

const posInf = float32(1e30)

// axis stepping state for the DDA loop.
type axisState struct {
	step int
	t    float32 // parameter of the next perpendicular-plane crossing
	dt   float32 // parametric distance between successive crossings
}

// Traverse walks the grid front-to-back along r starting at entry,
// invoking predicate on every triangle of every voxel it visits
// (skipping the triangle at index current, if current >= 0), and
// returns the nearest hit. ok is false if the ray exits the grid
// without an accepted hit ("no hit").
func Traverse(g *grid.Grid, scn *scene.Scene, r geom.Ray, entry [3]int, current int, predicate Predicate) (Hit, bool) {
	idx := entry
	axes := [3]axisState{}
	for a := 0; a < 3; a++ {
		axes[a] = initAxis(g, r, idx, a)
	}

	for {
		if best, ok := intersectVoxel(g, scn, idx, r, current, predicate, axes); ok {
			return best, true
		}

		// Step: advance across the nearest upcoming plane, ties broken by
		// fixed axis priority x < y < z for determinism.
		stepAxis := 0
		for a := 1; a < 3; a++ {
			if axes[a].t < axes[stepAxis].t {
				stepAxis = a
			}
		}

		idx[stepAxis] += axes[stepAxis].step
		if idx[stepAxis] < 0 || idx[stepAxis] >= g.NV[stepAxis] {
			return Hit{}, false
		}
		axes[stepAxis].t += axes[stepAxis].dt
	}
}

func initAxis(g *grid.Grid, r geom.Ray, entry [3]int, a int) axisState {
	dir := r.Dir.Get(a)
	if dir == 0 {
		// This axis never crosses a perpendicular plane, so it must never
		// constrain the voxel's exit parameter or win axis-priority
		// selection in the step loop.
		return axisState{step: 0, t: posInf, dt: posInf}
	}

	step := 1
	if dir < 0 {
		step = -1
	}

	voxMin := g.Dmin.Get(a) + float32(entry[a])*g.S[a]
	voxMax := voxMin + g.S[a]

	origin := r.Origin.Get(a)
	tLo := (voxMin - origin) / dir
	tHi := (voxMax - origin) / dir
	if tLo > tHi {
		tLo, tHi = tHi, tLo
	}

	return axisState{step: step, t: tHi, dt: g.S[a] / abs32(dir)}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// intersectVoxel tests every triangle referenced by the voxel at idx
// (other than current), keeping the nearest hit whose distance does
// not exceed the voxel's parametric exit: the smallest of the three
// axes' next crossing parameters, so a hit in a later voxel is never
// accepted here out of order.
func intersectVoxel(g *grid.Grid, scn *scene.Scene, idx [3]int, r geom.Ray, current int, predicate Predicate, axes [3]axisState) (Hit, bool) {
	exit := axes[0].t
	for a := 1; a < 3; a++ {
		if axes[a].t < exit {
			exit = axes[a].t
		}
	}

	voxel := g.VoxelAt(idx[0], idx[1], idx[2])
	best := Hit{Dist: posInf}
	found := false

	for _, triIdx := range voxel.Triangles() {
		if triIdx == current {
			continue
		}
		tri := scn.Triangle(triIdx)
		d, hit := predicate(tri, r)
		if !hit || d <= 0 || d > exit {
			continue
		}
		if !found || d < best.Dist {
			best = Hit{Triangle: tri, Point: r.At(d), Dist: d}
			found = true
		}
	}

	return best, found
}
