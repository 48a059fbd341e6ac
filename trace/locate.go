// Package trace implements ray-entry location into a grid.Grid and
// incremental 3D-DDA traversal that returns the nearest intersected
// triangle, invoking an externally supplied intersection predicate.
package trace

import (
	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/grid"
)

// Locate finds the grid indices of the first voxel r enters. If the
// ray's origin already lies inside the inflated domain, that's the
// entry voxel directly. Otherwise it computes the two smallest
// positive plane-crossing parameters across all axes with a non-zero
// ray component. If the ray is inside the domain midway between them,
// it entered at the smaller one. Otherwise it tests both, in order,
// against the domain — testing both protects against rounding that
// could place the smaller t just outside a second face. Returns
// ok=false ("miss") if none of these lands inside.
func Locate(g *grid.Grid, r geom.Ray) (idx [3]int, ok bool) {
	if insideDomain(g, r.Origin) {
		return voxelIndex(g, r.Origin), true
	}

	t1, t2, any := twoSmallestPositiveCrossings(g, r)
	if !any {
		return [3]int{}, false
	}

	// Inside the domain between the first two crossings: the ray entered
	// at t1, even when the point at t1 lies on (or rounds just past) the
	// face it crosses. voxelIndex clamps that point into the grid.
	if insideDomain(g, r.At((t1+t2)/2)) {
		return voxelIndex(g, r.At(t1)), true
	}
	if p := r.At(t1); insideDomain(g, p) {
		return voxelIndex(g, p), true
	}
	if t2 > 0 {
		if p := r.At(t2); insideDomain(g, p) {
			return voxelIndex(g, p), true
		}
	}
	return [3]int{}, false
}

func insideDomain(g *grid.Grid, p geom.Vec3) bool {
	return p.X >= g.Dmin.X && p.X < g.Dmax.X &&
		p.Y >= g.Dmin.Y && p.Y < g.Dmax.Y &&
		p.Z >= g.Dmin.Z && p.Z < g.Dmax.Z
}

func voxelIndex(g *grid.Grid, p geom.Vec3) [3]int {
	i := int((p.X - g.Dmin.X) / g.S[0])
	j := int((p.Y - g.Dmin.Y) / g.S[1])
	k := int((p.Z - g.Dmin.Z) / g.S[2])
	return clampIdx(g, [3]int{i, j, k})
}

func clampIdx(g *grid.Grid, idx [3]int) [3]int {
	for a := 0; a < 3; a++ {
		if idx[a] < 0 {
			idx[a] = 0
		}
		if idx[a] >= g.NV[a] {
			idx[a] = g.NV[a] - 1
		}
	}
	return idx
}

// twoSmallestPositiveCrossings computes, for every axis with a non-zero
// ray component, the two plane-crossing parameters t_lo and t_hi
// against the domain's slab on that axis, keeps only the positive ones,
// and returns the two globally smallest (t1 <= t2). any is false if no
// axis produced a positive crossing (the ray points away from the
// domain on every axis it could cross).
func twoSmallestPositiveCrossings(g *grid.Grid, r geom.Ray) (t1, t2 float32, any bool) {
	t1, t2 = posInf, posInf

	consider := func(t float32) {
		if t <= 0 {
			return
		}
		if t < t1 {
			t1, t2 = t, t1
		} else if t < t2 {
			t2 = t
		}
	}

	for a := 0; a < 3; a++ {
		dir := r.Dir.Get(a)
		if dir == 0 {
			continue
		}
		origin := r.Origin.Get(a)
		tLo := (g.Dmin.Get(a) - origin) / dir
		tHi := (g.Dmax.Get(a) - origin) / dir
		consider(tLo)
		consider(tHi)
	}

	return t1, t2, t1 < posInf
}
