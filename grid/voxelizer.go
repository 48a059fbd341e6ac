package grid

import (
	"github.com/chewxy/math32"

	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/scene"
)

// Voxelize assigns every triangle of scn to the voxels it conservatively
// overlaps: compute the candidate AABB of voxels from
// the triangle's vertex voxel coordinates, then either fast-path a
// single voxel or evaluate the triangle's plane at all eight corners of
// each candidate voxel, inserting wherever the eight signed distances
// do not all share one strict sign.
func Voxelize(g *Grid, scn *scene.Scene) {
	for i := range scn.Triangles() {
		t := scn.Triangle(i)
		voxelizeTriangle(g, t)
	}
}

func (g *Grid) voxelCoord(p geom.Vec3) [3]int {
	return [3]int{
		int(math32.Floor((p.X - g.Dmin.X) / g.S[0])),
		int(math32.Floor((p.Y - g.Dmin.Y) / g.S[1])),
		int(math32.Floor((p.Z - g.Dmin.Z) / g.S[2])),
	}
}

func voxelizeTriangle(g *Grid, t *scene.Triangle) {
	c0 := g.voxelCoord(t.V0)
	c1 := g.voxelCoord(t.V1)
	c2 := g.voxelCoord(t.V2)

	var lo, hi [3]int
	for a := 0; a < 3; a++ {
		lo[a] = min3(c0[a], c1[a], c2[a])
		hi[a] = max3(c0[a], c1[a], c2[a])
		lo[a] = clamp(lo[a], 0, g.NV[a]-1)
		hi[a] = clamp(hi[a], 0, g.NV[a]-1)
	}

	if lo == hi {
		g.VoxelAt(lo[0], lo[1], lo[2]).insert(t.Index)
		return
	}

	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				if voxelCrossesPlane(g, t, i, j, k) {
					g.VoxelAt(i, j, k).insert(t.Index)
				}
			}
		}
	}
}

// voxelCrossesPlane evaluates sigma(p) = n.p + d at the eight genuine
// corners of voxel (i,j,k)'s AABB [x1,x2]x[y1,y2]x[z1,z2] (no
// axis-swapped corner construction). It returns
// true unless all eight share one strict sign, in which case the
// triangle's plane does not cross the voxel and it is conservatively
// excluded.
func voxelCrossesPlane(g *Grid, t *scene.Triangle, i, j, k int) bool {
	x1 := g.Dmin.X + float32(i)*g.S[0]
	y1 := g.Dmin.Y + float32(j)*g.S[1]
	z1 := g.Dmin.Z + float32(k)*g.S[2]
	x2 := g.Dmin.X + float32(i+1)*g.S[0]
	y2 := g.Dmin.Y + float32(j+1)*g.S[1]
	z2 := g.Dmin.Z + float32(k+1)*g.S[2]

	corners := [8]geom.Vec3{
		{x1, y1, z1}, {x2, y1, z1}, {x1, y2, z1}, {x2, y2, z1},
		{x1, y1, z2}, {x2, y1, z2}, {x1, y2, z2}, {x2, y2, z2},
	}

	n, d := t.Plane.N, t.Plane.D
	sign0 := sigma(n, d, corners[0])
	allSame := true
	for _, c := range corners[1:] {
		s := sigma(n, d, c)
		if (s > 0) != (sign0 > 0) || s == 0 || sign0 == 0 {
			allSame = false
			break
		}
	}
	return !allSame
}

func sigma(n geom.Vec3, d float32, p geom.Vec3) float32 {
	return geom.Dot(n, p) + d
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
