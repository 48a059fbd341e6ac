package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/scene"
)

func triangle(t *testing.T, v0, v1, v2 geom.Vec3) *scene.Triangle {
	t.Helper()
	scn, err := scene.New([]geom.Vec3{v0, v1, v2}, []int{0, 1, 2}, nil, nil)
	require.NoError(t, err)
	return scn.Triangle(0)
}

func TestMollerTrumboreHit(t *testing.T) {
	tri := triangle(t, geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0})
	r := geom.Ray{Origin: geom.Vec3{0.25, 0.25, 1}, Dir: geom.Vec3{0, 0, -1}}

	d, hit := MollerTrumbore(tri, r)
	require.True(t, hit)
	assert.InDelta(t, 1.0, d, 1e-5)

	p := r.At(d)
	assert.InDelta(t, 0.25, p.X, 1e-5)
	assert.InDelta(t, 0.25, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}

func TestMollerTrumboreMissOutsideTriangle(t *testing.T) {
	tri := triangle(t, geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0})
	r := geom.Ray{Origin: geom.Vec3{5, 5, 1}, Dir: geom.Vec3{0, 0, -1}}
	_, hit := MollerTrumbore(tri, r)
	assert.False(t, hit)
}

func TestMollerTrumboreMissBehindRay(t *testing.T) {
	tri := triangle(t, geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0})
	r := geom.Ray{Origin: geom.Vec3{0.25, 0.25, -1}, Dir: geom.Vec3{0, 0, -1}}
	_, hit := MollerTrumbore(tri, r)
	assert.False(t, hit)
}

func TestMollerTrumboreParallelRay(t *testing.T) {
	tri := triangle(t, geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0})
	r := geom.Ray{Origin: geom.Vec3{0.25, 0.25, 1}, Dir: geom.Vec3{1, 0, 0}}
	_, hit := MollerTrumbore(tri, r)
	assert.False(t, hit)
}
