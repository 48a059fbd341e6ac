package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udd-raytracer/udd/geom"
)

func unitTriangleXY() []geom.Vec3 {
	return []geom.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
}

func TestNewComputesPlane(t *testing.T) {
	scn, err := New(unitTriangleXY(), []int{0, 1, 2}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, scn.Len())

	tri := scn.Triangle(0)
	// plane equation must hold at all three vertices to within tolerance
	for _, v := range []geom.Vec3{tri.V0, tri.V1, tri.V2} {
		sigma := geom.Dot(tri.Plane.N, v) + tri.Plane.D
		assert.InDelta(t, 0, sigma, 1e-5)
	}
	assert.InDelta(t, 1.0, geom.Length(tri.Plane.N), 1e-6)
}

func TestNewRejectsBadIndexCount(t *testing.T) {
	_, err := New(unitTriangleXY(), []int{0, 1}, nil, nil)
	assert.Error(t, err)
}

func TestNewRejectsOutOfRangeIndex(t *testing.T) {
	_, err := New(unitTriangleXY(), []int{0, 1, 5}, nil, nil)
	assert.Error(t, err)
}

func TestNewRejectsDegenerateTriangle(t *testing.T) {
	degenerate := []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	_, err := New(degenerate, []int{0, 1, 2}, nil, nil)
	assert.Error(t, err)
}

func TestBoundsSpanAllVertices(t *testing.T) {
	positions := []geom.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{-1, 2, 0.5}, {3, -1, -2}, {0, 0, 1},
	}
	scn, err := New(positions, []int{0, 1, 2, 3, 4, 5}, nil, nil)
	require.NoError(t, err)

	b := scn.Bounds()
	assert.Equal(t, geom.Vec3{X: -1, Y: -1, Z: -2}, b.Min)
	assert.Equal(t, geom.Vec3{X: 3, Y: 2, Z: 1}, b.Max)
}

func TestMaterialFallsBackToGray(t *testing.T) {
	scn, err := New(unitTriangleXY(), []int{0, 1, 2}, nil, nil)
	require.NoError(t, err)
	mat := scn.Material(scn.Triangle(0))
	assert.Equal(t, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, mat.Diffuse)
}

func TestSetBoundsOverwrites(t *testing.T) {
	scn, err := New(unitTriangleXY(), []int{0, 1, 2}, nil, nil)
	require.NoError(t, err)
	scn.SetBounds(Bounds{Min: geom.Vec3{X: -1, Y: -1, Z: -1}, Max: geom.Vec3{X: 2, Y: 2, Z: 2}})
	b := scn.Bounds()
	assert.Equal(t, float32(-1), b.Min.X)
	assert.Equal(t, float32(2), b.Max.X)
}
