package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udd-raytracer/udd/geom"
)

func TestLoadGLTFRejectsGarbage(t *testing.T) {
	_, err := LoadGLTF(strings.NewReader("not a glTF document"))
	assert.Error(t, err)
}

// twoPrimitiveGLTF is a hand-built, two-primitive, two-material document:
// primitive 0 is an indexed triangle (material "red"), primitive 1 is a
// flat non-indexed triangle list of two triangles (material "green"). It
// exists to exercise vertexOffset accumulation across primitives, both
// the indexed and flat-list branches of extractPrimitive, and
// BaseColorFactor extraction in one fixture.
const twoPrimitiveGLTF = `{
  "asset": {"version": "2.0"},
  "materials": [
    {"name": "red", "pbrMetallicRoughness": {"baseColorFactor": [1.0, 0.0, 0.0, 1.0]}},
    {"name": "green", "pbrMetallicRoughness": {"baseColorFactor": [0.0, 1.0, 0.0, 1.0]}}
  ],
  "buffers": [
    {"byteLength": 114, "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIAAAAAQAAAAAAAAAAAAABAQAAAAAAAAAAAAAAAQAAAgD8AAAAAAAAAQAAAAAAAAIA/AABAQAAAAAAAAIA/AAAAQAAAgD8AAIA/"}
  ],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36, "target": 34962},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963},
    {"buffer": 0, "byteOffset": 42, "byteLength": 72, "target": 34962}
  ],
  "accessors": [
    {"bufferView": 0, "byteOffset": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "byteOffset": 0, "componentType": 5123, "count": 3, "type": "SCALAR", "min": [0], "max": [2]},
    {"bufferView": 2, "byteOffset": 0, "componentType": 5126, "count": 6, "type": "VEC3", "min": [2, 0, 0], "max": [3, 1, 1]}
  ],
  "meshes": [
    {
      "primitives": [
        {"attributes": {"POSITION": 0}, "indices": 1, "material": 0},
        {"attributes": {"POSITION": 2}, "material": 1}
      ]
    }
  ]
}`

func TestLoadGLTFRoundTrip(t *testing.T) {
	scn, err := LoadGLTF(strings.NewReader(twoPrimitiveGLTF))
	require.NoError(t, err)

	// 1 indexed triangle from primitive 0 + 2 flat-list triangles from
	// primitive 1.
	require.Equal(t, 3, scn.Len())

	require.Len(t, scn.Materials(), 2)
	assert.Equal(t, geom.Vec3{X: 1, Y: 0, Z: 0}, scn.Materials()[0].Diffuse)
	assert.Equal(t, geom.Vec3{X: 0, Y: 1, Z: 0}, scn.Materials()[1].Diffuse)

	tri0 := scn.Triangle(0)
	assert.Equal(t, 0, tri0.MaterialIndex)
	assert.Equal(t, geom.Vec3{X: 0, Y: 0, Z: 0}, tri0.V0)

	// These two must land on primitive 1's vertices, offset past
	// primitive 0's 3 vertices — if vertexOffset accumulation is wrong,
	// these triangles silently reference primitive 0's geometry instead.
	tri1 := scn.Triangle(1)
	assert.Equal(t, 1, tri1.MaterialIndex)
	assert.Equal(t, geom.Vec3{X: 2, Y: 0, Z: 0}, tri1.V0)

	tri2 := scn.Triangle(2)
	assert.Equal(t, 1, tri2.MaterialIndex)
	assert.Equal(t, geom.Vec3{X: 2, Y: 0, Z: 1}, tri2.V0)
}
