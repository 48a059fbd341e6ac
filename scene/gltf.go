package scene

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/udd-raytracer/udd/geom"
)

// LoadGLTF reads a glTF/GLB document and builds a Scene from the
// primitives of every mesh, concatenating every primitive's triangles
// into one flat scene. This is the external scene-loading preprocessor that
// runs before the grid and trace packages ever see a Scene.
func LoadGLTF(r io.Reader) (*Scene, error) {
	doc := gltf.NewDocument()
	dec := gltf.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("scene: failed to parse glTF: %w", err)
	}

	materials := make([]Material, 0, len(doc.Materials))
	for _, mat := range doc.Materials {
		m := Material{Name: mat.Name, Diffuse: geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
		if mat.PBRMetallicRoughness != nil {
			pbr := mat.PBRMetallicRoughness
			if len(pbr.BaseColorFactor) >= 3 {
				m.Diffuse = geom.Vec3{
					X: pbr.BaseColorFactor[0],
					Y: pbr.BaseColorFactor[1],
					Z: pbr.BaseColorFactor[2],
				}
			}
		}
		materials = append(materials, m)
	}

	var positions []geom.Vec3
	var indices []int
	var matIndex []int

	for _, gltfMesh := range doc.Meshes {
		for _, primitive := range gltfMesh.Primitives {
			if err := extractPrimitive(doc, primitive, &positions, &indices, &matIndex); err != nil {
				return nil, fmt.Errorf("scene: failed to extract primitive: %w", err)
			}
		}
	}

	return New(positions, indices, matIndex, materials)
}

func extractPrimitive(doc *gltf.Document, primitive *gltf.Primitive, positions *[]geom.Vec3, indices, matIndex *[]int) error {
	posAccessor, ok := primitive.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("primitive missing POSITION attribute")
	}

	pos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
	if err != nil {
		return fmt.Errorf("failed to read positions: %w", err)
	}

	vertexOffset := len(*positions)
	for _, p := range pos {
		*positions = append(*positions, geom.Vec3FromArray(p))
	}

	materialIndex := -1
	if primitive.Material != nil {
		materialIndex = *primitive.Material
	}

	appendTriangle := func(a, b, c int) {
		*indices = append(*indices, vertexOffset+a, vertexOffset+b, vertexOffset+c)
		*matIndex = append(*matIndex, materialIndex)
	}

	if primitive.Indices != nil {
		idx, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
		if err != nil {
			return fmt.Errorf("failed to read indices: %w", err)
		}
		for i := 0; i+2 < len(idx); i += 3 {
			appendTriangle(int(idx[i]), int(idx[i+1]), int(idx[i+2]))
		}
	} else {
		for i := 0; i+2 < len(pos); i += 3 {
			appendTriangle(i, i+1, i+2)
		}
	}

	return nil
}
