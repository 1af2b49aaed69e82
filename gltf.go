package velvet

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file as a triangle mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertex := func(i uint32) Vertex {
				var v Vertex
				v.Position = mgl64.Vec3{float64(positions[i][0]), float64(positions[i][1]), float64(positions[i][2])}
				if int(i) < len(normals) {
					v.Normal = mgl64.Vec3{float64(normals[i][0]), float64(normals[i][1]), float64(normals[i][2])}
				}
				if int(i) < len(texCoords) {
					v.Texture = mgl64.Vec2{float64(texCoords[i][0]), float64(texCoords[i][1])}
				}
				return v
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{
					V1: vertex(indices[i]),
					V2: vertex(indices[i+1]),
					V3: vertex(indices[i+2]),
				}
				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("velvet: no triangles found in %s", path)
	}

	return NewTriangleMesh(allTriangles), nil
}
