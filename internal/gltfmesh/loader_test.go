package gltfmesh

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func triangleDoc() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	doc.Nodes = []*gltf.Node{
		{Name: "parent", Translation: [3]float64{10, 0, 0}, Children: []int{1}},
		{Name: "child", Mesh: gltf.Index(0), Scale: [3]float64{2, 2, 2}},
	}
	doc.Scenes[0].Nodes = []int{0}
	return doc
}

func TestFromDocumentBakesTransforms(t *testing.T) {
	meshes, err := FromDocument(triangleDoc())
	require.NoError(t, err)
	require.Len(t, meshes, 1)

	m := meshes[0]
	assert.Equal(t, "tri", m.Name)
	require.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, r3.Vec{X: 10}, m.Triangles[0].V[0])
	assert.Equal(t, r3.Vec{X: 12}, m.Triangles[0].V[1])
	assert.Equal(t, r3.Vec{X: 10, Y: 2}, m.Triangles[0].V[2])
}

func TestLoadGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(triangleDoc(), path))

	meshes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, meshes, 1)
	assert.Equal(t, 1, meshes[0].TriangleCount())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.glb"))
	assert.ErrorContains(t, err, "gltf: open")
}

func TestNoMeshNodes(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Nodes = []*gltf.Node{{Name: "empty"}}
	doc.Scenes[0].Nodes = []int{0}
	_, err := FromDocument(doc)
	assert.ErrorContains(t, err, "no mesh nodes")
}

func TestNodeTransformMatrix(t *testing.T) {
	n := &gltf.Node{Matrix: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		3, 4, 5, 1,
	}}
	m := nodeTransform(n)
	assert.Equal(t, r3.Vec{X: 3, Y: 4, Z: 5}, m.MulPoint(r3.Vec{}))
}
