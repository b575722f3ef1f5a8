// Package gltfmesh imports triangle geometry from glTF / GLB files.
package gltfmesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/mathutil"
	"stillshot/internal/mesh"
)

// Load opens a .gltf or .glb file and returns one mesh per node that
// references a mesh, with node transforms baked into the vertices.
func Load(path string) ([]*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf: open %s: %w", path, err)
	}
	meshes, err := FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf: %s: %w", path, err)
	}
	return meshes, nil
}

// FromDocument walks the default scene (or every root node if none is set).
func FromDocument(doc *gltf.Document) ([]*mesh.Mesh, error) {
	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		for i := range doc.Nodes {
			roots = append(roots, i)
		}
	}

	var out []*mesh.Mesh
	var visit func(idx int, parent mathutil.Mat4, depth int) error
	visit = func(idx int, parent mathutil.Mat4, depth int) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node index %d out of range", idx)
		}
		if depth > 64 {
			return fmt.Errorf("node hierarchy too deep at node %d", idx)
		}
		node := doc.Nodes[idx]
		world := mathutil.Mat4Mul(parent, nodeTransform(node))

		if node.Mesh != nil {
			m, err := readMesh(doc, *node.Mesh, world)
			if err != nil {
				return err
			}
			if m.Name == "" {
				m.Name = node.Name
			}
			out = append(out, m)
		}
		for _, child := range node.Children {
			if err := visit(child, world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range roots {
		if err := visit(r, mathutil.Mat4Identity(), 0); err != nil {
			return nil, err
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no mesh nodes")
	}
	return out, nil
}

func readMesh(doc *gltf.Document, idx int, world mathutil.Mat4) (*mesh.Mesh, error) {
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", idx)
	}
	src := doc.Meshes[idx]
	m := mesh.New(src.Name)

	var posBuf [][3]float32
	var idxBuf []uint32
	for pi, prim := range src.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return nil, fmt.Errorf("mesh %q primitive %d: no POSITION attribute", src.Name, pi)
		}
		pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], posBuf)
		if err != nil {
			return nil, fmt.Errorf("mesh %q primitive %d: positions: %w", src.Name, pi, err)
		}
		posBuf = pos

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], idxBuf)
			if err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: indices: %w", src.Name, pi, err)
			}
			idxBuf = indices
		} else {
			indices = make([]uint32, len(pos))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			var tri mesh.Triangle
			for k := 0; k < 3; k++ {
				vi := int(indices[i+k])
				if vi >= len(pos) {
					return nil, fmt.Errorf("mesh %q primitive %d: index %d out of range", src.Name, pi, vi)
				}
				p := pos[vi]
				tri.V[k] = world.MulPoint(r3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
			}
			m.Triangles = append(m.Triangles, tri)
		}
	}
	return m, nil
}

// nodeTransform returns the node's local matrix. An explicit non-identity
// matrix wins; otherwise T @ R @ S, treating zero rotation/scale as unset.
func nodeTransform(n *gltf.Node) mathutil.Mat4 {
	var zero [16]float64
	mat := n.Matrix
	if mat != zero && !isIdentityColMajor(mat) {
		// glTF matrices are column-major.
		var m mathutil.Mat4
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				m[r*4+c] = mat[c*4+r]
			}
		}
		return m
	}

	q := mathutil.Quat(n.Rotation)
	if q == (mathutil.Quat{}) {
		q = mathutil.Quat{0, 0, 0, 1}
	}
	s := n.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	rs := mathutil.Mat3Mul(mathutil.QuatToMat3(q.Normalize()), mathutil.Mat3Diag(s[0], s[1], s[2]))
	t := r3.Vec{X: n.Translation[0], Y: n.Translation[1], Z: n.Translation[2]}
	return mathutil.FromMat3Translation(rs, t)
}

func isIdentityColMajor(m [16]float64) bool {
	return mathutil.Mat4(m).IsIdentity()
}
