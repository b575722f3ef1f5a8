// Package mesh holds triangle meshes in world space.
package mesh

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/bounds"
)

// DefaultColor is the base albedo for meshes without an explicit color.
var DefaultColor = color.NRGBA{R: 160, G: 160, B: 170, A: 255}

// Triangle is one face. Normal may be zero; FaceNormal then derives it
// from the winding.
type Triangle struct {
	V      [3]r3.Vec
	Normal r3.Vec
}

// FaceNormal returns the stored normal if set, otherwise the unit normal
// from (V1-V0) × (V2-V0). Degenerate faces return the zero vector.
func (t Triangle) FaceNormal() r3.Vec {
	if r3.Norm(t.Normal) > 1e-12 {
		return r3.Unit(t.Normal)
	}
	n := r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0]))
	if r3.Norm(n) < 1e-12 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	return r3.Norm(r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0]))) / 2
}

// Mesh is a named triangle soup with a flat base color.
type Mesh struct {
	Name      string
	Triangles []Triangle
	Color     color.NRGBA
}

// New creates an empty mesh with the default color.
func New(name string) *Mesh {
	return &Mesh{Name: name, Color: DefaultColor}
}

// AddTriangle appends a face built from three vertices.
func (m *Mesh) AddTriangle(a, b, c r3.Vec) {
	m.Triangles = append(m.Triangles, Triangle{V: [3]r3.Vec{a, b, c}})
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the world-space bounding box of all vertices.
func (m *Mesh) Bounds() bounds.Box {
	b := bounds.New()
	for _, t := range m.Triangles {
		for _, v := range t.V {
			b.Extend(v)
		}
	}
	return b
}

// SurfaceArea returns the summed area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// Scale multiplies every vertex by f in place.
func (m *Mesh) Scale(f float64) {
	for i := range m.Triangles {
		for k := range m.Triangles[i].V {
			m.Triangles[i].V[k] = r3.Scale(f, m.Triangles[i].V[k])
		}
	}
}

// Translate moves every vertex by d in place.
func (m *Mesh) Translate(d r3.Vec) {
	for i := range m.Triangles {
		for k := range m.Triangles[i].V {
			m.Triangles[i].V[k] = r3.Add(m.Triangles[i].V[k], d)
		}
	}
}

// Merge concatenates meshes into one named mesh, keeping the first color.
func Merge(name string, parts ...*Mesh) *Mesh {
	out := New(name)
	for i, p := range parts {
		if i == 0 {
			out.Color = p.Color
		}
		out.Triangles = append(out.Triangles, p.Triangles...)
	}
	return out
}
