// Package bounds holds axis-aligned bounding boxes in world space.
package bounds

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned bounding box. The zero value is not empty; use New
// to start an accumulation.
type Box struct {
	Min r3.Vec
	Max r3.Vec
}

// New returns an empty box that any Extend call will replace.
func New() Box {
	return Box{
		Min: r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// FromPoints returns the smallest box containing pts, for example the
// 8 world-space corners of a transformed object.
func FromPoints(pts []r3.Vec) Box {
	b := New()
	for _, p := range pts {
		b.Extend(p)
	}
	return b
}

// Extend expands the box to include a point.
func (b *Box) Extend(p r3.Vec) {
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// Union returns a box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	u := b
	u.Extend(o.Min)
	u.Extend(o.Max)
	return u
}

// Empty reports whether no point has been added.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Corners returns the 8 corner points, ordered by (x, y, z) bit pattern.
func (b Box) Corners() [8]r3.Vec {
	var c [8]r3.Vec
	for i := range c {
		p := b.Min
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		c[i] = p
	}
	return c
}

// Size returns the extent along each axis.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the mean of the 8 corners.
func (b Box) Center() r3.Vec {
	var sum r3.Vec
	for _, c := range b.Corners() {
		sum = r3.Add(sum, c)
	}
	return r3.Scale(1.0/8, sum)
}

// MaxDimension returns the largest per-axis extent.
func (b Box) MaxDimension() float64 {
	s := b.Size()
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float64 {
	return r3.Norm(b.Size())
}
