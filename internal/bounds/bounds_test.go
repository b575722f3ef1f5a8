package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestExtend(t *testing.T) {
	b := New()
	assert.True(t, b.Empty())

	b.Extend(r3.Vec{X: 1, Y: 2, Z: 3})
	b.Extend(r3.Vec{X: 4, Y: 5, Z: 6})
	b.Extend(r3.Vec{X: -1, Y: 0, Z: 2})

	assert.False(t, b.Empty())
	assert.Equal(t, r3.Vec{X: -1, Y: 0, Z: 2}, b.Min)
	assert.Equal(t, r3.Vec{X: 4, Y: 5, Z: 6}, b.Max)
}

func TestCornersAndCenter(t *testing.T) {
	b := FromPoints([]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 20, Z: 30}})

	corners := b.Corners()
	assert.Equal(t, r3.Vec{}, corners[0])
	assert.Equal(t, r3.Vec{X: 10, Y: 20, Z: 30}, corners[7])
	assert.Equal(t, r3.Vec{X: 10, Y: 0, Z: 30}, corners[5])

	assert.Equal(t, r3.Vec{X: 5, Y: 10, Z: 15}, b.Center())
	assert.Equal(t, r3.Vec{X: 10, Y: 20, Z: 30}, b.Size())
	assert.Equal(t, 30.0, b.MaxDimension())
}

func TestFromCornersIsStable(t *testing.T) {
	b := FromPoints([]r3.Vec{{X: -2, Y: 1, Z: 0}, {X: 3, Y: 4, Z: 5}})
	c := b.Corners()
	again := FromPoints(c[:])
	assert.Equal(t, b, again)
}

func TestUnion(t *testing.T) {
	a := FromPoints([]r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}})
	b := FromPoints([]r3.Vec{{X: -1, Y: 2, Z: 0.5}})

	u := a.Union(b)
	assert.Equal(t, r3.Vec{X: -1, Y: 0, Z: 0}, u.Min)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 1}, u.Max)

	assert.Equal(t, a, a.Union(New()))
	assert.Equal(t, a, New().Union(a))
}

func TestDiagonal(t *testing.T) {
	b := FromPoints([]r3.Vec{{}, {X: 3, Y: 4, Z: 0}})
	assert.InDelta(t, 5.0, b.Diagonal(), 1e-12)
}
