package raster

import (
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // inverse depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a color buffer filled with bg and a -inf z-buffer.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	pix := make([]uint8, n*4)
	if bg != (color.NRGBA{}) {
		for i := 0; i < n; i++ {
			pix[i*4] = bg.R
			pix[i*4+1] = bg.G
			pix[i*4+2] = bg.B
			pix[i*4+3] = bg.A
		}
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  pix,
		ZBuf:   zbuf,
	}
}

// Covered returns the number of pixels written by geometry.
func (fb *FrameBuffer) Covered() int {
	n := 0
	for _, z := range fb.ZBuf {
		if !math.IsInf(z, -1) {
			n++
		}
	}
	return n
}
