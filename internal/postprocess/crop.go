package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// OpaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. It is empty for a fully transparent image.
func OpaqueBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+b.Dx()*4]
		first, last := -1, -1
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0 {
				if first < 0 {
					first = i / 4
				}
				last = i / 4
			}
		}
		if first >= 0 {
			r = r.Union(image.Rect(b.Min.X+first, y, b.Min.X+last+1, y+1))
		}
	}
	return r
}

// Fit rescales the opaque content of img so it spans fill of the canvas on
// its tighter axis, centered on a canvas of the same size. Transparent
// images and a non-positive fill return img unchanged.
func Fit(img *image.NRGBA, fill float64) *image.NRGBA {
	content := OpaqueBounds(img)
	if content.Empty() || !(fill > 0) {
		return img
	}
	b := img.Bounds()
	k := math.Min(
		float64(b.Dx())*fill/float64(content.Dx()),
		float64(b.Dy())*fill/float64(content.Dy()),
	)
	w := min(max(int(math.Round(float64(content.Dx())*k)), 1), b.Dx())
	h := min(max(int(math.Round(float64(content.Dy())*k)), 1), b.Dy())

	at := b.Min.Add(image.Pt((b.Dx()-w)/2, (b.Dy()-h)/2))
	out := image.NewNRGBA(b)
	draw.CatmullRom.Scale(out, image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}, img, content, draw.Src, nil)
	return out
}
