package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	captionPad = 4
	ellipsis   = "..."
)

// Caption draws text in the bottom-left corner over a translucent strip.
// Text too wide for the image is cut and ends in "...". The input image is
// not modified.
func Caption(img *image.NRGBA, text string, fg color.Color) *image.NRGBA {
	if text == "" {
		return img
	}
	out := image.NewNRGBA(img.Bounds())
	copy(out.Pix, img.Pix)

	face := basicfont.Face7x13
	b := out.Bounds()
	text = fitText(text, b.Dx()-2*captionPad)
	lineH := face.Metrics().Height.Ceil()
	strip := image.Rect(b.Min.X, b.Max.Y-lineH-2*captionPad, b.Max.X, b.Max.Y)
	draw.Draw(out, strip, image.NewUniform(color.NRGBA{A: 128}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(b.Min.X+captionPad, b.Max.Y-captionPad-face.Metrics().Descent.Ceil()),
	}
	d.DrawString(text)
	return out
}

// fitText shortens text until it fits in width pixels.
func fitText(text string, width int) string {
	if TextWidth(text) <= width {
		return text
	}
	r := []rune(text)
	for len(r) > 0 && TextWidth(string(r)+ellipsis) > width {
		r = r[:len(r)-1]
	}
	if len(r) == 0 {
		return ""
	}
	return string(r) + ellipsis
}

// TextWidth returns the rendered width of text in pixels.
func TextWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
