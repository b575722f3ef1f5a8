// Package output writes rendered images, picking the encoder from the file
// extension.
package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// FormatFor maps a path's extension to a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	}
	return "", fmt.Errorf("output: unsupported image format %q", filepath.Ext(path))
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("output: unsupported image format %q", f)
}

// Save encodes img to path, creating parent directories.
func Save(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return out.Close()
}
