package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

const maxColors = 256

// Quantize returns m as a paletted image using no more than colors
// colors. Images that are already paletted and within the budget are
// returned as-is.
func Quantize(m image.Image, colors int) *image.Paletted {
	if colors < 1 || colors > maxColors {
		colors = maxColors
	}

	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= colors {
		return pm
	}

	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// Encode writes m to w in the named format; "png", "gif" or "bmp".
// GIF output is quantized to at most 256 colors first.
func Encode(w io.Writer, m image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, m)
	case "gif":
		return gif.Encode(w, Quantize(m, maxColors), nil)
	case "bmp":
		return bmp.Encode(w, m)
	default:
		return fmt.Errorf("sheet: unsupported format %q", format)
	}
}
