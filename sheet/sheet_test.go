package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qtex/iconset"
)

func solidCell(w, h int, c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func TestComposeInvalid(t *testing.T) {
	cell := solidCell(4, 4, color.RGBA{A: 0xff})

	tables := []struct {
		name          string
		cells         []image.Image
		columns, rows int
		w, h          int
	}{
		{"zero columns", []image.Image{cell}, 0, 1, 4, 4},
		{"zero rows", []image.Image{cell}, 1, 0, 4, 4},
		{"zero cell width", []image.Image{cell}, 1, 1, 0, 4},
		{"zero cell height", []image.Image{cell}, 1, 1, 4, 0},
		{"too many cells", []image.Image{cell, cell}, 1, 1, 4, 4},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := Compose(table.cells, table.columns, table.rows, table.w, table.h)
			assert.Error(t, err)
		})
	}
}

func TestComposeSliceRoundTrip(t *testing.T) {
	colors := []color.RGBA{
		{R: 0xff, A: 0xff},
		{G: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
		{R: 0xff, G: 0xff, A: 0xff},
	}

	cells := make([]image.Image, len(colors))
	for i, c := range colors {
		cells[i] = solidCell(6, 6, c)
	}

	m, err := Compose(cells, 2, 2, 6, 6)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 12, 12), m.Bounds())

	g, err := iconset.New(m, 2, 2)
	require.NoError(t, err)

	for i, c := range colors {
		assert.Equal(t, c, g.Icon(i).(*image.RGBA).RGBAAt(3, 3), "cell %d", i)
	}
}

func TestComposeMissingCells(t *testing.T) {
	cells := []image.Image{
		solidCell(4, 4, color.RGBA{R: 0xff, A: 0xff}),
		nil,
	}

	m, err := Compose(cells, 2, 2, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, m.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, m.RGBAAt(5, 1))
	assert.Equal(t, color.RGBA{}, m.RGBAAt(1, 5))
}

func TestComposeClipsOversizedCells(t *testing.T) {
	cells := []image.Image{
		solidCell(10, 10, color.RGBA{B: 0xff, A: 0xff}),
	}

	m, err := Compose(cells, 2, 1, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, m.RGBAAt(3, 3))
	// The second slot must not receive any spillover.
	assert.Equal(t, color.RGBA{}, m.RGBAAt(4, 0))
}

func TestQuantize(t *testing.T) {
	// A horizontal gradient with more than 256 distinct colors.
	m := image.NewRGBA(image.Rect(0, 0, 512, 2))
	for x := 0; x < 512; x++ {
		c := color.RGBA{R: uint8(x / 2), G: uint8(x % 256), B: 0x80, A: 0xff}
		m.SetRGBA(x, 0, c)
		m.SetRGBA(x, 1, c)
	}

	pm := Quantize(m, 16)
	require.NotNil(t, pm)
	assert.LessOrEqual(t, len(pm.Palette), 16)
	assert.Equal(t, m.Bounds(), pm.Bounds())
}

func TestQuantizePalettedPassThrough(t *testing.T) {
	pm := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
		color.RGBA{A: 0xff},
		color.RGBA{R: 0xff, A: 0xff},
	})

	assert.Same(t, pm, Quantize(pm, 16))
}

func TestEncode(t *testing.T) {
	m := solidCell(8, 8, color.RGBA{G: 0xff, A: 0xff})

	for _, format := range []string{"png", "gif", "bmp"} {
		t.Run(format, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, Encode(&b, m, format))
			assert.NotZero(t, b.Len())
		})
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var b bytes.Buffer
	assert.Error(t, Encode(&b, solidCell(2, 2, color.RGBA{}), "jpeg2000"))
}
