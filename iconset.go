/*
Package iconset implements a lookup table of equally sized icons
encoded in a single sprite sheet image.

A sheet holds a regular grid of icons, addressed either by a linear
index or by column and row. The grid is sliced once at construction;
every cell is copied out of the sheet into its own image so lookups
are simple slice reads. Out of range lookups return a stable empty
icon instead of failing, so rendering code does not have to
special-case absence.

The linear index of a cell is its row-major position, row*columns+col,
with row 0 at the top of the sheet and column 0 at the left.

TODO: cells with no image content are still extracted and kept; a
sparse representation would avoid the wasted memory on mostly-empty
sheets.
*/
package iconset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

var (
	// ErrNilSheet is returned when constructing a grid from a nil sheet
	// image.
	ErrNilSheet = errors.New("iconset: nil sheet image")
)

// Grid is an immutable lookup table of icons cut from a single sheet.
// It is safe for concurrent readers once constructed.
type Grid struct {
	sheet   image.Image
	columns int
	rows    int
	cellW   int
	cellH   int
	cells   []*image.RGBA
	invalid *image.RGBA
}

// Option configures a Grid during construction.
type Option func(*Grid)

// WithCellSize sets an explicit cell size in pixels instead of deriving
// it from the sheet and grid dimensions.
func WithCellSize(width, height int) Option {
	return func(g *Grid) {
		g.cellW = width
		g.cellH = height
	}
}

// New slices sheet into a grid of columns by rows icons. When no
// explicit cell size is given the size of each cell is derived by
// integer division of the sheet dimensions, so any remainder pixels at
// the right and bottom edges are not covered by the grid. Cells that
// extend past the sheet edges are clamped; the uncovered area of such
// a cell stays transparent.
func New(sheet image.Image, columns, rows int, options ...Option) (*Grid, error) {
	if sheet == nil {
		return nil, ErrNilSheet
	}

	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("iconset: invalid grid size %dx%d", columns, rows)
	}

	g := &Grid{
		sheet:   sheet,
		columns: columns,
		rows:    rows,
		invalid: image.NewRGBA(image.Rectangle{}),
	}

	for _, option := range options {
		option(g)
	}

	if g.cellW == 0 && g.cellH == 0 {
		b := sheet.Bounds()
		g.cellW = b.Dx() / columns
		g.cellH = b.Dy() / rows
	}

	if g.cellW < 1 || g.cellH < 1 {
		return nil, fmt.Errorf("iconset: invalid cell size %dx%d", g.cellW, g.cellH)
	}

	g.extract()

	return g, nil
}

// NewStrip slices sheet into a single row of count icons.
func NewStrip(sheet image.Image, count int, options ...Option) (*Grid, error) {
	return New(sheet, count, 1, options...)
}

func (g *Grid) extract() {
	bounds := g.sheet.Bounds()

	g.cells = make([]*image.RGBA, 0, g.columns*g.rows)
	for row := 0; row < g.rows; row++ {
		y := bounds.Min.Y + row*g.cellH
		for col := 0; col < g.columns; col++ {
			x := bounds.Min.X + col*g.cellW

			cell := image.NewRGBA(image.Rect(0, 0, g.cellW, g.cellH))

			src := image.Rect(x, y, x+g.cellW, y+g.cellH).Intersect(bounds)
			if !src.Empty() {
				draw.Draw(cell, image.Rect(0, 0, src.Dx(), src.Dy()), g.sheet, src.Min, draw.Src)
			}

			g.cells = append(g.cells, cell)
		}
	}
}
