/*
Package sheet composes individual icon cells into a single sprite
sheet image and encodes sheets in true color or indexed formats.

It is the inverse of the iconset package: cells laid out by Compose
and sliced again yield the original cells.
*/
package sheet

import (
	"fmt"
	"image"
	"image/draw"
)

// Compose lays cells out row-major into a single sheet of columns by
// rows slots, each cellWidth by cellHeight pixels. Missing trailing
// cells and nil entries leave their slot transparent; cells larger
// than a slot are clipped to it.
func Compose(cells []image.Image, columns, rows, cellWidth, cellHeight int) (*image.RGBA, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("sheet: invalid grid size %dx%d", columns, rows)
	}

	if cellWidth < 1 || cellHeight < 1 {
		return nil, fmt.Errorf("sheet: invalid cell size %dx%d", cellWidth, cellHeight)
	}

	if len(cells) > columns*rows {
		return nil, fmt.Errorf("sheet: %d cells exceed %dx%d grid", len(cells), columns, rows)
	}

	m := image.NewRGBA(image.Rect(0, 0, columns*cellWidth, rows*cellHeight))

	for i, cell := range cells {
		if cell == nil {
			continue
		}

		col := i % columns
		row := i / columns

		slot := image.Rect(col*cellWidth, row*cellHeight, (col+1)*cellWidth, (row+1)*cellHeight)
		draw.Draw(m, slot, cell, cell.Bounds().Min, draw.Src)
	}

	return m, nil
}
