package iconset

import "image"

// Icon returns the icon at the given linear index. An out of range
// index returns the empty sentinel icon.
func (g *Grid) Icon(index int) image.Image {
	if !g.IsValid(index) {
		return g.invalid
	}
	return g.cells[index]
}

// IconAt returns the icon at the given column and row. Coordinates are
// bounds-checked independently; any out of range coordinate returns
// the empty sentinel icon, even when row*columns+col would land on a
// populated cell.
func (g *Grid) IconAt(col, row int) image.Image {
	if !g.IsValidAt(col, row) {
		return g.invalid
	}
	return g.cells[g.Index(col, row)]
}

// IsValid reports whether an icon exists at the given linear index.
func (g *Grid) IsValid(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// IsValidAt reports whether an icon exists at the given column and
// row.
func (g *Grid) IsValidAt(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

// Index converts a column and row to the linear row-major index.
func (g *Grid) Index(col, row int) int {
	return row*g.columns + col
}

// Coords converts a linear index back to its column and row.
func (g *Grid) Coords(index int) (col, row int) {
	row = index / g.columns
	col = index - row*g.columns
	return col, row
}

// Len returns the number of icons in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Columns returns the number of columns in the grid.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// IconSize returns the size of each icon in pixels.
func (g *Grid) IconSize() (width, height int) {
	return g.cellW, g.cellH
}

// IconRadius returns half the icon width, useful for circular icons.
func (g *Grid) IconRadius() int {
	return g.cellW / 2
}
