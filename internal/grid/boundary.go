package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a coordinate or size falls outside the grid.
var ErrOutOfRange = errors.New("out of range")

// TileSource is a tilemap that can report whether a tile occupies a
// coordinate. Coordinates use the same convention as Coord: row r is at Y = -r.
type TileSource interface {
	HasTile(c Coord) bool
	Size() (width, height int)
}

// BoundaryGrid is an immutable occupancy map. Open cells are traversable,
// blocked cells hold a boundary tile.
type BoundaryGrid struct {
	width, height int
	open          [][]bool // indexed [x][row]
}

// Build creates a boundary grid from every tile of src. A cell is open iff
// the source has no tile there. The requested dimensions must match the
// source exactly.
func Build(src TileSource, width, height int) (*BoundaryGrid, error) {
	sw, sh := src.Size()
	if width != sw || height != sh {
		return nil, fmt.Errorf("grid size %dx%d does not match tile source %dx%d: %w",
			width, height, sw, sh, ErrOutOfRange)
	}

	open := make([][]bool, width)
	for x := range open {
		open[x] = make([]bool, height)
		for row := range open[x] {
			open[x][row] = !src.HasTile(Coord{X: x, Y: -row})
		}
	}
	return &BoundaryGrid{width: width, height: height, open: open}, nil
}

// FromSource builds a boundary grid using the source's own size.
func FromSource(src TileSource) (*BoundaryGrid, error) {
	w, h := src.Size()
	return Build(src, w, h)
}

// NewBoundaryGrid wraps a prepared open map indexed [x][row]. Every column
// must have the same length. The slice is copied.
func NewBoundaryGrid(cells [][]bool) (*BoundaryGrid, error) {
	width := len(cells)
	height := 0
	if width > 0 {
		height = len(cells[0])
	}

	open := make([][]bool, width)
	for x, col := range cells {
		if len(col) != height {
			return nil, fmt.Errorf("column %d has %d rows, want %d: %w", x, len(col), height, ErrOutOfRange)
		}
		open[x] = append([]bool(nil), col...)
	}
	return &BoundaryGrid{width: width, height: height, open: open}, nil
}

// Width returns the number of columns.
func (g *BoundaryGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *BoundaryGrid) Height() int { return g.height }

// Contains reports whether c addresses a cell of the grid.
func (g *BoundaryGrid) Contains(c Coord) bool {
	row := -c.Y
	return c.X >= 0 && c.X < g.width && row >= 0 && row < g.height
}

// IsOpen reports whether the cell at c is traversable.
func (g *BoundaryGrid) IsOpen(c Coord) (bool, error) {
	if !g.Contains(c) {
		return false, fmt.Errorf("coordinate %v outside %dx%d grid: %w", c, g.width, g.height, ErrOutOfRange)
	}
	return g.open[c.X][-c.Y], nil
}
