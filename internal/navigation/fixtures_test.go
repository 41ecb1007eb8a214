package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tilenav/internal/grid"
)

// X marks a boundary tile.
var (
	pillarRows = []string{
		"XXXXXXX",
		"X     X",
		"X X X X",
		"X     X",
		"X X X X",
		"X     X",
		"XXXXXXX",
	}
	sealedRows = []string{
		"XXXXXXX",
		"X X X X",
		"X XXX X",
		"X X X X",
		"X XXX X",
		"X X X X",
		"XXXXXXX",
	}
)

func gridFromRows(t *testing.T, rows []string) *grid.BoundaryGrid {
	t.Helper()
	cells := make([][]bool, len(rows[0]))
	for x := range cells {
		cells[x] = make([]bool, len(rows))
		for row := range rows {
			cells[x][row] = rows[row][x] != 'X'
		}
	}
	g, err := grid.NewBoundaryGrid(cells)
	require.NoError(t, err)
	return g
}

func c(x, y int) grid.Coord {
	return grid.Coord{X: x, Y: y}
}
