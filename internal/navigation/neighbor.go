package navigation

import (
	"github.com/samdwyer/tilenav/internal/grid"
)

// neighborPriority decides ties in FarthestOpenNeighbor: the earlier entry wins.
var neighborPriority = [4]grid.Coord{grid.Up, grid.Right, grid.Down, grid.Left}

// FarthestOpenNeighbor returns the open neighbor of c that lies farthest
// (Euclidean) from reference. Equal distances resolve in the order up,
// right, down, left. ok is false when every neighbor is blocked.
func FarthestOpenNeighbor(g *grid.BoundaryGrid, c, reference grid.Coord) (best grid.Coord, ok bool, err error) {
	farthest := -1.0
	for _, step := range neighborPriority {
		candidate := c.Add(step)
		distance := candidate.Sub(reference).Vec().Len()
		if distance <= farthest {
			continue
		}
		open, err := g.IsOpen(candidate)
		if err != nil {
			return grid.Coord{}, false, err
		}
		if open {
			best, ok, farthest = candidate, true, distance
		}
	}
	return best, ok, nil
}
