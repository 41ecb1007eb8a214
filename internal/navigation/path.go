// Package navigation answers pathfinding and neighbor queries over a boundary grid.
//
// All functions are pure: they read the grid and allocate only their results,
// so they can be called from any single goroutine without locking.
package navigation

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/tilenav/internal/grid"
)

// Path is a sequence of tile coordinates. The starting tile is never part of
// a path; an empty path means there is no route.
type Path []grid.Coord

// Last returns the final coordinate of the path.
func (p Path) Last() (grid.Coord, bool) {
	if len(p) == 0 {
		return grid.Coord{}, false
	}
	return p[len(p)-1], true
}

// expansionOrder is the order neighbors are pushed onto the frontier.
var expansionOrder = [4]grid.Coord{grid.Up, grid.Right, grid.Down, grid.Left}

// FindPath returns a shortest 4-connected route from start (exclusive) to
// destination (inclusive). The path is empty when destination is blocked,
// unreachable, or equal to start.
func FindPath(g *grid.BoundaryGrid, start, destination grid.Coord) (Path, error) {
	open, err := g.IsOpen(destination)
	if err != nil {
		return nil, err
	}
	if !open {
		return Path{}, nil
	}
	if _, err := g.IsOpen(start); err != nil {
		return nil, err
	}

	frontier := &priorityQueue{}
	heap.Init(frontier)

	var seq int
	push := func(n *node) {
		n.seq = seq
		seq++
		heap.Push(frontier, n)
	}

	costSoFar := map[grid.Coord]int{start: 0}
	closed := make(map[grid.Coord]bool)
	push(&node{coord: start, h: manhattan(start, destination)})

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(*node)
		if closed[current.coord] {
			continue
		}
		if current.coord == destination {
			return reconstructPath(current), nil
		}
		closed[current.coord] = true

		for _, step := range expansionOrder {
			next := current.coord.Add(step)
			if closed[next] || !isOpen(g, next) {
				continue
			}
			cost := current.g + 1
			if prev, seen := costSoFar[next]; seen && cost >= prev {
				continue
			}
			costSoFar[next] = cost
			push(&node{coord: next, g: cost, h: manhattan(next, destination), parent: current})
		}
	}
	return Path{}, nil
}

// FindPathUntilBoundary walks from start in the axis-aligned direction of
// dir and returns every open tile passed before the first blocked one.
func FindPathUntilBoundary(g *grid.BoundaryGrid, start grid.Coord, dir mgl64.Vec2) (Path, error) {
	offset := grid.Offset(dir)
	if offset == (grid.Coord{}) {
		return Path{}, nil
	}

	path := Path{}
	current := start.Add(offset)
	for {
		open, err := g.IsOpen(current)
		if err != nil {
			return nil, err
		}
		if !open {
			return path, nil
		}
		path = append(path, current)
		current = current.Add(offset)
	}
}

// isOpen treats cells outside the grid as blocked; the search never leaves it.
func isOpen(g *grid.BoundaryGrid, c grid.Coord) bool {
	open, err := g.IsOpen(c)
	return err == nil && open
}

func manhattan(a, b grid.Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func reconstructPath(n *node) Path {
	var length int
	for p := n; p.parent != nil; p = p.parent {
		length++
	}
	path := make(Path, length)
	for p := n; p.parent != nil; p = p.parent {
		length--
		path[length] = p.coord
	}
	return path
}

// node is a frontier entry of the A* search.
type node struct {
	coord  grid.Coord
	g, h   int
	seq    int // insertion order, last tie-break
	parent *node
}

// priorityQueue orders nodes by f = g + h, then by h, then by insertion.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
