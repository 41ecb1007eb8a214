package world

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// BSP parameters
	minRoomSize = 4
	maxRoomSize = 12
	minLeafSize = 8
)

// Dungeon is a rectangular tile map. Tiles are stored by row with row 0 at
// the top; as a grid.TileSource it is addressed with Y = -row.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile // [row][x]
	Rooms  []Room
	rng    *rand.Rand
}

var _ grid.TileSource = (*Dungeon)(nil)

// NewDungeon creates a dungeon filled with walls. A nil rng is seeded from
// the clock.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tiles := make([][]Tile, height)
	for row := range tiles {
		tiles[row] = make([]Tile, width)
		for x := range tiles[row] {
			tiles[row][x] = TileWall
		}
	}
	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// SetRand replaces the random source used by RandomFloor and Generate.
func (d *Dungeon) SetRand(rng *rand.Rand) {
	d.rng = rng
}

// ParseMap builds a dungeon from text rows where '#' is a wall and '.' or
// ' ' is floor. All rows must have the same length.
func ParseMap(rows []string) (*Dungeon, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	width := len([]rune(rows[0]))
	d := NewDungeon(width, len(rows), nil)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("map row %d has %d columns, want %d", row, len(runes), width)
		}
		for x, r := range runes {
			tile, err := ParseTile(r)
			if err != nil {
				return nil, fmt.Errorf("map row %d column %d: %w", row, x, err)
			}
			d.Tiles[row][x] = tile
		}
	}
	return d, nil
}

// LoadMapFile reads a text map from path. Trailing blank lines are ignored.
func LoadMapFile(path string) (*Dungeon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %w", path, err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	d, err := ParseMap(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return d, nil
}

// HasTile reports whether a wall occupies c. Coordinates off the map hold
// no tile.
func (d *Dungeon) HasTile(c grid.Coord) bool {
	row := -c.Y
	if c.X < 0 || c.X >= d.Width || row < 0 || row >= d.Height {
		return false
	}
	return d.Tiles[row][c.X] == TileWall
}

// Size returns the map dimensions in tiles.
func (d *Dungeon) Size() (int, int) {
	return d.Width, d.Height
}

// GetTile returns the tile at the given column and row. Off-map positions
// read as wall.
func (d *Dungeon) GetTile(x, row int) Tile {
	if x < 0 || x >= d.Width || row < 0 || row >= d.Height {
		return TileWall
	}
	return d.Tiles[row][x]
}

// RoomIndexAt returns the index of the room containing c, or -1.
func (d *Dungeon) RoomIndexAt(c grid.Coord) int {
	for i, room := range d.Rooms {
		if room.Contains(c.X, -c.Y) {
			return i
		}
	}
	return -1
}

// RandomFloor returns a random floor tile, preferring the given room when
// it exists. ok is false when the map has no floor at all.
func (d *Dungeon) RandomFloor(roomIndex int) (c grid.Coord, ok bool) {
	if roomIndex >= 0 && roomIndex < len(d.Rooms) {
		room := d.Rooms[roomIndex]
		for i := 0; i < 100; i++ {
			x := room.X + d.rng.Intn(room.Width)
			row := room.Y + d.rng.Intn(room.Height)
			if d.GetTile(x, row).IsPassable() {
				return grid.Coord{X: x, Y: -row}, true
			}
		}
	}

	var floors []grid.Coord
	for row := range d.Tiles {
		for x, tile := range d.Tiles[row] {
			if tile.IsPassable() {
				floors = append(floors, grid.Coord{X: x, Y: -row})
			}
		}
	}
	if len(floors) == 0 {
		return grid.Coord{}, false
	}
	return floors[d.rng.Intn(len(floors))], true
}

// Generate carves rooms and corridors out of a solid dungeon by binary
// space partitioning. The outer border is always left as wall.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{Room: Room{X: 1, Y: 1, Width: d.Width - 2, Height: d.Height - 2}}
	d.split(root)
	d.placeRooms(root)
	d.connect(root)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// bspNode is a region of the partition; leaves receive at most one room.
type bspNode struct {
	Room
	left, right *bspNode
	room        *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (d *Dungeon) split(n *bspNode) {
	canSplitX := n.Width >= minLeafSize*2
	canSplitY := n.Height >= minLeafSize*2
	if !canSplitX && !canSplitY {
		return
	}

	// Prefer cutting across the longer side.
	vertical := canSplitX && (!canSplitY || n.Width > n.Height)
	extent := n.Height
	if vertical {
		extent = n.Width
	}
	at := minLeafSize + d.rng.Intn(extent-2*minLeafSize+1)

	a, b := n.Room, n.Room
	if vertical {
		a.Width = at
		b.X += at
		b.Width -= at
	} else {
		a.Height = at
		b.Y += at
		b.Height -= at
	}
	n.left, n.right = &bspNode{Room: a}, &bspNode{Room: b}
	d.split(n.left)
	d.split(n.right)
}

func (d *Dungeon) placeRooms(n *bspNode) {
	if n == nil {
		return
	}
	if !n.isLeaf() {
		d.placeRooms(n.left)
		d.placeRooms(n.right)
		return
	}

	w := min(maxRoomSize, n.Width-2)
	h := min(maxRoomSize, n.Height-2)
	if w < minRoomSize || h < minRoomSize {
		return
	}
	w = minRoomSize + d.rng.Intn(w-minRoomSize+1)
	h = minRoomSize + d.rng.Intn(h-minRoomSize+1)

	room := Room{
		X:      n.X + 1 + d.rng.Intn(n.Width-w-1),
		Y:      n.Y + 1 + d.rng.Intn(n.Height-h-1),
		Width:  w,
		Height: h,
	}
	n.room = &room
	d.Rooms = append(d.Rooms, room)

	for row := room.Y; row < room.Y+room.Height; row++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.carve(x, row)
		}
	}
}

// connect joins the two halves of every split with an L-shaped corridor.
func (d *Dungeon) connect(n *bspNode) {
	if n == nil || n.isLeaf() {
		return
	}
	d.connect(n.left)
	d.connect(n.right)

	a, b := firstRoom(n.left), firstRoom(n.right)
	if a == nil || b == nil {
		return
	}
	x1, y1 := a.Center()
	x2, y2 := b.Center()
	if d.rng.Intn(2) == 0 {
		d.carveLine(x1, y1, x2, y1)
		d.carveLine(x2, y1, x2, y2)
	} else {
		d.carveLine(x1, y1, x1, y2)
		d.carveLine(x1, y2, x2, y2)
	}
}

func firstRoom(n *bspNode) *Room {
	if n == nil {
		return nil
	}
	if n.room != nil {
		return n.room
	}
	if room := firstRoom(n.left); room != nil {
		return room
	}
	return firstRoom(n.right)
}

// carveLine carves floor along a horizontal or vertical segment.
func (d *Dungeon) carveLine(x1, y1, x2, y2 int) {
	dx, dy := step(x2-x1), step(y2-y1)
	for x, y := x1, y1; ; x, y = x+dx, y+dy {
		d.carve(x, y)
		if x == x2 && y == y2 {
			return
		}
	}
}

// carve turns an interior tile into floor; the border is never touched.
func (d *Dungeon) carve(x, row int) {
	if x > 0 && x < d.Width-1 && row > 0 && row < d.Height-1 {
		d.Tiles[row][x] = TileFloor
	}
}

func step(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	}
	return 0
}
