package world

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/navigation"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)

	d1 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	d2 := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))

	ctx := context.Background()
	d1.Generate(ctx)
	d2.Generate(ctx)

	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}
	for i := range d1.Rooms {
		if d1.Rooms[i] != d2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, d1.Rooms[i], d2.Rooms[i])
		}
	}
	for row := 0; row < d1.Height; row++ {
		for x := 0; x < d1.Width; x++ {
			if d1.Tiles[row][x] != d2.Tiles[row][x] {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, row, d1.Tiles[row][x], d2.Tiles[row][x])
			}
		}
	}
}

func TestDungeonBorderIsWall(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(7)))
	d.Generate(context.Background())

	if len(d.Rooms) == 0 {
		t.Fatal("Expected at least one room")
	}
	for x := 0; x < d.Width; x++ {
		if !d.HasTile(grid.Coord{X: x, Y: 0}) || !d.HasTile(grid.Coord{X: x, Y: -(d.Height - 1)}) {
			t.Errorf("Column %d border is open", x)
		}
	}
	for row := 0; row < d.Height; row++ {
		if !d.HasTile(grid.Coord{X: 0, Y: -row}) || !d.HasTile(grid.Coord{X: d.Width - 1, Y: -row}) {
			t.Errorf("Row %d border is open", row)
		}
	}
}

func TestDungeonRoomsConnected(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 12345} {
		d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
		d.Generate(context.Background())

		g, err := grid.FromSource(d)
		if err != nil {
			t.Fatalf("Seed %d: build grid: %v", seed, err)
		}

		x, row := d.Rooms[0].Center()
		start := grid.Coord{X: x, Y: -row}
		for i, room := range d.Rooms[1:] {
			x, row := room.Center()
			dest := grid.Coord{X: x, Y: -row}
			path, err := navigation.FindPath(g, start, dest)
			if err != nil {
				t.Fatalf("Seed %d: find path: %v", seed, err)
			}
			if len(path) == 0 {
				t.Errorf("Seed %d: room %d unreachable from room 0", seed, i+1)
			}
		}
	}
}

func TestParseMap(t *testing.T) {
	d, err := ParseMap([]string{
		"####",
		"#. #",
		"####",
	})
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}

	if w, h := d.Size(); w != 4 || h != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", w, h)
	}
	if d.HasTile(grid.Coord{X: 1, Y: -1}) || d.HasTile(grid.Coord{X: 2, Y: -1}) {
		t.Error("Floor tiles reported as walls")
	}
	if !d.HasTile(grid.Coord{X: 0, Y: -1}) {
		t.Error("Wall tile reported as floor")
	}
	if d.HasTile(grid.Coord{X: 1, Y: 1}) || d.HasTile(grid.Coord{X: 9, Y: 0}) {
		t.Error("Off-map coordinates should hold no tile")
	}
	if d.GetTile(-1, 0) != TileWall {
		t.Error("Off-map GetTile should read as wall")
	}
}

func TestParseMapErrors(t *testing.T) {
	tests := map[string][]string{
		"empty":         nil,
		"ragged":        {"###", "##"},
		"unknown glyph": {"#x#"},
	}
	for name, rows := range tests {
		if _, err := ParseMap(rows); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.txt")
	if err := os.WriteFile(path, []byte("###\n#.#\n###\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile: %v", err)
	}
	if d.Height != 3 || d.Width != 3 {
		t.Errorf("Expected 3x3, got %dx%d", d.Width, d.Height)
	}

	if _, err := LoadMapFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRandomFloor(t *testing.T) {
	d, err := ParseMap([]string{
		"#####",
		"#..##",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	d.SetRand(rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		c, ok := d.RandomFloor(-1)
		if !ok {
			t.Fatal("Expected a floor tile")
		}
		if d.HasTile(c) {
			t.Fatalf("RandomFloor returned wall %v", c)
		}
	}

	solid, _ := ParseMap([]string{"##", "##"})
	if _, ok := solid.RandomFloor(0); ok {
		t.Error("Expected no floor in a solid map")
	}
}

func TestRoomIndexAt(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(99)))
	d.Generate(context.Background())

	for i, room := range d.Rooms {
		x, row := room.Center()
		if got := d.RoomIndexAt(grid.Coord{X: x, Y: -row}); got != i {
			t.Errorf("Room %d center reported in room %d", i, got)
		}
	}
	if got := d.RoomIndexAt(grid.Coord{X: 0, Y: 0}); got != -1 {
		t.Errorf("Corner reported in room %d", got)
	}
}
