package world

// Room represents a rectangular room in the dungeon. Y counts rows downward
// from the top of the map.
type Room struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Center returns the column and row at the middle of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given column and row are inside the room.
func (r Room) Contains(x, row int) bool {
	return x >= r.X && x < r.X+r.Width && row >= r.Y && row < r.Y+r.Height
}
