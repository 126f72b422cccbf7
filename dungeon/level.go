package dungeon

import (
	"fmt"
	"strings"
)

// Level is the tile grid produced from a Room. It always starts at (0, 0).
type Level struct {
	width  int
	height int
	tiles  []TileState
}

// NewLevel creates a width x height level filled with wall tiles.
func NewLevel(width, height int) (*Level, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: level size %dx%d", ErrInvalidArgument, width, height)
	}

	tiles := make([]TileState, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Level{width: width, height: height, tiles: tiles}, nil
}

// Width returns the number of tile columns.
func (l *Level) Width() int { return l.width }

// Height returns the number of tile rows.
func (l *Level) Height() int { return l.height }

// IsOutOfBounds reports whether (x, y) lies outside the level.
func (l *Level) IsOutOfBounds(x, y int) bool {
	return x < 0 || y < 0 || x >= l.width || y >= l.height
}

// Tile returns the tile at (x, y).
func (l *Level) Tile(x, y int) (TileState, error) {
	if l.IsOutOfBounds(x, y) {
		return TileUndefined, fmt.Errorf("%w: tile (%d, %d) in %dx%d level", ErrOutOfBounds, x, y, l.width, l.height)
	}
	return l.tiles[y*l.width+x], nil
}

// SetTile replaces the tile at (x, y).
func (l *Level) SetTile(x, y int, t TileState) error {
	if l.IsOutOfBounds(x, y) {
		return fmt.Errorf("%w: tile (%d, %d) in %dx%d level", ErrOutOfBounds, x, y, l.width, l.height)
	}
	l.tiles[y*l.width+x] = t
	return nil
}

// Count returns the number of tiles in state t.
func (l *Level) Count(t TileState) int {
	n := 0
	for _, tile := range l.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// String renders one character per tile, one line per row.
func (l *Level) String() string {
	var sb strings.Builder
	sb.Grow((l.width + 1) * l.height)
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			sb.WriteByte(l.tiles[y*l.width+x].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
