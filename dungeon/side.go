package dungeon

// SideState is the state of one side of a cell.
type SideState int

const (
	Wall SideState = iota
	Empty
	Door
)

// String returns the name of the side state.
func (s SideState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Empty:
		return "Empty"
	case Door:
		return "Door"
	default:
		return "Unknown"
	}
}

// Glyph returns the debug rendering character of the side state.
func (s SideState) Glyph() byte {
	return s.ToTileState().Glyph()
}

// ToTileState maps a side state to the tile state sharing its ordinal.
func (s SideState) ToTileState() TileState {
	switch s {
	case Wall:
		return TileWall
	case Empty:
		return TileEmpty
	case Door:
		return TileDoor
	default:
		return TileUndefined
	}
}

// TileState is the state of a single tile of an expanded Level.
// TileUndefined has no SideState counterpart.
type TileState int

const (
	TileUndefined TileState = iota - 1
	TileWall
	TileEmpty
	TileDoor
)

// String returns the name of the tile state.
func (t TileState) String() string {
	switch t {
	case TileWall:
		return "TILE_WALL"
	case TileEmpty:
		return "TILE_EMPTY"
	case TileDoor:
		return "TILE_DOOR"
	default:
		return "TILE_UNDEFINED"
	}
}

// Glyph returns the character used to render the tile.
func (t TileState) Glyph() byte {
	switch t {
	case TileWall:
		return '#'
	case TileEmpty:
		return '.'
	case TileDoor:
		return '+'
	default:
		return ' '
	}
}
