package dungeon

import "fmt"

// Cell is a snapshot of a single grid position: its coordinates, the state of
// its four sides and whether maze carving has visited it.
//
// Cells are read from a Room and mutated only through Room.SetSide and
// Room.SetVisited, which keep neighbouring cells consistent.
type Cell struct {
	X, Y    int
	Sides   [DirectionCount]SideState
	Visited bool
}

// cellState is the mutable storage of a cell inside a grid.
type cellState struct {
	sides   [DirectionCount]SideState
	visited bool
}

// NewCell returns a solid (all Wall), unvisited cell at (x, y).
func NewCell(x, y int) (Cell, error) {
	if x < 0 || y < 0 {
		return Cell{}, fmt.Errorf("%w: cell co-ordinates (%d, %d) must be >= 0", ErrInvalidArgument, x, y)
	}
	return Cell{X: x, Y: y}, nil
}

// Side returns the state of the side facing direction d.
func (c Cell) Side(d Direction) SideState {
	if !d.IsValid() {
		return Wall
	}
	return c.Sides[d]
}

// WallCount returns the number of sides that are walls.
func (c Cell) WallCount() int {
	n := 0
	for _, s := range c.Sides {
		if s == Wall {
			n++
		}
	}
	return n
}

// IsCorridor reports whether at least one side is Empty. Doors do not count.
func (c Cell) IsCorridor() bool {
	for _, s := range c.Sides {
		if s == Empty {
			return true
		}
	}
	return false
}

// IsDeadEnd reports whether exactly three sides are walls.
func (c Cell) IsDeadEnd() bool {
	return c.WallCount() == DirectionCount-1
}

// IsSolid reports whether all four sides are walls.
func (c Cell) IsSolid() bool {
	return c.WallCount() == DirectionCount
}

// DeadEndCorridorDirection returns the direction of the single open side of
// a dead-end cell.
func (c Cell) DeadEndCorridorDirection() (Direction, error) {
	if !c.IsDeadEnd() {
		return North, fmt.Errorf("%w: (%d, %d)", ErrNotDeadEnd, c.X, c.Y)
	}
	for _, d := range Directions {
		if c.Sides[d] == Empty {
			return d, nil
		}
	}
	// Three walls and a door.
	return North, fmt.Errorf("%w: dead end (%d, %d) has no empty side", ErrInvalidState, c.X, c.Y)
}

// Equal reports whether both cells address the same position. Side states
// are not part of a cell's identity.
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}
