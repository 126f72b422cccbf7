/*
Package dungeon provides the cell based model of a procedurally generated level.

A Room is a rectangular view over a grid of cells. Every cell stores the state
of its four sides (Wall, Empty or Door) and a visited flag used while carving.
Rooms placed inside a container share the container's grid, so a change made
through either view is observed by both.

Side changes always go through Room.SetSide, which also updates the opposite
side of the neighbouring cell ("twin consistency"). The finished Room is
expanded into a Level, a dense grid of tiles consumed by rendering and
collision code.
*/
package dungeon

import (
	"fmt"
	"strings"
)

// grid owns the cell storage shared by a container and every room placed in it.
type grid struct {
	left, top     int
	width, height int
	cells         []cellState
}

func newGrid(top, left, width, height int) *grid {
	return &grid{
		left:   left,
		top:    top,
		width:  width,
		height: height,
		cells:  make([]cellState, width*height),
	}
}

// at returns the storage of the cell at absolute co-ordinates (x, y).
// The caller guarantees that (x, y) lies inside the grid.
func (g *grid) at(x, y int) *cellState {
	return &g.cells[(y-g.top)*g.width+x-g.left]
}

// Room is a rectangular region of cells and the rooms placed inside it.
type Room struct {
	grid   *grid
	top    int
	left   int
	width  int
	height int
	rooms  []*Room
	placed bool
}

func newRoom(top, left, width, height int) (*Room, error) {
	if top < 0 || left < 0 || width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: top and left must be >= 0, width and height must be > 0 (got top=%d left=%d width=%d height=%d)",
			ErrInvalidArgument, top, left, width, height)
	}

	return &Room{
		grid:   newGrid(top, left, width, height),
		top:    top,
		left:   left,
		width:  width,
		height: height,
	}, nil
}

// NewFilledRoom creates a room where every cell is solid rock.
func NewFilledRoom(top, left, width, height int) (*Room, error) {
	return newRoom(top, left, width, height)
}

// NewEmptyRoom creates a room where every side of every cell is Empty.
func NewEmptyRoom(top, left, width, height int) (*Room, error) {
	room, err := newRoom(top, left, width, height)
	if err != nil {
		return nil, err
	}

	for i := range room.grid.cells {
		for _, d := range Directions {
			room.grid.cells[i].sides[d] = Empty
		}
	}
	return room, nil
}

// NewWalledRoom creates an empty room whose outer boundary is walled.
func NewWalledRoom(top, left, width, height int) (*Room, error) {
	room, err := NewEmptyRoom(top, left, width, height)
	if err != nil {
		return nil, err
	}

	right := left + width - 1
	bottom := top + height - 1
	for y := top; y <= bottom; y++ {
		room.setSide(left, y, West, Wall)
		room.setSide(right, y, East, Wall)
	}
	for x := left; x <= right; x++ {
		room.setSide(x, top, North, Wall)
		room.setSide(x, bottom, South, Wall)
	}
	return room, nil
}

// Top returns the row of the room's first cell.
func (r *Room) Top() int { return r.top }

// Left returns the column of the room's first cell.
func (r *Room) Left() int { return r.left }

// Width returns the number of cells spanning the room horizontally.
func (r *Room) Width() int { return r.width }

// Height returns the number of cells spanning the room vertically.
func (r *Room) Height() int { return r.height }

// Rooms returns the rooms placed inside this room, in placement order.
func (r *Room) Rooms() []*Room {
	rooms := make([]*Room, len(r.rooms))
	copy(rooms, r.rooms)
	return rooms
}

// IsOutOfBounds reports whether (x, y) lies outside the room.
func (r *Room) IsOutOfBounds(x, y int) bool {
	return x < r.left || y < r.top || x >= r.left+r.width || y >= r.top+r.height
}

// Overlaps reports whether the rectangles of r and other intersect.
func (r *Room) Overlaps(other *Room) bool {
	return r.left < other.left+other.width && other.left < r.left+r.width &&
		r.top < other.top+other.height && other.top < r.top+r.height
}

func (r *Room) checkBounds(x, y int) error {
	if r.IsOutOfBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) is outside room at (%d, %d) sized %dx%d",
			ErrOutOfBounds, x, y, r.left, r.top, r.width, r.height)
	}
	return nil
}

func (r *Room) snapshot(x, y int) Cell {
	st := r.grid.at(x, y)
	return Cell{X: x, Y: y, Sides: st.sides, Visited: st.visited}
}

// Cell returns a snapshot of the cell at (x, y).
func (r *Room) Cell(x, y int) (Cell, error) {
	if err := r.checkBounds(x, y); err != nil {
		return Cell{}, err
	}
	return r.snapshot(x, y), nil
}

// Cells returns snapshots of every cell in row-major order.
func (r *Room) Cells() []Cell {
	return r.collect(func(Cell) bool { return true })
}

// CorridorCells returns every cell with at least one Empty side.
func (r *Room) CorridorCells() []Cell {
	return r.collect(Cell.IsCorridor)
}

// DeadEndCells returns every cell with exactly three walls.
func (r *Room) DeadEndCells() []Cell {
	return r.collect(Cell.IsDeadEnd)
}

// VisitedCells returns every cell marked as visited.
func (r *Room) VisitedCells() []Cell {
	return r.collect(func(c Cell) bool { return c.Visited })
}

func (r *Room) collect(keep func(Cell) bool) []Cell {
	var cells []Cell
	for y := r.top; y < r.top+r.height; y++ {
		for x := r.left; x < r.left+r.width; x++ {
			if c := r.snapshot(x, y); keep(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// AllVisited reports whether every cell of the room has been visited.
func (r *Room) AllVisited() bool {
	for y := r.top; y < r.top+r.height; y++ {
		for x := r.left; x < r.left+r.width; x++ {
			if !r.grid.at(x, y).visited {
				return false
			}
		}
	}
	return true
}

// SetVisited marks the cell at (x, y).
func (r *Room) SetVisited(x, y int, visited bool) error {
	if err := r.checkBounds(x, y); err != nil {
		return err
	}
	r.grid.at(x, y).visited = visited
	return nil
}

// hasAdjacent assumes (x, y) is inside the room.
func (r *Room) hasAdjacent(x, y int, d Direction) bool {
	switch d {
	case North:
		return y > r.top
	case West:
		return x > r.left
	case South:
		return y < r.top+r.height-1
	case East:
		return x < r.left+r.width-1
	default:
		return false
	}
}

// HasAdjacentCell reports whether the room has a cell next to (x, y) in direction d.
func (r *Room) HasAdjacentCell(x, y int, d Direction) (bool, error) {
	if err := r.checkBounds(x, y); err != nil {
		return false, err
	}
	if !d.IsValid() {
		return false, fmt.Errorf("%w: direction %d", ErrInvalidArgument, int(d))
	}
	return r.hasAdjacent(x, y, d), nil
}

// AdjacentCell returns the cell next to (x, y) in direction d. The boolean is
// false when no such cell exists inside the room.
func (r *Room) AdjacentCell(x, y int, d Direction) (Cell, bool, error) {
	ok, err := r.HasAdjacentCell(x, y, d)
	if err != nil || !ok {
		return Cell{}, false, err
	}
	dx, dy := d.Offset()
	return r.snapshot(x+dx, y+dy), true, nil
}

// IsAdjacentCellCorridor reports whether the cell next to (x, y) in direction
// d exists and is a corridor.
func (r *Room) IsAdjacentCellCorridor(x, y int, d Direction) (bool, error) {
	c, ok, err := r.AdjacentCell(x, y, d)
	if err != nil || !ok {
		return false, err
	}
	return c.IsCorridor(), nil
}

// SetSide sets the side of the cell at (x, y) facing d. When the room has a
// neighbour in that direction, the neighbour's opposite side is set as well.
func (r *Room) SetSide(x, y int, d Direction, s SideState) error {
	if err := r.checkBounds(x, y); err != nil {
		return err
	}
	if !d.IsValid() {
		return fmt.Errorf("%w: direction %d", ErrInvalidArgument, int(d))
	}
	if s < Wall || s > Door {
		return fmt.Errorf("%w: side state %d", ErrInvalidArgument, int(s))
	}
	r.setSide(x, y, d, s)
	return nil
}

func (r *Room) setSide(x, y int, d Direction, s SideState) {
	r.grid.at(x, y).sides[d] = s
	if r.hasAdjacent(x, y, d) {
		dx, dy := d.Offset()
		r.grid.at(x+dx, y+dy).sides[d.Opposite()] = s
	}
}

// MoveTo relocates a room that has not been placed in a container so that
// its first cell is at (x, y). Rooms placed inside it move along.
func (r *Room) MoveTo(x, y int) error {
	if r.placed {
		return ErrRoomAlreadyPlaced
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: cannot move room to (%d, %d)", ErrInvalidArgument, x, y)
	}

	dx, dy := x-r.left, y-r.top
	r.grid.left += dx
	r.grid.top += dy
	r.shift(r.grid, dx, dy)
	return nil
}

// shift rebinds r and its placed rooms to g, offsetting their origins.
func (r *Room) shift(g *grid, dx, dy int) {
	r.grid = g
	r.left += dx
	r.top += dy
	for _, inner := range r.rooms {
		inner.shift(g, dx, dy)
	}
}

// AddRoom places room inside r with its first cell at (x, y). The room's
// cells replace r's cells at those co-ordinates and from then on both rooms
// view the same cells. The placed room's outer boundary is walled off,
// including the facing sides of r's cells around it.
func (r *Room) AddRoom(room *Room, x, y int) error {
	if room == nil || room == r {
		return fmt.Errorf("%w: cannot place room inside itself", ErrInvalidArgument)
	}
	if room.placed {
		return ErrRoomAlreadyPlaced
	}
	if x < r.left || y < r.top || x+room.width > r.left+r.width || y+room.height > r.top+r.height {
		return fmt.Errorf("%w: %dx%d room at (%d, %d)", ErrRoomDoesNotFit, room.width, room.height, x, y)
	}

	for j := 0; j < room.height; j++ {
		for i := 0; i < room.width; i++ {
			*r.grid.at(x+i, y+j) = *room.grid.at(room.left+i, room.top+j)
		}
	}
	room.shift(r.grid, x-room.left, y-room.top)
	room.placed = true

	for j := 0; j < room.height; j++ {
		for i := 0; i < room.width; i++ {
			cx, cy := x+i, y+j
			if j == 0 && r.hasAdjacent(cx, cy, North) {
				r.setSide(cx, cy, North, Wall)
			}
			if i == 0 && r.hasAdjacent(cx, cy, West) {
				r.setSide(cx, cy, West, Wall)
			}
			if j == room.height-1 && r.hasAdjacent(cx, cy, South) {
				r.setSide(cx, cy, South, Wall)
			}
			if i == room.width-1 && r.hasAdjacent(cx, cy, East) {
				r.setSide(cx, cy, East, Wall)
			}
		}
	}

	r.rooms = append(r.rooms, room)
	return nil
}

// String renders the room as a debug grid of 3x3 characters per cell:
// the side glyphs around a centre that is '#' for solid rock.
func (r *Room) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Origin = (%d, %d)\n", r.left, r.top)

	corner := func(a, b SideState) byte {
		if a == Empty && b == Empty {
			return Empty.Glyph()
		}
		return Wall.Glyph()
	}

	rowLen := r.width*3 + 1
	for y := r.top; y < r.top+r.height; y++ {
		top := make([]byte, 0, rowLen)
		mid := make([]byte, 0, rowLen)
		bottom := make([]byte, 0, rowLen)
		for x := r.left; x < r.left+r.width; x++ {
			c := r.snapshot(x, y)
			n, w, s, e := c.Sides[North], c.Sides[West], c.Sides[South], c.Sides[East]

			centre := Empty.Glyph()
			if c.IsSolid() {
				centre = Wall.Glyph()
			}

			top = append(top, corner(n, w), n.Glyph(), corner(n, e))
			mid = append(mid, w.Glyph(), centre, e.Glyph())
			bottom = append(bottom, corner(s, w), s.Glyph(), corner(s, e))
		}
		sb.Write(top)
		sb.WriteByte('\n')
		sb.Write(mid)
		sb.WriteByte('\n')
		sb.Write(bottom)
		sb.WriteByte('\n')
	}
	return sb.String()
}
