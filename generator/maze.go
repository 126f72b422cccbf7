/*
Package generator builds dungeon levels: a maze of corridors carved with a
growing-tree algorithm, rectangular rooms placed next to the corridors, doors
between the two, and finally the expansion of the cells into a tile Level.

All randomness comes from the *rand.Rand handed to each generator, so a fixed
seed reproduces the same level.
*/
package generator

import (
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

// MazeGenerator carves corridors through a solid room.
type MazeGenerator struct {
	rng        *rand.Rand
	randomness int // chance, in percent, that a corridor turns
	sparseness int // percentage of cells turned back into rock
}

// NewMazeGenerator validates randomness and sparseness, both in [0, 100].
func NewMazeGenerator(rng *rand.Rand, randomness, sparseness int) (*MazeGenerator, error) {
	if err := checkPercent("randomness", randomness); err != nil {
		return nil, err
	}
	if err := checkPercent("sparseness", sparseness); err != nil {
		return nil, err
	}

	return &MazeGenerator{
		rng:        ensureRand(rng),
		randomness: randomness,
		sparseness: sparseness,
	}, nil
}

// Randomness returns the configured randomness.
func (g *MazeGenerator) Randomness() int { return g.randomness }

// Sparseness returns the configured sparseness.
func (g *MazeGenerator) Sparseness() int { return g.sparseness }

// Generate carves a dense maze through a solid room of the given bounds, then
// seals dead ends until the configured share of cells is solid again.
func (g *MazeGenerator) Generate(top, left, width, height int) (*dungeon.Room, error) {
	room, err := dungeon.NewFilledRoom(top, left, width, height)
	if err != nil {
		return nil, err
	}
	if err := g.createDenseMaze(room); err != nil {
		return nil, err
	}
	if err := g.makeSparse(room); err != nil {
		return nil, err
	}
	return room, nil
}

// createDenseMaze visits every cell, carving one corridor per newly visited
// cell. When the current cell has no unvisited neighbour the walk resumes
// from a random visited cell.
func (g *MazeGenerator) createDenseMaze(room *dungeon.Room) error {
	x := intBetween(g.rng, room.Left(), room.Left()+room.Width()-1)
	y := intBetween(g.rng, room.Top(), room.Top()+room.Height()-1)
	if err := room.SetVisited(x, y, true); err != nil {
		return err
	}

	previous := dungeon.North
	picker, err := NewDirectionPicker(g.rng, previous, g.randomness)
	if err != nil {
		return err
	}

	visited, total := 1, room.Width()*room.Height()
	for visited < total {
		direction, err := picker.Next()
		if err != nil {
			return err
		}

		for {
			ok, err := canCarve(room, x, y, direction)
			if err != nil {
				return err
			}
			if ok {
				break
			}

			if !picker.HasNext() {
				// Dead branch: continue from another visited cell.
				if x, y, err = g.randomVisitedCellExcluding(room, x, y); err != nil {
					return err
				}
				picker.Reset(previous)
			}
			if direction, err = picker.Next(); err != nil {
				return err
			}
		}

		if err := room.SetSide(x, y, direction, dungeon.Empty); err != nil {
			return err
		}
		dx, dy := direction.Offset()
		x, y = x+dx, y+dy
		if err := room.SetVisited(x, y, true); err != nil {
			return err
		}
		visited++

		previous = direction
		picker.Reset(previous)
	}
	return nil
}

// canCarve reports whether the neighbour of (x, y) in direction d exists and
// has not been visited yet.
func canCarve(room *dungeon.Room, x, y int, d dungeon.Direction) (bool, error) {
	next, ok, err := room.AdjacentCell(x, y, d)
	if err != nil || !ok {
		return false, err
	}
	return !next.Visited, nil
}

func (g *MazeGenerator) randomVisitedCellExcluding(room *dungeon.Room, x, y int) (int, int, error) {
	if room.IsOutOfBounds(x, y) {
		return 0, 0, fmt.Errorf("%w: (%d, %d)", dungeon.ErrOutOfBounds, x, y)
	}

	visited := room.VisitedCells()
	candidates := visited[:0]
	for _, c := range visited {
		if c.X != x || c.Y != y {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return 0, 0, ErrNoVisitedCells
	}

	picked := candidates[g.rng.Intn(len(candidates))]
	return picked.X, picked.Y, nil
}

// makeSparse seals dead ends until ceil(width*height*sparseness/100) cells
// have been turned into rock. Sealing a dead end can expose a new one further
// up the corridor, so the dead-end list is rebuilt whenever it runs dry.
func (g *MazeGenerator) makeSparse(room *dungeon.Room) error {
	target := (room.Width()*room.Height()*g.sparseness + 99) / 100

	var queue []dungeon.Cell
	for sealed := 0; sealed < target; {
		if len(queue) == 0 {
			if queue = room.DeadEndCells(); len(queue) == 0 {
				break
			}
		}

		queued := queue[0]
		queue = queue[1:]

		cell, err := room.Cell(queued.X, queued.Y)
		if err != nil {
			return err
		}
		if !cell.IsDeadEnd() {
			continue
		}

		direction, err := cell.DeadEndCorridorDirection()
		if err != nil {
			return err
		}
		if err := room.SetSide(cell.X, cell.Y, direction, dungeon.Wall); err != nil {
			return err
		}
		sealed++
	}
	return nil
}

// RemoveDeadEnds extends dead ends into new corridors until they join open
// space. Each dead end present at call time is extended with a probability of
// modifier percent. A dead end whose only neighbour is the corridor it opens
// onto is left as it is.
func (g *MazeGenerator) RemoveDeadEnds(room *dungeon.Room, modifier int) error {
	if err := checkPercent("dead end removal modifier", modifier); err != nil {
		return err
	}

	picker, err := NewDirectionPicker(g.rng, dungeon.North, 100)
	if err != nil {
		return err
	}

	for _, deadEnd := range room.DeadEndCells() {
		if intBetween(g.rng, 1, 99) >= modifier {
			continue
		}

		x, y := deadEnd.X, deadEnd.Y
		for {
			cell, err := room.Cell(x, y)
			if err != nil {
				return err
			}
			// Stop once the path has merged into an existing corridor. A listed
			// dead end may already have been joined by an earlier extension.
			if !cell.IsDeadEnd() {
				break
			}

			back, err := cell.DeadEndCorridorDirection()
			if err != nil {
				return err
			}
			picker.Reset(back)

			direction, ok, err := nextInBounds(room, picker, x, y, back)
			if err != nil {
				return err
			}
			if !ok {
				// Every neighbour other than the way back is outside the room.
				break
			}
			if err := room.SetSide(x, y, direction, dungeon.Empty); err != nil {
				return err
			}
			dx, dy := direction.Offset()
			x, y = x+dx, y+dy
		}
	}
	return nil
}

// nextInBounds draws directions until one other than back has a neighbour
// inside room. It reports false once the picker is exhausted.
func nextInBounds(room *dungeon.Room, picker *DirectionPicker, x, y int, back dungeon.Direction) (dungeon.Direction, bool, error) {
	for picker.HasNext() {
		direction, err := picker.Next()
		if err != nil {
			return back, false, err
		}
		if direction == back {
			continue
		}
		ok, err := room.HasAdjacentCell(x, y, direction)
		if err != nil {
			return back, false, err
		}
		if ok {
			return direction, true, nil
		}
	}
	return back, false, nil
}
