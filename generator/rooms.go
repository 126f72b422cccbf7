package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

// ImpossiblePlacement is the score of a placement that leaves the container.
const ImpossiblePlacement = math.MaxInt

const (
	adjacentCorridorScore = 1
	overlapCorridorScore  = 3
	overlapRoomScore      = 100
)

// RoomGenerator places walled rooms of random size into a carved maze.
type RoomGenerator struct {
	rng       *rand.Rand
	minWidth  int
	maxWidth  int
	minHeight int
	maxHeight int
}

// NewRoomGenerator creates a generator drawing room widths from
// [minWidth, maxWidth] and heights from [minHeight, maxHeight].
func NewRoomGenerator(rng *rand.Rand, minWidth, maxWidth, minHeight, maxHeight int) (*RoomGenerator, error) {
	if err := checkRange("width", minWidth, maxWidth); err != nil {
		return nil, err
	}
	if err := checkRange("height", minHeight, maxHeight); err != nil {
		return nil, err
	}

	return &RoomGenerator{
		rng:       ensureRand(rng),
		minWidth:  minWidth,
		maxWidth:  maxWidth,
		minHeight: minHeight,
		maxHeight: maxHeight,
	}, nil
}

func checkRange(name string, lo, hi int) error {
	if lo < 1 || lo > hi {
		return fmt.Errorf("%w: room %s range [%d, %d] must satisfy 1 <= min <= max", dungeon.ErrInvalidArgument, name, lo, hi)
	}
	return nil
}

// PlacementScore rates placing room with its first cell at (x, y) inside
// container. Lower is better: each cell scores 1 per neighbouring corridor,
// 3 when it covers a corridor and 100 per placed room it overlaps.
func PlacementScore(container, room *dungeon.Room, x, y int) (int, error) {
	if x < container.Left() || y < container.Top() ||
		x+room.Width() > container.Left()+container.Width() ||
		y+room.Height() > container.Top()+container.Height() {
		return ImpossiblePlacement, nil
	}

	placed := container.Rooms()
	score := 0
	for j := 0; j < room.Height(); j++ {
		for i := 0; i < room.Width(); i++ {
			tx, ty := x+i, y+j

			for _, d := range dungeon.Directions {
				corridor, err := container.IsAdjacentCellCorridor(tx, ty, d)
				if err != nil {
					return ImpossiblePlacement, err
				}
				if corridor {
					score += adjacentCorridorScore
				}
			}

			cell, err := container.Cell(tx, ty)
			if err != nil {
				return ImpossiblePlacement, err
			}
			if cell.IsCorridor() {
				score += overlapCorridorScore
			}

			for _, existing := range placed {
				if !existing.IsOutOfBounds(tx, ty) {
					score += overlapRoomScore
				}
			}
		}
	}
	return score, nil
}

// CreateRooms places numRooms rooms sized within the generator's ranges.
func (g *RoomGenerator) CreateRooms(container *dungeon.Room, numRooms int) error {
	return g.CreateRoomsSized(container, numRooms, g.minWidth, g.maxWidth, g.minHeight, g.maxHeight)
}

// CreateRoomsSized places numRooms walled rooms into container. Each room is
// tried at every corridor cell and placed where it scores lowest; the first
// candidate wins ties. Candidates overlapping a placed room are skipped, and
// ErrNoPlacement is returned when none remain.
func (g *RoomGenerator) CreateRoomsSized(container *dungeon.Room, numRooms, minWidth, maxWidth, minHeight, maxHeight int) error {
	if numRooms < 0 {
		return fmt.Errorf("%w: number of rooms must be >= 0, got %d", dungeon.ErrInvalidArgument, numRooms)
	}
	if err := checkRange("width", minWidth, maxWidth); err != nil {
		return err
	}
	if err := checkRange("height", minHeight, maxHeight); err != nil {
		return err
	}

	for n := 0; n < numRooms; n++ {
		width := intBetween(g.rng, minWidth, maxWidth)
		height := intBetween(g.rng, minHeight, maxHeight)
		room, err := dungeon.NewWalledRoom(0, 0, width, height)
		if err != nil {
			return err
		}

		corridors := container.CorridorCells()
		if len(corridors) == 0 {
			return ErrNoCorridors
		}

		bestScore, bestX, bestY := ImpossiblePlacement, -1, -1
		for _, c := range corridors {
			if overlapsPlacedRoom(container, room, c.X, c.Y) {
				continue
			}
			score, err := PlacementScore(container, room, c.X, c.Y)
			if err != nil {
				return err
			}
			if score < bestScore {
				bestScore, bestX, bestY = score, c.X, c.Y
			}
		}
		if bestX < 0 || bestY < 0 {
			return fmt.Errorf("%w: %dx%d room", ErrNoPlacement, width, height)
		}

		if err := container.AddRoom(room, bestX, bestY); err != nil {
			return err
		}
	}
	return nil
}

// overlapsPlacedRoom reports whether room placed at (x, y) would share a cell
// with a room already in container.
func overlapsPlacedRoom(container, room *dungeon.Room, x, y int) bool {
	for _, existing := range container.Rooms() {
		if x < existing.Left()+existing.Width() && existing.Left() < x+room.Width() &&
			y < existing.Top()+existing.Height() && existing.Top() < y+room.Height() {
			return true
		}
	}
	return false
}
