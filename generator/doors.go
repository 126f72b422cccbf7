package generator

import (
	"fmt"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

// redundantDoorRule compares a door facing one way with doors on the same
// facing in the two perpendicular neighbours.
type redundantDoorRule struct {
	facing dungeon.Direction
	across [2]dungeon.Direction
}

var redundantDoorRules = []redundantDoorRule{
	{facing: dungeon.North, across: [2]dungeon.Direction{dungeon.West, dungeon.East}},
	{facing: dungeon.South, across: [2]dungeon.Direction{dungeon.West, dungeon.East}},
	{facing: dungeon.West, across: [2]dungeon.Direction{dungeon.North, dungeon.South}},
	{facing: dungeon.East, across: [2]dungeon.Direction{dungeon.North, dungeon.South}},
}

// CreateDoors cuts a door wherever a boundary cell of a placed room faces a
// corridor, then drops doors made redundant by a neighbouring door that
// opens onto the same corridor.
func CreateDoors(room *dungeon.Room) error {
	for _, inner := range room.Rooms() {
		left, top := inner.Left(), inner.Top()
		right, bottom := left+inner.Width()-1, top+inner.Height()-1

		for _, c := range inner.Cells() {
			boundaries := [dungeon.DirectionCount]bool{
				dungeon.North: c.Y == top,
				dungeon.West:  c.X == left,
				dungeon.South: c.Y == bottom,
				dungeon.East:  c.X == right,
			}
			for _, d := range dungeon.Directions {
				if !boundaries[d] {
					continue
				}
				corridor, err := room.IsAdjacentCellCorridor(c.X, c.Y, d)
				if err != nil {
					return err
				}
				if corridor {
					if err := room.SetSide(c.X, c.Y, d, dungeon.Door); err != nil {
						return err
					}
				}
			}

			if err := removeRedundantDoors(room, c.X, c.Y); err != nil {
				return err
			}
		}
	}
	return nil
}

// removeRedundantDoors demotes the door of a perpendicular neighbour when the
// cell at (x, y) has a door on the same facing and the corridor beyond it
// continues towards that neighbour. The door at (x, y) itself is kept.
func removeRedundantDoors(room *dungeon.Room, x, y int) error {
	for _, rule := range redundantDoorRules {
		cell, err := room.Cell(x, y)
		if err != nil {
			return err
		}
		if cell.Side(rule.facing) != dungeon.Door {
			continue
		}

		beyond, ok, err := room.AdjacentCell(x, y, rule.facing)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: door on the %s side of (%d, %d) leads nowhere", dungeon.ErrInvalidState, rule.facing, x, y)
		}

		for _, side := range rule.across {
			neighbour, ok, err := room.AdjacentCell(x, y, side)
			if err != nil {
				return err
			}
			if !ok || neighbour.Side(rule.facing) != dungeon.Door {
				continue
			}

			corridor, err := room.IsAdjacentCellCorridor(beyond.X, beyond.Y, side)
			if err != nil {
				return err
			}
			if corridor {
				if err := room.SetSide(neighbour.X, neighbour.Y, rule.facing, dungeon.Wall); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
