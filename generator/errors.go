package generator

import (
	"fmt"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

var (
	ErrDirectionsExhausted = fmt.Errorf("%w: all directions have been exhausted", dungeon.ErrInvalidState)
	ErrNoVisitedCells      = fmt.Errorf("%w: no visited cells to backtrack to", dungeon.ErrInvalidState)
	ErrNoCorridors         = fmt.Errorf("%w: cannot place rooms if the map has no corridors", dungeon.ErrInvalidState)
	ErrNoPlacement         = fmt.Errorf("%w: room does not fit at any corridor cell", dungeon.ErrInvalidState)
)

func checkPercent(name string, value int) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %d", dungeon.ErrInvalidArgument, name, value)
	}
	return nil
}
