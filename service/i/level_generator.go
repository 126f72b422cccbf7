package i

import (
	"context"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

// LevelGenerator produces dungeon levels.
type LevelGenerator interface {
	// Generate runs the full pipeline once. The context is checked between stages.
	Generate(ctx context.Context) (*dungeon.GeneratedLevel, error)
}
