package dungeon

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedLevel records one generation run.
type GeneratedLevel struct {
	ID        uuid.UUID
	Seed      int64 // seed of the random source, replays the run
	Width     int   // maze width in cells
	Height    int   // maze height in cells
	Rooms     int   // rooms placed
	Level     *Level
	CreatedAt time.Time
}
