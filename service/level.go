package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
	"github.com/beka-birhanu/vinom-dungeon/generator"
	"github.com/beka-birhanu/vinom-dungeon/service/i"
	"github.com/google/uuid"
)

const (
	defaultWidth    = 15
	defaultHeight   = 15
	defaultNumRooms = 5
)

// Options configures a LevelService. Non-positive sizes fall back to 15 cells
// and a negative room count to 5; the remaining fields are validated by the
// generators.
type Options struct {
	Width          int
	Height         int
	NumRooms       int
	Randomness     int
	Sparseness     int
	DeadEndRemoval int
	RoomMinWidth   int
	RoomMaxWidth   int
	RoomMinHeight  int
	RoomMaxHeight  int
	// Seed of the random source. 0 draws a new seed from the clock on every run.
	Seed int64
	// Debug logs the cell grid after every stage.
	Debug bool
}

// LevelService runs the generation pipeline and logs its progress.
type LevelService struct {
	logger i.Logger
	opts   *Options
	now    func() time.Time
}

// NewLevelService validates opts by building throwaway generators from them.
func NewLevelService(logger i.Logger, opts *Options) (i.LevelGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger is required", dungeon.ErrInvalidArgument)
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.NumRooms < 0 {
		opts.NumRooms = defaultNumRooms
	}

	s := &LevelService{logger: logger, opts: opts, now: time.Now}
	if _, _, err := s.generators(rand.New(rand.NewSource(1))); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LevelService) generators(rng *rand.Rand) (*generator.MazeGenerator, *generator.RoomGenerator, error) {
	mazes, err := generator.NewMazeGenerator(rng, s.opts.Randomness, s.opts.Sparseness)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := generator.NewRoomGenerator(rng, s.opts.RoomMinWidth, s.opts.RoomMaxWidth, s.opts.RoomMinHeight, s.opts.RoomMaxHeight)
	if err != nil {
		return nil, nil, err
	}
	return mazes, rooms, nil
}

// Generate produces a new level. A canceled context aborts the run at the
// next stage boundary.
func (s *LevelService) Generate(ctx context.Context) (*dungeon.GeneratedLevel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := s.opts.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	id := uuid.New()
	s.logger.Info(fmt.Sprintf("Generating level %s: %dx%d cells, %d rooms, seed %d", id, s.opts.Width, s.opts.Height, s.opts.NumRooms, seed))

	mazes, rooms, err := s.generators(rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	level, err := generator.GenerateWithOptions(generator.LevelOptions{
		Width:          s.opts.Width,
		Height:         s.opts.Height,
		NumRooms:       s.opts.NumRooms,
		DeadEndRemoval: s.opts.DeadEndRemoval,
		OnStage: func(stage generator.Stage, room *dungeon.Room) error {
			s.logStage(stage, room)
			return ctx.Err()
		},
	}, mazes, rooms)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating level %s: %v", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Level %s expanded to %dx%d tiles (%d floor, %d doors)",
		id, level.Width(), level.Height(), level.Count(dungeon.TileEmpty), level.Count(dungeon.TileDoor)))

	return &dungeon.GeneratedLevel{
		ID:        id,
		Seed:      seed,
		Width:     s.opts.Width,
		Height:    s.opts.Height,
		Rooms:     s.opts.NumRooms,
		Level:     level,
		CreatedAt: s.now(),
	}, nil
}

func (s *LevelService) logStage(stage generator.Stage, room *dungeon.Room) {
	switch stage {
	case generator.StageMaze:
		s.logger.Info(fmt.Sprintf("Maze carved: %d corridor cells, %d dead ends", len(room.CorridorCells()), len(room.DeadEndCells())))
	case generator.StageDeadEnds:
		s.logger.Info(fmt.Sprintf("Dead ends removed: %d corridor cells", len(room.CorridorCells())))
	case generator.StageRooms:
		s.logger.Info(fmt.Sprintf("Rooms placed: %d", len(room.Rooms())))
	case generator.StageDoors:
		s.logger.Info("Doors cut")
		if !room.IsConnected() {
			s.logger.Warning("Level has unreachable areas")
		}
	}

	if s.opts.Debug {
		s.logger.Info(fmt.Sprintf("After %s stage:\n%s", stage, room))
	}
}
