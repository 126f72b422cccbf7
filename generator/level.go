package generator

import (
	"fmt"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
)

// Stage names a step of the level pipeline.
type Stage string

const (
	StageMaze      Stage = "maze"
	StageDeadEnds  Stage = "dead-ends"
	StageRooms     Stage = "rooms"
	StageDoors     Stage = "doors"
	StageExpansion Stage = "expansion"
)

// LevelOptions configures GenerateWithOptions.
type LevelOptions struct {
	Width    int // width of the maze in cells
	Height   int // height of the maze in cells
	NumRooms int // rooms placed into the maze
	// DeadEndRemoval is the chance, in percent, that a dead end is extended
	// into a loop before rooms are placed. 0 skips the step.
	DeadEndRemoval int
	// OnStage, when set, observes the room after each cell based stage. A
	// non-nil error aborts the run.
	OnStage func(stage Stage, room *dungeon.Room) error
}

// Generate carves a width x height maze, places numRooms rooms into it, cuts
// doors and expands the result into a (2*width+1) x (2*height+1) Level.
func Generate(width, height int, mazeGenerator *MazeGenerator, roomGenerator *RoomGenerator, numRooms int) (*dungeon.Level, error) {
	return GenerateWithOptions(LevelOptions{Width: width, Height: height, NumRooms: numRooms}, mazeGenerator, roomGenerator)
}

// GenerateWithOptions runs the level pipeline described by opts. Any error
// aborts the run; no partial level is returned.
func GenerateWithOptions(opts LevelOptions, mazeGenerator *MazeGenerator, roomGenerator *RoomGenerator) (*dungeon.Level, error) {
	if mazeGenerator == nil || roomGenerator == nil {
		return nil, fmt.Errorf("%w: maze and room generators are required", dungeon.ErrInvalidArgument)
	}
	if err := checkPercent("dead end removal modifier", opts.DeadEndRemoval); err != nil {
		return nil, err
	}

	notify := func(stage Stage, room *dungeon.Room) error {
		if opts.OnStage == nil {
			return nil
		}
		if err := opts.OnStage(stage, room); err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}
		return nil
	}

	room, err := mazeGenerator.Generate(0, 0, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageMaze, err)
	}
	if err := notify(StageMaze, room); err != nil {
		return nil, err
	}

	if opts.DeadEndRemoval > 0 {
		if err := mazeGenerator.RemoveDeadEnds(room, opts.DeadEndRemoval); err != nil {
			return nil, fmt.Errorf("%s: %w", StageDeadEnds, err)
		}
		if err := notify(StageDeadEnds, room); err != nil {
			return nil, err
		}
	}

	if err := roomGenerator.CreateRooms(room, opts.NumRooms); err != nil {
		return nil, fmt.Errorf("%s: %w", StageRooms, err)
	}
	if err := notify(StageRooms, room); err != nil {
		return nil, err
	}

	if err := CreateDoors(room); err != nil {
		return nil, fmt.Errorf("%s: %w", StageDoors, err)
	}
	if err := notify(StageDoors, room); err != nil {
		return nil, err
	}

	level, err := ExpandToTiles(room)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StageExpansion, err)
	}
	return level, nil
}

// ExpandToTiles converts a room into tiles at twice the resolution plus one:
// cell (x, y) becomes tile (2x+1, 2y+1) and each side becomes the tile between
// two cell tiles, so the level is ringed by rock.
func ExpandToTiles(room *dungeon.Room) (*dungeon.Level, error) {
	level, err := dungeon.NewLevel(room.Width()*2+1, room.Height()*2+1)
	if err != nil {
		return nil, err
	}

	for _, inner := range room.Rooms() {
		minX := (inner.Left()-room.Left())*2 + 1
		minY := (inner.Top()-room.Top())*2 + 1
		maxX := (inner.Left()-room.Left()+inner.Width())*2 - 1
		maxY := (inner.Top()-room.Top()+inner.Height())*2 - 1

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if err := level.SetTile(x, y, dungeon.TileEmpty); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, cell := range room.CorridorCells() {
		tx := (cell.X-room.Left())*2 + 1
		ty := (cell.Y-room.Top())*2 + 1
		if err := level.SetTile(tx, ty, dungeon.TileEmpty); err != nil {
			return nil, err
		}

		for _, d := range dungeon.Directions {
			side := cell.Side(d)
			if side != dungeon.Empty && side != dungeon.Door {
				continue
			}
			dx, dy := d.Offset()
			if err := level.SetTile(tx+dx, ty+dy, side.ToTileState()); err != nil {
				return nil, err
			}
		}
	}
	return level, nil
}
