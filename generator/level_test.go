package generator

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerators(t *testing.T, seed int64, sparseness int) (*MazeGenerator, *RoomGenerator) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	mazes, err := NewMazeGenerator(rng, 30, sparseness)
	require.NoError(t, err)
	rooms, err := NewRoomGenerator(rng, 2, 3, 2, 3)
	require.NoError(t, err)
	return mazes, rooms
}

func TestExpandToTiles(t *testing.T) {
	container := corridorBesideRoom(t)
	require.NoError(t, CreateDoors(container))

	level, err := ExpandToTiles(container)
	require.NoError(t, err)

	want := strings.Join([]string{
		"#########",
		"###...#.#",
		"###...#.#",
		"###...+.#",
		"#######.#",
		"#######.#",
		"#########",
		"",
	}, "\n")
	assert.Equal(t, want, level.String())
}

func TestExpandToTiles_OffsetOrigin(t *testing.T) {
	room, err := dungeon.NewFilledRoom(3, 5, 2, 1)
	require.NoError(t, err)
	require.NoError(t, room.SetSide(5, 3, dungeon.East, dungeon.Empty))

	level, err := ExpandToTiles(room)
	require.NoError(t, err)
	assert.Equal(t, "#####\n#...#\n#####\n", level.String())
}

func TestGenerate(t *testing.T) {
	t.Run("Level layout", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			mazes, rooms := newTestGenerators(t, seed, 50)
			level, err := Generate(15, 15, mazes, rooms, 5)
			require.NoError(t, err)

			require.Equal(t, 31, level.Width())
			require.Equal(t, 31, level.Height())
			assert.Equal(t, 31*31, level.Count(dungeon.TileWall)+level.Count(dungeon.TileEmpty)+level.Count(dungeon.TileDoor))
			assert.Positive(t, level.Count(dungeon.TileEmpty))

			for i := 0; i < 31; i++ {
				for _, pos := range [][2]int{{i, 0}, {i, 30}, {0, i}, {30, i}} {
					tile, err := level.Tile(pos[0], pos[1])
					require.NoError(t, err)
					assert.Equal(t, dungeon.TileWall, tile, "border tile (%d, %d)", pos[0], pos[1])
				}
			}

			// Tiles at even co-ordinates on both axes are corners and never open.
			for y := 0; y < 31; y += 2 {
				for x := 0; x < 31; x += 2 {
					tile, err := level.Tile(x, y)
					require.NoError(t, err)
					assert.NotEqual(t, dungeon.TileDoor, tile)
				}
			}
		}
	})

	t.Run("Same seed same level", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 99, 70)
		a, err := Generate(15, 15, mazes, rooms, 5)
		require.NoError(t, err)

		mazes, rooms = newTestGenerators(t, 99, 70)
		b, err := Generate(15, 15, mazes, rooms, 5)
		require.NoError(t, err)

		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Errors", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 1, 100)

		_, err := Generate(15, 15, nil, rooms, 5)
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)

		_, err = Generate(0, 15, mazes, rooms, 5)
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)

		// Fully sparse mazes have nowhere to put a room.
		_, err = Generate(15, 15, mazes, rooms, 5)
		assert.ErrorIs(t, err, ErrNoCorridors)
		assert.Contains(t, err.Error(), string(StageRooms))
	})
}

func TestGenerateWithOptions(t *testing.T) {
	t.Run("Stages are reported in order", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 3, 50)

		var stages []Stage
		opts := LevelOptions{
			Width:          15,
			Height:         15,
			NumRooms:       3,
			DeadEndRemoval: 100,
			OnStage: func(stage Stage, room *dungeon.Room) error {
				stages = append(stages, stage)
				if stage == StageDeadEnds {
					assert.Empty(t, room.DeadEndCells())
				}
				return nil
			},
		}
		level, err := GenerateWithOptions(opts, mazes, rooms)
		require.NoError(t, err)
		require.NotNil(t, level)

		assert.Equal(t, []Stage{StageMaze, StageDeadEnds, StageRooms, StageDoors}, stages)
	})

	t.Run("Dead end removal is optional", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 3, 50)

		var stages []Stage
		_, err := GenerateWithOptions(LevelOptions{
			Width:    10,
			Height:   8,
			NumRooms: 2,
			OnStage: func(stage Stage, _ *dungeon.Room) error {
				stages = append(stages, stage)
				return nil
			},
		}, mazes, rooms)
		require.NoError(t, err)
		assert.NotContains(t, stages, StageDeadEnds)
	})

	t.Run("Observer error aborts the run", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 3, 50)
		stop := errors.New("stop")

		level, err := GenerateWithOptions(LevelOptions{
			Width:    10,
			Height:   10,
			NumRooms: 2,
			OnStage: func(stage Stage, _ *dungeon.Room) error {
				if stage == StageRooms {
					return stop
				}
				return nil
			},
		}, mazes, rooms)
		assert.Nil(t, level)
		assert.ErrorIs(t, err, stop)
		assert.Contains(t, err.Error(), string(StageRooms))
	})

	t.Run("Dead end removal on a one cell wide maze", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 3, 0)

		level, err := GenerateWithOptions(LevelOptions{
			Width:          1,
			Height:         2,
			DeadEndRemoval: 100,
		}, mazes, rooms)
		require.NoError(t, err)
		require.NotNil(t, level)

		assert.Equal(t, 3, level.Width())
		assert.Equal(t, 5, level.Height())
		assert.Equal(t, 3, level.Count(dungeon.TileEmpty))
	})

	t.Run("Invalid dead end removal", func(t *testing.T) {
		mazes, rooms := newTestGenerators(t, 3, 50)
		_, err := GenerateWithOptions(LevelOptions{Width: 5, Height: 5, DeadEndRemoval: 120}, mazes, rooms)
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)
	})
}
