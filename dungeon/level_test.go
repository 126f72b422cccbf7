package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	_, err := NewLevel(0, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	level, err := NewLevel(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, level.Width())
	assert.Equal(t, 2, level.Height())
	assert.Equal(t, 6, level.Count(TileWall))
}

func TestLevel_Tiles(t *testing.T) {
	level, err := NewLevel(3, 3)
	require.NoError(t, err)

	require.NoError(t, level.SetTile(1, 1, TileEmpty))
	require.NoError(t, level.SetTile(1, 2, TileDoor))

	tile, err := level.Tile(1, 1)
	require.NoError(t, err)
	assert.Equal(t, TileEmpty, tile)

	_, err = level.Tile(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, level.SetTile(-1, 0, TileEmpty), ErrOutOfBounds)

	assert.Equal(t, "###\n#.#\n#+#\n", level.String())
}
