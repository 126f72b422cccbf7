package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
	"github.com/beka-birhanu/vinom-dungeon/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	level string
	msg   string
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []entry
	onInfo  func(msg string)
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	l.entries = append(l.entries, entry{level: level, msg: msg})
	l.mu.Unlock()
}

func (l *recordingLogger) Info(msg string) {
	l.record("INFO", msg)
	if l.onInfo != nil {
		l.onInfo(msg)
	}
}

func (l *recordingLogger) Warning(msg string) { l.record("WARNING", msg) }
func (l *recordingLogger) Error(msg string)   { l.record("ERROR", msg) }

func (l *recordingLogger) contains(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && strings.Contains(e.msg, substr) {
			return true
		}
	}
	return false
}

func testOptions(seed int64) *Options {
	return &Options{
		Width:         15,
		Height:        15,
		NumRooms:      5,
		Randomness:    30,
		Sparseness:    50,
		RoomMinWidth:  2,
		RoomMaxWidth:  3,
		RoomMinHeight: 2,
		RoomMaxHeight: 3,
		Seed:          seed,
	}
}

func TestNewLevelService(t *testing.T) {
	t.Run("Logger is required", func(t *testing.T) {
		_, err := NewLevelService(nil, testOptions(1))
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)
	})

	t.Run("Generator options are validated", func(t *testing.T) {
		opts := testOptions(1)
		opts.Sparseness = 120
		_, err := NewLevelService(&recordingLogger{}, opts)
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)

		opts = testOptions(1)
		opts.RoomMinWidth = 0
		_, err = NewLevelService(&recordingLogger{}, opts)
		assert.ErrorIs(t, err, dungeon.ErrInvalidArgument)
	})

	t.Run("Sizes fall back to defaults", func(t *testing.T) {
		opts := testOptions(1)
		opts.Width, opts.Height, opts.NumRooms = 0, -3, -1

		_, err := NewLevelService(&recordingLogger{}, opts)
		require.NoError(t, err)
		assert.Equal(t, defaultWidth, opts.Width)
		assert.Equal(t, defaultHeight, opts.Height)
		assert.Equal(t, defaultNumRooms, opts.NumRooms)
	})
}

func TestLevelService_Generate(t *testing.T) {
	t.Run("Fixed seed is reproducible", func(t *testing.T) {
		logger := &recordingLogger{}
		svc, err := NewLevelService(logger, testOptions(1234))
		require.NoError(t, err)

		first, err := svc.Generate(context.Background())
		require.NoError(t, err)
		second, err := svc.Generate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(1234), first.Seed)
		assert.Equal(t, 31, first.Level.Width())
		assert.Equal(t, 31, first.Level.Height())
		assert.Equal(t, 5, first.Rooms)
		assert.Equal(t, first.Level.String(), second.Level.String())
		assert.NotEqual(t, first.ID, second.ID)

		assert.True(t, logger.contains("INFO", "Maze carved"))
		assert.True(t, logger.contains("INFO", "Rooms placed: 5"))
		assert.True(t, logger.contains("INFO", "Doors cut"))
		assert.True(t, logger.contains("INFO", first.ID.String()))
	})

	t.Run("Zero seed is drawn from the clock", func(t *testing.T) {
		svc, err := NewLevelService(&recordingLogger{}, testOptions(0))
		require.NoError(t, err)
		svc.(*LevelService).now = func() time.Time { return time.Unix(0, 42) }

		generated, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(42), generated.Seed)
		assert.Equal(t, time.Unix(0, 42), generated.CreatedAt)
	})

	t.Run("Debug logs every stage", func(t *testing.T) {
		logger := &recordingLogger{}
		opts := testOptions(7)
		opts.Debug = true
		opts.DeadEndRemoval = 50
		svc, err := NewLevelService(logger, opts)
		require.NoError(t, err)

		_, err = svc.Generate(context.Background())
		require.NoError(t, err)

		for _, stage := range []generator.Stage{generator.StageMaze, generator.StageDeadEnds, generator.StageRooms, generator.StageDoors} {
			assert.True(t, logger.contains("INFO", "After "+string(stage)+" stage:\nOrigin = (0, 0)"), string(stage))
		}
	})

	t.Run("Canceled context", func(t *testing.T) {
		svc, err := NewLevelService(&recordingLogger{}, testOptions(1))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = svc.Generate(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Cancellation between stages", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		logger := &recordingLogger{}
		logger.onInfo = func(msg string) {
			if strings.HasPrefix(msg, "Maze carved") {
				cancel()
			}
		}
		svc, err := NewLevelService(logger, testOptions(1))
		require.NoError(t, err)

		generated, err := svc.Generate(ctx)
		assert.Nil(t, generated)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, logger.contains("INFO", "Rooms placed"))
		assert.True(t, logger.contains("ERROR", "canceled"))
	})

	t.Run("Pipeline errors are logged", func(t *testing.T) {
		logger := &recordingLogger{}
		opts := testOptions(1)
		opts.Sparseness = 100
		svc, err := NewLevelService(logger, opts)
		require.NoError(t, err)

		_, err = svc.Generate(context.Background())
		assert.ErrorIs(t, err, generator.ErrNoCorridors)
		assert.True(t, logger.contains("ERROR", "cannot place rooms"))
	})
}
