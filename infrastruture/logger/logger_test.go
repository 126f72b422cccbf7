package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-dungeon/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("Nil writer", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.Error(t, err)
	})
}

func TestLogger_Levels(t *testing.T) {
	cases := []struct {
		name  string
		log   func(l *Logger, msg string)
		level string
		color string
	}{
		{"Info", (*Logger).Info, "[INFO]", config.LogInfoColor},
		{"Warning", (*Logger).Warning, "[WARNING]", config.LogWarningColor},
		{"Error", (*Logger).Error, "[ERROR]", config.LogErrorColor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New("LEVEL-GEN", config.ColorCyan, &buf)
			require.NoError(t, err)

			tc.log(l, "maze carved")

			out := buf.String()
			assert.Contains(t, out, config.ColorCyan+"[LEVEL-GEN]"+config.LogColorReset)
			assert.Contains(t, out, tc.color+tc.level+config.LogColorReset)
			assert.Contains(t, out, "maze carved\n")
		})
	}
}
