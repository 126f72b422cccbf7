package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-dungeon/config"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger prints "[PREFIX] [LEVEL] message" lines in the component's color.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

func (l *Logger) Info(msg string) {
	l.print("INFO", config.LogInfoColor, msg)
}

func (l *Logger) Warning(msg string) {
	l.print("WARNING", config.LogWarningColor, msg)
}

func (l *Logger) Error(msg string) {
	l.print("ERROR", config.LogErrorColor, msg)
}

func (l *Logger) print(level, levelColor, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg)
}
