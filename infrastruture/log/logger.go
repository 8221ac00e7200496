// Package logger provides the colored, prefixed logger used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-walker/config"
)

// Logger writes leveled lines such as "[APP] [INFO] message", with the
// prefix and level tag colored.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger writing to w. The prefix must not be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Println(fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	))
}
