// Package log provides the logger used throughout the emulator.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// New returns a Logger writing to stderr at info level.
func New() Logger {
	return newLogrus(os.Stderr, logrus.InfoLevel)
}

// NewDebug returns a Logger writing to w at debug level.
func NewDebug(w io.Writer) Logger {
	return newLogrus(w, logrus.DebugLevel)
}

func newLogrus(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
