// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called, so
// packages and tests can log unconditionally.
var Log = newDiscard()

// Init configures the global logger. Call it once from main.
// An unknown level falls back to info; format "json" selects the JSON
// formatter, anything else the text formatter.
func Init(level, format string, out io.Writer) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(out)
	Log = l
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
