// Package log is the logger shared by the benchmark programs. Messages go to
// stderr so that stdout carries only the benchmark report.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// EnableDebugLog is the flag to enable the debug log
var EnableDebugLog = false

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetOutput changes the destination of the log messages.
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

// Printf logs the formatted message at the info level.
func Printf(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// Debug logs the message if the `EnableDebugLog` is true
func Debug(v ...interface{}) {
	if EnableDebugLog {
		logger.Debug(v...)
	}
}

// Debugf logs the formatted message if the `EnableDebugLog` is true
func Debugf(format string, v ...interface{}) {
	if EnableDebugLog {
		logger.Debugf(format, v...)
	}
}

// Debugln logs the message if the `EnableDebugLog` is true
func Debugln(v ...interface{}) {
	if EnableDebugLog {
		logger.Debugln(v...)
	}
}

// WithField returns an entry carrying the key/value pair. Debug calls on the
// entry are still gated by `EnableDebugLog`.
func WithField(key string, value interface{}) Entry {
	return Entry{entry: logger.WithField(key, value)}
}

// Entry is a log message with fields attached.
type Entry struct {
	entry *logrus.Entry
}

// WithField adds another key/value pair.
func (e Entry) WithField(key string, value interface{}) Entry {
	return Entry{entry: e.entry.WithField(key, value)}
}

// Print logs the message at the info level.
func (e Entry) Print(v ...interface{}) {
	e.entry.Info(v...)
}

// Debug logs the message if the `EnableDebugLog` is true
func (e Entry) Debug(v ...interface{}) {
	if EnableDebugLog {
		e.entry.Debug(v...)
	}
}
