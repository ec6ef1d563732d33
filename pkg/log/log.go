// Package log provides the minimal logging interface the core uses for
// diagnostics. There's nothing GB-specific here; it exists so every
// component takes a Logger instead of reaching for fmt.Printf directly,
// and so a host can swap in its own implementation.
package log

import "github.com/sirupsen/logrus"

// Logger is satisfied by anything that can log at three levels. The
// core never checks log levels itself — that's the implementation's
// job. *logrus.Logger already implements this directly (grounded on
// thelolagemann-gomeboy/internal/mmu/mmu.go and internal/io/io.go,
// both of which wire a *logrus.Logger straight into a log.Logger-typed
// field), so New below needs no wrapper type.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns the default Logger: a *logrus.Logger at debug level with
// a plain, untimestamped text formatter, matching the construction in
// NewMMU/NewIO.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// Null is a Logger that discards everything. Useful in tests that
// don't want console noise from fatal-path diagnostics.
func Null() Logger {
	return &nullLogger{}
}

type nullLogger struct{}

func (n *nullLogger) Infof(string, ...interface{})  {}
func (n *nullLogger) Errorf(string, ...interface{}) {}
func (n *nullLogger) Debugf(string, ...interface{}) {}
