package logging

import "github.com/vvka-141/deckpick/pkg/deckpick"

// MultiLogger forwards every message to each wrapped logger in order.
type MultiLogger struct {
	loggers []deckpick.Logger
}

// NewMultiLogger skips nil entries.
func NewMultiLogger(loggers ...deckpick.Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) Verbose(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Verbose(format, args...)
	}
}

func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

func (m *MultiLogger) Warn(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Warn(format, args...)
	}
}

func (m *MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(format, args...)
	}
}

var _ deckpick.Logger = (*MultiLogger)(nil)
