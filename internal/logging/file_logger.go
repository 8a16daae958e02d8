package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

const (
	fileMaxSizeMB  = 5
	fileMaxBackups = 3
	fileMaxAgeDays = 30
)

// FileLogger appends timestamped lines to a log file so launches can be
// inspected after the terminal session is gone. Verbose lines are always kept.
type FileLogger struct {
	w   io.WriteCloser
	now func() time.Time
	mu  sync.Mutex
}

// NewFileLogger opens (or creates) a size-rotated log file at path.
func NewFileLogger(path string) *FileLogger {
	return newFileLogger(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
	})
}

func newFileLogger(w io.WriteCloser) *FileLogger {
	return &FileLogger{w: w, now: time.Now}
}

func (l *FileLogger) Verbose(format string, args ...interface{}) { l.printf("VERBOSE", format, args) }
func (l *FileLogger) Info(format string, args ...interface{})    { l.printf("INFO", format, args) }
func (l *FileLogger) Warn(format string, args ...interface{})    { l.printf("WARN", format, args) }
func (l *FileLogger) Error(format string, args ...interface{})   { l.printf("ERROR", format, args) }

// Close releases the underlying file handle.
func (l *FileLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}

func (l *FileLogger) printf(level, format string, args []interface{}) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	line = strings.TrimRight(line, "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%s] %s %s\n", l.now().Format(time.RFC3339), level, line)
}

var _ deckpick.Logger = (*FileLogger)(nil)
