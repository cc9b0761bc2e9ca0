// Package debug provides the engine's diagnostic logger.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger writes diagnostics when enabled and discards them otherwise
type Logger struct {
	enabled bool
	log     *log.Logger
}

// NewLogger creates a logger writing to w
func NewLogger(enabled bool, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		enabled: enabled,
		log:     log.New(w, "dungeon: ", log.LstdFlags),
	}
}

// NewFileLogger appends to the named file, falling back to stderr if it
// cannot be opened
func NewFileLogger(enabled bool, path string) *Logger {
	if !enabled {
		return NewLogger(false, io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		l := NewLogger(true, os.Stderr)
		l.Printf("cannot open log file %s: %v", path, err)
		return l
	}
	l := NewLogger(true, f)
	l.Printf("=== DEBUG MODE ENABLED ===")
	return l
}

// Enabled reports whether messages are written
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

func (l *Logger) Printf(format string, args ...any) {
	if l.Enabled() {
		l.log.Printf(format, args...)
	}
}

func (l *Logger) Println(args ...any) {
	if l.Enabled() {
		l.log.Println(args...)
	}
}

// Warnf logs a problem that does not stop the current operation
func (l *Logger) Warnf(format string, args ...any) {
	if l.Enabled() {
		l.log.Printf("WARN "+format, args...)
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewLogger(false, io.Discard)
)

// Default returns the process-wide logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
