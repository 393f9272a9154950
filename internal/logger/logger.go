package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default simulation event log, relative to the working directory.
const LogFilePath = "logs/physics.txt"

// MaxLines is how many recent lines are kept in memory for the console.
const MaxLines = 500

// Logger keeps recent event lines (spawns, culls, console commands and their errors) in memory
// and appends every line to a file on disk. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
// An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log appends one line prefixed with [timestamp] and appends it to the log file.
// File errors are dropped; logging never stops the simulation.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - MaxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the retained lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
