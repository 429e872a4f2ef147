// Package logger provides leveled logging for glbanim.
//
// Warnings and errors are always written. Debug and info messages, and
// section headers, are written only in verbose mode (the --verbose flag),
// where they trace the fetch, retarget and write pipeline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = map[Level]string{
	LevelDebug: "[DEBUG]",
	LevelInfo:  "[INFO]",
	LevelWarn:  "[WARN]",
	LevelError: "[ERROR]",
}

// String returns the level's tag without brackets.
func (l Level) String() string {
	tag, ok := levelTags[l]
	if !ok {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return tag[1 : len(tag)-1]
}

var (
	mu     sync.RWMutex
	level  = LevelWarn
	output io.Writer = os.Stderr
)

// SetVerbose lowers the threshold to debug, or restores it to warn.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// IsVerbose returns true if debug messages are being written.
func IsVerbose() bool {
	return Enabled(LevelDebug)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Reset restores the default threshold and output.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	level = LevelWarn
	output = os.Stderr
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l >= level {
		fmt.Fprintf(output, levelTags[l]+" "+format+"\n", args...)
	}
}

// Debug writes a message in verbose mode.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info writes an informational message in verbose mode.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn writes a warning.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error writes an error.
func Error(format string, args ...any) { logf(LevelError, format, args...) }

// Section writes a section header in verbose mode.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if level <= LevelDebug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
