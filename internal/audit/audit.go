// Package audit provides an append-only log of commands that changed an
// address book.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Command   string    `json:"command"`
	Args      string    `json:"args,omitempty"`
	OK        bool      `json:"ok"`
	Code      string    `json:"code,omitempty"` // Error code when OK is false
	Message   string    `json:"message,omitempty"`
}

// Logger handles writing to the audit log.
type Logger struct {
	path    string
	enabled bool
	mu      sync.Mutex
}

// LogPath returns the audit log location for a data file: the data file
// name with ".audit.log" appended, in the same directory.
func LogPath(dataPath string) string {
	return filepath.Join(filepath.Dir(dataPath), filepath.Base(dataPath)+".audit.log")
}

// New creates a new audit logger for the given data file.
// If enabled is false, the logger will be a no-op.
func New(dataPath string, enabled bool) *Logger {
	if !enabled {
		return &Logger{enabled: false}
	}
	return &Logger{
		path:    LogPath(dataPath),
		enabled: true,
	}
}

// Enabled reports whether entries are written.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Path returns the log file path, empty when disabled.
func (l *Logger) Path() string { return l.path }

// Log writes an entry to the audit log.
func (l *Logger) Log(entry Entry) error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// LogSuccess records a command that changed the book.
func (l *Logger) LogSuccess(command, args, feedback string) error {
	return l.Log(Entry{Command: command, Args: args, OK: true, Message: feedback})
}

// LogFailure records a mutating command that was rejected.
func (l *Logger) LogFailure(command, args, code, message string) error {
	return l.Log(Entry{Command: command, Args: args, Code: code, Message: message})
}
