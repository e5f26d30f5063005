package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Audit levels
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// AuditLog records every chat turn. Implementations must not fail the
// caller: write errors are swallowed.
type AuditLog interface {
	Append(level, message string)
}

// FileAuditLog appends "[timestamp] [LEVEL] message" lines to a file and
// echoes them to the console
type FileAuditLog struct {
	mu      sync.Mutex
	file    io.WriteCloser
	console io.Writer
	now     func() time.Time
}

// NewFileAuditLog opens (or creates) the log file in append mode
func NewFileAuditLog(path string) (*FileAuditLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log %s: %w", path, err)
	}
	return &FileAuditLog{
		file:    f,
		console: os.Stdout,
		now:     time.Now,
	}, nil
}

// Append writes one audit line
func (a *FileAuditLog) Append(level, message string) {
	line := fmt.Sprintf("[%s] [%s] %s\n", a.now().Format("2006-01-02 15:04:05"), level, message)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.console != nil {
		io.WriteString(a.console, line)
	}
	if a.file == nil {
		return
	}
	if _, err := io.WriteString(a.file, line); err != nil {
		log.Printf("⚠️  Failed to write audit log: %v", err)
	}
}

// Close flushes and closes the underlying file
func (a *FileAuditLog) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}
