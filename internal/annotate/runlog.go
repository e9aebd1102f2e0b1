package annotate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// RunLog is the shared append-only failure log. Every entry is written as
// "[YYYY-MM-DD HH:MM:SS] message" and mirrored to the console. The file
// is never rotated or truncated by the program.
type RunLog struct {
	w    io.Writer
	file *os.File
	now  func() time.Time
}

// OpenRunLog opens (or creates) the log file for appending.
func OpenRunLog(path string) (*RunLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log: %w", err)
	}
	return &RunLog{w: f, file: f, now: time.Now}, nil
}

// NewRunLog builds a log writing to w, for tests.
func NewRunLog(w io.Writer, now func() time.Time) *RunLog {
	if now == nil {
		now = time.Now
	}
	return &RunLog{w: w, now: now}
}

// Logf appends one timestamped entry and mirrors it to the console.
func (l *RunLog) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.w, "[%s] %s\n", l.now().Format("2006-01-02 15:04:05"), msg)
	slog.Warn(msg)
}

// Close closes the underlying file, if any.
func (l *RunLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
