// Package logger holds the omapctl process logger. Logging is off unless
// Init is given a directory; records then go to a dated JSON file, one per
// day, tagged with the command that wrote them.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L = discard()

const (
	logPrefix     = "omapctl-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 14
)

// Options configures Init.
type Options struct {
	Dir      string     // Directory for log files; empty disables logging
	Level    slog.Level // Minimum level; the zero value is LevelInfo
	Command  string     // Command path recorded on every record, e.g. "omapctl set"
	Encoding string     // Document encoding recorded on every record
}

// current is the open log file, closed by Close or the next Init.
var current *os.File

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Init configures logging for one omapctl run. Call it before any log calls.
func Init(opts Options) error {
	Close()
	if opts.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return err
	}

	now := time.Now()
	// Best effort; a failed cleanup never blocks logging.
	cleanOldLogs(opts.Dir, now)

	f, err := os.OpenFile(FileName(opts.Dir, now), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	current = f

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})).
		With("command", opts.Command, "encoding", opts.Encoding, "pid", os.Getpid())
	return nil
}

// Close closes the log file, if any, and returns to discarding.
func Close() {
	if current != nil {
		current.Close()
		current = nil
	}
	L = discard()
}

// FileName returns the log file used in dir on day now.
func FileName(dir string, now time.Time) string {
	return filepath.Join(dir, logPrefix+now.Format(dateLayout)+logSuffix)
}

// cleanOldLogs removes omapctl log files dated more than retentionDays
// before now. Files without a parsable date are left alone.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		date, ok := strings.CutPrefix(name, logPrefix)
		if !ok {
			continue
		}
		date, ok = strings.CutSuffix(date, logSuffix)
		if !ok {
			continue
		}
		logDate, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

// Document returns a logger whose records carry the document path.
func Document(path string) *slog.Logger {
	return L.With("path", path)
}

// Edit records a change written to the document at path. op names the
// change ("set", "insert", "remove", "merge").
func Edit(path, op string, args ...any) {
	Document(path).Info("document edited", append([]any{"op", op}, args...)...)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
