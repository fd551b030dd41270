// Package logger wraps charm/log for structured CLI logging.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger with the given output and level.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard, log.InfoLevel)
}

// ConversionStarted logs the start of a conversion run.
func (l *Logger) ConversionStarted(notes int, output string) {
	l.Info("conversion started",
		"notes", notes,
		"output", output)
}

// ConversionCompleted logs the completion of a conversion run.
func (l *Logger) ConversionCompleted(chapters, assets, warnings int, duration time.Duration) {
	l.Info("conversion completed",
		"chapters", chapters,
		"assets", assets,
		"warnings", warnings,
		"duration", duration.Round(time.Millisecond))
}

// NoteWarning logs a recoverable problem in one note.
func (l *Logger) NoteWarning(note, message string) {
	l.Warn("note degraded",
		"note", note,
		"reason", message)
}

// Progress logs one pipeline stage update. Matches the conversion
// service's progress callback signature.
func (l *Logger) Progress(stage string, done, total int) {
	l.Debug("progress",
		"stage", stage,
		"done", done,
		"total", total)
}

// NoteError logs a broken note file, such as frontmatter that failed to
// parse and was discarded.
func (l *Logger) NoteError(note string, err error) {
	l.Error("note error",
		"note", note,
		"error", err)
}

// ConfigLoaded logs successful config loading.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// NoteSkipped logs when a scanned file is left out of the book.
func (l *Logger) NoteSkipped(note, reason string) {
	l.Debug("note skipped",
		"note", note,
		"reason", reason)
}
