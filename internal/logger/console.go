// Package logger provides leveled console logging for cmdx.
//
// Log lines go to a separate writer (stderr in the CLI) so that the listing
// on stdout stays byte-exact. Implementations are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/cmdx/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger writes [HH:MM:SS] [LEVEL] prefixed lines to a writer.
// Messages below the configured level are dropped.
// Level tags are colored when colorOutput is set.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// colorOutput is decided by the caller from the color mode and writer.
func NewConsoleLogger(writer io.Writer, logLevel string, colorOutput bool) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: colorOutput,
	}
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
// colorOutput was already decided for this writer, so fatih/color's global
// stdout detection is bypassed.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var attr color.Attribute

	switch strings.ToUpper(level) {
	case "TRACE":
		attr = color.FgHiBlack
	case "DEBUG":
		attr = color.FgCyan
	case "INFO":
		attr = color.FgBlue
	case "WARN":
		attr = color.FgYellow
	case "ERROR":
		attr = color.FgRed
	default:
		return fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	c := color.New(attr)
	c.EnableColor()
	return fmt.Sprintf("[%s] [%s] %s\n", ts, c.Sprint(level), message)
}

// LogListingStart logs the start of a listing run at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] run <id>: listing <n> path(s)"
func (cl *ConsoleLogger) LogListingStart(runID string, pathCount int) {
	cl.LogDebug(fmt.Sprintf("run %s: listing %d path(s)", runID, pathCount))
}

// LogListingSummary logs the outcome of a listing run at DEBUG level,
// followed by one WARN line when every input path failed.
func (cl *ConsoleLogger) LogListingSummary(runID string, result *models.ListingResult, duration time.Duration) {
	if result == nil {
		return
	}

	cl.LogDebug(fmt.Sprintf("run %s: %d file(s), %d director(ies), %d error(s) in %s",
		runID, len(result.Files), len(result.Directories), len(result.Errors), formatDuration(duration)))

	if result.AllFailed() {
		cl.LogWarn(fmt.Sprintf("run %s: all %d path(s) failed", runID, result.InputCount))
	}
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a short human-readable string.
// Examples: "850µs", "12ms", "3s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	case d >= time.Millisecond:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Listers use it when no logger is configured.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogDebug is a no-op implementation.
func (n *NoOpLogger) LogDebug(message string) {}

// LogListingStart is a no-op implementation.
func (n *NoOpLogger) LogListingStart(runID string, pathCount int) {}

// LogListingSummary is a no-op implementation.
func (n *NoOpLogger) LogListingSummary(runID string, result *models.ListingResult, duration time.Duration) {}
