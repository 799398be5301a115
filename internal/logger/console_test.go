package logger

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/harrison/cmdx/internal/models"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info", false)

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected color output to be off")
		}
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "LOUD", false)
		if logger.logLevel != "info" {
			t.Errorf("expected info, got %q", logger.logLevel)
		}
	})

	t.Run("level is case-insensitive", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "  DEBUG ", false)
		if logger.logLevel != "debug" {
			t.Errorf("expected debug, got %q", logger.logLevel)
		}
	})
}

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{"trace", "trace", true},
		{"debug", "trace", false},
		{"debug", "debug", true},
		{"info", "debug", false},
		{"info", "info", true},
		{"warn", "info", false},
		{"warn", "warn", true},
		{"warn", "error", true},
		{"error", "warn", false},
		{"error", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel+"/"+tt.messageLevel, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel, false)

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace("msg")
			case "debug":
				logger.LogDebug("msg")
			case "info":
				logger.LogInfo("msg")
			case "warn":
				logger.LogWarn("msg")
			case "error":
				logger.LogError("msg")
			}

			appeared := strings.Contains(buf.String(), "msg")
			if appeared != tt.shouldAppear {
				t.Errorf("appeared = %v, want %v (output %q)", appeared, tt.shouldAppear, buf.String())
			}
			if appeared && !strings.Contains(buf.String(), "["+strings.ToUpper(tt.messageLevel)+"]") {
				t.Errorf("missing level tag in %q", buf.String())
			}
		})
	}
}

// TestTimestampFormat verifies the [HH:MM:SS] prefix.
func TestTimestampFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info", false).LogInfo("hello")

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] hello\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace", false)
	// must not panic
	logger.LogError("ignored")
	logger.LogListingStart("abc", 1)
	logger.LogListingSummary("abc", &models.ListingResult{}, time.Millisecond)
}

func TestLogListing(t *testing.T) {
	t.Run("debug level shows start and summary", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "debug", false)

		logger.LogListingStart("run1", 3)
		logger.LogListingSummary("run1", &models.ListingResult{
			Files:       []models.FileEntry{{Name: "a"}},
			Directories: []models.DirectoryEntry{{Name: "d"}},
			Errors:      []*models.PathError{{Path: "x"}},
			InputCount:  3,
		}, 12*time.Millisecond)

		out := buf.String()
		if !strings.Contains(out, "run run1: listing 3 path(s)") {
			t.Errorf("missing start line: %q", out)
		}
		if !strings.Contains(out, "run run1: 1 file(s), 1 director(ies), 1 error(s) in 12ms") {
			t.Errorf("missing summary line: %q", out)
		}
		if strings.Contains(out, "[WARN]") {
			t.Errorf("unexpected warning: %q", out)
		}
	})

	t.Run("warn level only reports total failure", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "warn", false)

		logger.LogListingStart("run2", 1)
		logger.LogListingSummary("run2", &models.ListingResult{
			Errors:     []*models.PathError{{Path: "x"}},
			InputCount: 1,
		}, time.Millisecond)

		out := buf.String()
		if strings.Contains(out, "[DEBUG]") {
			t.Errorf("debug lines should be filtered: %q", out)
		}
		if !strings.Contains(out, "[WARN] run run2: all 1 path(s) failed") {
			t.Errorf("missing warning: %q", out)
		}
	})
}

func TestDurationFormatting(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{500 * time.Microsecond, "500µs"},
		{12 * time.Millisecond, "12ms"},
		{3 * time.Second, "3s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

// TestConcurrentLogging verifies lines are never interleaved.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info", false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.LogInfo(fmt.Sprintf("message %d", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "[INFO] message ") {
			t.Errorf("malformed line %q", line)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "WARN"} {
		if !IsValidLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
	for _, level := range []string{"", "verbose", "fatal"} {
		if IsValidLevel(level) {
			t.Errorf("expected %q to be invalid", level)
		}
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	logger.LogDebug("x")
	logger.LogListingStart("id", 1)
	logger.LogListingSummary("id", nil, 0)
}

// TestColorOutput verifies the caller's color decision is honored even when
// the writer is not a terminal.
func TestColorOutput(t *testing.T) {
	t.Run("forced on", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "info", true).LogWarn("careful")

		if !strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("expected ANSI escape in %q", buf.String())
		}
		if !strings.HasSuffix(buf.String(), " careful\n") {
			t.Errorf("message should stay undecorated, got %q", buf.String())
		}
	})

	t.Run("off", func(t *testing.T) {
		buf := &bytes.Buffer{}
		NewConsoleLogger(buf, "info", false).LogWarn("careful")

		if strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("unexpected ANSI escape in %q", buf.String())
		}
		if !strings.Contains(buf.String(), "[WARN] careful") {
			t.Errorf("unexpected line %q", buf.String())
		}
	})
}
