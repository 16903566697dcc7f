// Package logging provides structured logging for todo.
// Logging is off unless a log directory or console output is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// logFilePrefix names files written to LogDir; Cleanup only touches files with it.
const logFilePrefix = "todo_"

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory to write log files to. Empty disables file logging.
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
	// Console enables logging to stderr (or ConsoleWriter when set).
	Console bool
	// ConsoleWriter overrides stderr for console output.
	ConsoleWriter io.Writer
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      "",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour, // 7 days
		Console:     false,
		JSONFormat:  false,
	}
}

// Logger is a structured logger for todo.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New creates a new logger with the given configuration.
// When LogDir is set, a timestamped log file is created in it and old files
// are cleaned up.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	logger := &Logger{
		config: config,
	}

	var writers []io.Writer

	if config.LogDir != "" {
		if err := os.MkdirAll(config.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		logPath := filepath.Join(config.LogDir, fmt.Sprintf("%s%s.log", logFilePrefix, time.Now().Format("20060102_150405")))
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}

		logger.logFile = logFile
		logger.logPath = logPath
		writers = append(writers, logFile)
	}

	if config.Console {
		if config.ConsoleWriter != nil {
			writers = append(writers, config.ConsoleWriter)
		} else {
			writers = append(writers, os.Stderr)
		}
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	var handler slog.Handler
	if config.JSONFormat {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger.slog = slog.New(handler)

	if logger.logFile != nil {
		// A CLI invocation is short-lived; clean up synchronously so the
		// process does not exit mid-removal.
		if err := logger.Cleanup(); err != nil {
			logger.slog.Warn("log cleanup failed", "error", err)
		}
	}

	return logger, nil
}

// NewNoop creates a no-op logger that discards all output.
// Useful for testing or when logging is disabled.
func NewNoop() *Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return &Logger{
		slog:   slog.New(handler),
		config: DefaultConfig(),
	}
}

// LogPath returns the path to the current log file, or "" when not logging to a file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
// The returned logger shares the parent's file and must not be closed separately.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logPath: l.logPath,
	}
}

// Cleanup removes old log files based on MaxLogFiles and MaxLogAge.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config.LogDir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(l.config.LogDir, name),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.After(logFiles[j].modTime)
	})

	now := time.Now()
	var removed int

	for i, lf := range logFiles {
		if lf.path == l.logPath {
			continue
		}

		shouldRemove := false
		if l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles {
			shouldRemove = true
		}
		if l.config.MaxLogAge > 0 && now.Sub(lf.modTime) > l.config.MaxLogAge {
			shouldRemove = true
		}

		if shouldRemove {
			if err := os.Remove(lf.path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}

	return nil
}
