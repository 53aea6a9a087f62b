// Package logger provides a small leveled logger writing to stdout and,
// optionally, a log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[level]string{
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
}

// Logger is a leveled printf-style logger.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	file  *os.File
	level level
}

// New creates a logger. An empty file path or "stdout" logs to stdout only;
// any other path is created (with parent directories) and written alongside
// stdout. Level is one of debug|info|warn|error (default info).
func New(filePath, levelName string) (*Logger, error) {
	l := &Logger{out: os.Stdout, level: parseLevel(levelName)}

	if filePath != "" && filePath != "stdout" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
		l.out = io.MultiWriter(os.Stdout, f)
	}

	return l, nil
}

func parseLevel(name string) level {
	switch strings.ToLower(name) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *Logger) log(lv level, format string, v ...interface{}) {
	if lv < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		levelNames[lv],
		fmt.Sprintf(format, v...),
	)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) { l.log(levelDebug, format, v...) }

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) { l.log(levelInfo, format, v...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) { l.log(levelWarn, format, v...) }

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) { l.log(levelError, format, v...) }

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(levelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
