package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/hylla/tado/internal/config"
)

// loggerOptions carries everything newRuntimeLogger needs to pick its sinks.
type loggerOptions struct {
	appName string
	devMode bool
	logging config.LoggingConfig
	logDir  string
	now     func() time.Time
}

// runtimeLogger writes to a styled console sink and, in dev mode, a logfmt file.
type runtimeLogger struct {
	console   *charmLog.Logger
	file      *charmLog.Logger
	muted     bool
	path      string
	closeFile func() error
}

// newRuntimeLogger builds the console sink and opens the dev file under opts.logDir.
func newRuntimeLogger(stderr io.Writer, opts loggerOptions) (*runtimeLogger, error) {
	level, err := charmLog.ParseLevel(opts.logging.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", opts.logging.Level, err)
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	l := &runtimeLogger{console: newSink(stderr, level, opts.appName, charmLog.TextFormatter)}
	if !opts.devMode || !opts.logging.DevFile.Enabled {
		return l, nil
	}

	path, err := devLogFilePath(opts.logDir, opts.appName, opts.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dev log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open dev log file: %w", err)
	}
	l.file = newSink(f, level, opts.appName, charmLog.LogfmtFormatter)
	l.path = path
	l.closeFile = f.Close
	return l, nil
}

// newSink constructs one charm logger with the shared prefix and timestamp layout.
func newSink(w io.Writer, level charmLog.Level, prefix string, formatter charmLog.Formatter) *charmLog.Logger {
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
}

// WithSession tags both sinks with a run-scoped session id.
func (l *runtimeLogger) WithSession(id string) {
	if l == nil || strings.TrimSpace(id) == "" {
		return
	}
	l.console = l.console.With("session", id)
	if l.file != nil {
		l.file = l.file.With("session", id)
	}
}

// DevLogPath returns the dev log file path, or "" when no file is open.
func (l *runtimeLogger) DevLogPath() string {
	if l == nil {
		return ""
	}
	return l.path
}

// SetConsoleEnabled mutes or restores the console sink.
func (l *runtimeLogger) SetConsoleEnabled(enabled bool) {
	if l != nil {
		l.muted = !enabled
	}
}

// ConsoleEnabled reports whether console output is live.
func (l *runtimeLogger) ConsoleEnabled() bool {
	return l != nil && !l.muted
}

// Close closes the dev log file when one is open.
func (l *runtimeLogger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	closeFile := l.closeFile
	l.closeFile = nil
	return closeFile()
}

// active returns the sinks that currently receive events.
func (l *runtimeLogger) active() []*charmLog.Logger {
	if l == nil {
		return nil
	}
	out := make([]*charmLog.Logger, 0, 2)
	if !l.muted {
		out = append(out, l.console)
	}
	if l.file != nil {
		out = append(out, l.file)
	}
	return out
}

// Debug logs a debug event.
func (l *runtimeLogger) Debug(msg string, keyvals ...any) {
	for _, sink := range l.active() {
		sink.Debug(msg, keyvals...)
	}
}

// Info logs an informational event.
func (l *runtimeLogger) Info(msg string, keyvals ...any) {
	for _, sink := range l.active() {
		sink.Info(msg, keyvals...)
	}
}

// Error logs an error event.
func (l *runtimeLogger) Error(msg string, keyvals ...any) {
	for _, sink := range l.active() {
		sink.Error(msg, keyvals...)
	}
}

// devLogFilePath names the day's log file for appName inside dir.
func devLogFilePath(dir, appName string, now time.Time) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("dev log dir is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve dev log dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.log", logFileStem(appName), now.Format("20060102"))
	return filepath.Join(abs, name), nil
}

// logFileStem turns an app name into a safe file-name prefix.
func logFileStem(appName string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-")
	stem := strings.Trim(replacer.Replace(strings.TrimSpace(appName)), "-")
	if stem == "" {
		return defaultAppName
	}
	return stem
}
