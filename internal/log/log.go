// Package log provides structured debug logging for hilite.
// Logging is off unless enabled with --debug or HILITE_DEBUG, and never
// writes to stdout, which carries the highlighted output.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvDebug names the environment variable that enables debug logging.
// Its value, if not "1" or "true", is used as the log file path.
const EnvDebug = "HILITE_DEBUG"

// DefaultPath is the debug log file used when no path is given.
const DefaultPath = "hilite-debug.log"

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// Category groups related log messages.
type Category string

const (
	CatCLI     Category = "cli"     // Command line parsing
	CatConfig  Category = "config"  // Configuration loading/saving
	CatSession Category = "session" // Lexer selection and tokenising
	CatDriver  Category = "driver"  // Line loop
	CatRender  Category = "render"  // Formatter selection and encoding
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel Level
}

var (
	defaultLogger *Logger
	mu            sync.Mutex
)

// Init opens path through tea.LogToFile and enables logging.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := tea.LogToFile(path, "hilite")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}

	setDefault(&Logger{
		writer:   f,
		minLevel: LevelDebug,
	})

	return func() {
		setDefault(nil)
		_ = f.Close()
	}, nil
}

// InitWriter enables logging to w. Intended for tests.
func InitWriter(w io.Writer) func() {
	setDefault(&Logger{
		writer:   w,
		minLevel: LevelDebug,
	})
	return func() { setDefault(nil) }
}

// PathFromEnv returns the debug log path requested through EnvDebug,
// and whether logging was requested at all.
func PathFromEnv() (string, bool) {
	v, ok := os.LookupEnv(EnvDebug)
	if !ok || v == "" || v == "0" || v == "false" {
		return "", false
	}
	if v == "1" || v == "true" {
		return DefaultPath, true
	}
	return v, true
}

func setDefault(l *Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel || l.writer == nil {
		return
	}

	// Format: 2025-12-06T10:45:00 [ERROR] [session] message key=value key2=value2
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Odd field count: orphan key has no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	_, _ = l.writer.Write([]byte(entry))
}
