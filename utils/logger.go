package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if int(l) >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLogLevel accepts the level names case-insensitively ("warning" too).
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		name = "WARN"
	}
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is a levelled logger shared by the loader packages. Component
// loggers made with With share the sink and level of their parent.
type Logger struct {
	core      *logCore
	component string
}

type logCore struct {
	mu    sync.Mutex
	level LogLevel
	inner *log.Logger
	file  *os.File
}

var (
	globalLogger  *Logger
	logOnce       sync.Once
	defaultLogger = NewLogger(os.Stderr, WARN)
)

// InitLogger creates the singleton logger. Call once at startup; later calls
// return the existing logger.
func InitLogger(minLevel LogLevel, logFilePath string) *Logger {
	logOnce.Do(func() {
		var writers []io.Writer
		writers = append(writers, os.Stderr)

		var f *os.File
		if logFilePath != "" {
			var err error
			f, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				writers = append(writers, f)
			} else {
				log.Printf("[WARN] could not open log file %s: %v\n", logFilePath, err)
			}
		}

		globalLogger = NewLogger(io.MultiWriter(writers...), minLevel)
		globalLogger.core.file = f
	})
	return globalLogger
}

// NewLogger builds a standalone logger writing to w.
func NewLogger(w io.Writer, minLevel LogLevel) *Logger {
	return &Logger{core: &logCore{level: minLevel, inner: log.New(w, "", 0)}}
}

// L returns the global logger, or a stderr-only WARN logger until
// InitLogger has been called so library use stays quiet by default.
func L() *Logger {
	if globalLogger == nil {
		return defaultLogger
	}
	return globalLogger
}

// With returns a logger that tags every line with component=name.
func (l *Logger) With(name string) *Logger {
	return &Logger{core: l.core, component: name}
}

// SetLevel changes the minimum level for this logger and all its components.
func (l *Logger) SetLevel(lvl LogLevel) {
	l.core.mu.Lock()
	l.core.level = lvl
	l.core.mu.Unlock()
}

// SetOutput redirects the sink, e.g. to a buffer in tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.core.mu.Lock()
	l.core.inner.SetOutput(w)
	l.core.mu.Unlock()
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	if l.core.file != nil {
		_ = l.core.file.Close()
		l.core.file = nil
	}
}

func (l *Logger) log(lvl LogLevel, format string, args ...any) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	if lvl < l.core.level {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.core.inner.Printf("[%s] %s  component=%s  %s", lvl, ts, l.component, msg)
	} else {
		l.core.inner.Printf("[%s] %s  %s", lvl, ts, msg)
	}

	if lvl == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debug(f string, a ...any) { l.log(DEBUG, f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.log(INFO, f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.log(WARN, f, a...) }
func (l *Logger) Error(f string, a ...any) { l.log(ERROR, f, a...) }
func (l *Logger) Fatal(f string, a ...any) { l.log(FATAL, f, a...) }
