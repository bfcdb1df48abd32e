package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is a minimal leveled logger. Safe for concurrent use, though the
// game itself logs from a single goroutine.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

func (l *Logger) logf(lv Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level > lv {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.out, "%s %s: "+format+"\n", append([]interface{}{ts, lv.String()}, v...)...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.logf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}
