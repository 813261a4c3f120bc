package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level - порог вывода сообщений
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// ParseLevel разбирает LOG_LEVEL; неизвестное значение - INFO
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Setup настраивает стандартный логгер: вывод, флаги и уровень
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	SetLevel(ParseLevel(level))
}

func SetLevel(l Level) { current.Store(int32(l)) }

func Enabled(l Level) bool { return l >= Level(current.Load()) }

func Debugf(format string, args ...any) { logf(LevelDebug, "DEBUG", format, args...) }

func Infof(format string, args ...any) { logf(LevelInfo, "INFO", format, args...) }

func Warnf(format string, args ...any) { logf(LevelWarn, "WARN", format, args...) }

func Errorf(format string, args ...any) { logf(LevelError, "ERROR", format, args...) }

func logf(l Level, tag, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	// calldepth 3: logf -> Infof -> вызывающий код
	_ = log.Output(3, "["+tag+"] "+fmt.Sprintf(format, args...))
}
