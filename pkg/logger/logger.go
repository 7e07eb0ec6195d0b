// Package logger writes levelled diagnostics to two streams: a console
// stream for the user and a timestamped log file. Each stream has its own
// verbosity, so a quiet console can still leave a detailed file behind.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Verbosity is how much a stream shows. Higher shows more.
type Verbosity int

const (
	Normal  Verbosity = 0 // errors only
	Warning Verbosity = 1
	Info    Verbosity = 2
	Debug   Verbosity = 3
)

// Level of a single message, named the way it appears in the log file.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARNING",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// required is the verbosity a stream needs before it shows l.
func (l Level) required() Verbosity {
	switch l {
	case LevelDebug:
		return Debug
	case LevelInfo:
		return Info
	case LevelWarn:
		return Warning
	}
	return Normal
}

// Logger is safe for concurrent use; log.Logger serialises writes.
type Logger struct {
	console *log.Logger
	file    *log.Logger
	closer  io.Closer

	PrintVerbosity Verbosity
	LogVerbosity   Verbosity
}

// New returns a Logger printing to console and logging to file. Either
// writer may be nil to disable that stream.
func New(console, file io.Writer) *Logger {
	l := &Logger{PrintVerbosity: Normal, LogVerbosity: Info}
	if console != nil {
		l.console = log.New(console, "", 0)
	}
	if file != nil {
		l.file = log.New(file, "", log.LstdFlags)
	}
	return l
}

// Open is New with the file stream appending to path. The parent directory
// is created if needed. Call Close when done.
func Open(console io.Writer, path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	l := New(console, f)
	l.closer = f
	return l, nil
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(nil, nil)
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Log writes msg to every stream whose verbosity admits level.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	need := level.required()
	if l.console != nil && l.PrintVerbosity >= need {
		l.console.Printf(format, args...)
	}
	if l.file != nil && l.LogVerbosity >= need {
		l.file.Printf("%s: "+format, append([]interface{}{level}, args...)...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.Log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.Log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.Log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.Log(LevelError, format, args...) }

// Block logs a titled, ruled block of text, for dumps that span lines.
func (l *Logger) Block(level Level, title, body string) {
	const (
		heavy = "========================================"
		light = "----------------------------------------"
	)
	l.Log(level, "\n\n%s\n%s\n%s\n%s\n%s\n", heavy, title, light, body, heavy)
}
