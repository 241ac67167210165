package libemit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
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
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// writerLogger implements Logger using an io.Writer. Entries
// below minLevel are dropped.
type writerLogger struct {
	writer   io.Writer
	minLevel LogLevel
	fields   map[string]any
	now      func() time.Time
}

// NewWriterLogger creates a new logger that writes one line per entry to the
// provided writer.
func NewWriterLogger(writer io.Writer, minLevel LogLevel) Logger {
	return &writerLogger{
		writer:   writer,
		minLevel: minLevel,
		fields:   make(map[string]any),
		now:      time.Now,
	}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	next := &writerLogger{
		writer:   l.writer,
		minLevel: l.minLevel,
		fields:   make(map[string]any, len(l.fields)+1),
		now:      l.now,
	}
	for k, v := range l.fields {
		next.fields[k] = v
	}
	next.fields[key] = value
	return next
}

// formatFields renders fields sorted by key so lines are stable.
func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
	}
	b.WriteString("]")
	return b.String()
}

func (l *writerLogger) log(level LogLevel, msg string) {
	if level < l.minLevel {
		return
	}
	timestamp := l.now().Format("2006-01-02 15:04:05")
	msg = strings.TrimSuffix(msg, "\n")
	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n", timestamp, level, l.formatFields(), msg)
}

func (l *writerLogger) Debug(args ...any) {
	l.log(LevelDebug, fmt.Sprint(args...))
}

func (l *writerLogger) Debugf(format string, args ...any) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Debugln(args ...any) {
	l.log(LevelDebug, fmt.Sprintln(args...))
}

func (l *writerLogger) Info(args ...any) {
	l.log(LevelInfo, fmt.Sprint(args...))
}

func (l *writerLogger) Infof(format string, args ...any) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Infoln(args ...any) {
	l.log(LevelInfo, fmt.Sprintln(args...))
}

func (l *writerLogger) Warn(args ...any) {
	l.log(LevelWarn, fmt.Sprint(args...))
}

func (l *writerLogger) Warnf(format string, args ...any) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Warnln(args ...any) {
	l.log(LevelWarn, fmt.Sprintln(args...))
}

func (l *writerLogger) Error(args ...any) {
	l.log(LevelError, fmt.Sprint(args...))
}

func (l *writerLogger) Errorf(format string, args ...any) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

func (l *writerLogger) Errorln(args ...any) {
	l.log(LevelError, fmt.Sprintln(args...))
}
