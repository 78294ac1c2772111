package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Newlines, carriage returns, and tabs in log messages can forge fake log entries,
// mislead incident response, or inject false audit trail entries.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeLogString escapes control characters in a single string value.
func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of the Logger interface.
//
// All string values are sanitized to prevent log injection (CWE-117).
type GoLogger struct {
	Level  Level
	fields []Field
	groups []string
}

// Log implements the Logger interface on top of the standard library logger.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	log.Print(l.hydrate(level, msg, fields))
}

// With returns a logger that includes the given fields on every entry.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	next := make([]Field, 0, len(l.fields)+len(fields))
	next = append(next, l.fields...)
	next = append(next, fields...)

	return &GoLogger{
		Level:  l.Level,
		fields: next,
		groups: l.groups,
	}
}

// WithGroup returns a logger that prefixes subsequent field keys with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	if name == "" {
		return l
	}

	groups := make([]string, 0, len(l.groups)+1)
	groups = append(groups, l.groups...)
	groups = append(groups, name)

	return &GoLogger{
		Level:  l.Level,
		fields: l.fields,
		groups: groups,
	}
}

// Enabled checks if the given level is enabled.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync implements the Logger interface; the standard library logger has no
// buffered state to flush.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) hydrate(level Level, msg string, fields []Field) string {
	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("[%s]", level.String()))

	if rendered := l.hydrateFields(fields); rendered != "" {
		parts = append(parts, rendered)
	}

	parts = append(parts, sanitizeLogString(msg))

	return strings.Join(parts, " ")
}

func (l *GoLogger) hydrateFields(fields []Field) string {
	total := len(l.fields) + len(fields)
	if total == 0 {
		return ""
	}

	prefix := ""
	if len(l.groups) > 0 {
		prefix = strings.Join(l.groups, ".") + "."
	}

	parts := make([]string, 0, total)

	for _, field := range l.fields {
		parts = append(parts, l.renderField(prefix, field))
	}

	for _, field := range fields {
		parts = append(parts, l.renderField(prefix, field))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (l *GoLogger) renderField(prefix string, field Field) string {
	value := field.Value
	if s, ok := value.(string); ok {
		value = sanitizeLogString(s)
	}

	return fmt.Sprintf("%s%s=%v", prefix, field.Key, value)
}
