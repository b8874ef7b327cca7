// Package log is a thin wrapper around [log/slog] providing the logging
// conventions used throughout st2mqtt, plus adapters for the paho MQTT
// client's logger interface.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var (
	level         = &slog.LevelVar{}
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetLevel sets the minimum level of emitted log events.
func SetLevel(l Level) {
	level.Set(slog.Level(l))
}

// SetHandler replaces the default logger's handler. The handler should
// honor the level returned by [Leveler].
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// SetTextHandler directs output to w as logfmt-style text.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler directs output to w as JSON.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Leveler returns the mutable level shared by the handlers this package
// constructs.
func Leveler() slog.Leveler { return level }

// Debug logs at [LevelDebug].
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs at [LevelInfo].
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs at [LevelWarn].
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs at [LevelError] with err attached as the "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

// WarnError logs at [LevelWarn] with err attached as the "cause" attribute.
func WarnError(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Warn(msg, args...)
}

// Logger is the printf-style interface expected by the paho MQTT client.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

type levelLogger Level

// DebugLogger returns a [Logger] that logs at [LevelDebug].
func DebugLogger() Logger { return levelLogger(LevelDebug) }

// WarnLogger returns a [Logger] that logs at [LevelWarn].
func WarnLogger() Logger { return levelLogger(LevelWarn) }

// ErrorLogger returns a [Logger] that logs at [LevelError].
func ErrorLogger() Logger { return levelLogger(LevelError) }

func (l levelLogger) log(msg string) {
	switch Level(l) {
	case LevelDebug:
		Debug(msg)
	case LevelWarn:
		Warn(msg)
	default:
		defaultLogger.Error(msg)
	}
}

func (l levelLogger) Println(v ...any)               { l.log(fmt.Sprintln(v...)) }
func (l levelLogger) Printf(format string, v ...any) { l.log(fmt.Sprintf(format, v...)) }
