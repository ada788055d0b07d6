// Package logging configures the process-wide logrus logger and carries
// request-scoped loggers through context.
package logging

import (
	"context"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diewo77/parts-inventory/internal/config"
)

type ctxKey struct{}

// Setup applies level, formatter and output to the standard logrus logger.
// An unknown level falls back to info.
func Setup(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(NewFormatter(cfg.Format))
	logrus.SetOutput(NewWriter(cfg.File))
}

// NewFormatter returns a JSON formatter for "json" and a text formatter otherwise.
func NewFormatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{
			CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
				function = path.Base(f.Function)
				file = path.Base(f.File) + ":" + strconv.Itoa(f.Line)
				return
			},
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

// NewWriter returns stdout, or stdout plus a rotated file when file is set.
func NewWriter(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}
	rotate := &lumberjack.Logger{
		Filename:  file,
		MaxSize:   20, // MB
		Compress:  true,
		LocalTime: true,
	}
	return io.MultiWriter(os.Stdout, rotate)
}

// WithLogger stores entry in ctx.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, entry)
}

// WithRequestID stores a logger tagged with reqid in ctx.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return WithLogger(ctx, FromContext(ctx).WithField("reqid", reqID))
}

// FromContext returns the request logger, or the standard logger when none is set.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if e, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok && e != nil {
			return e
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// RequestID returns the reqid field of the request logger, if any.
func RequestID(ctx context.Context) string {
	if s, ok := FromContext(ctx).Data["reqid"].(string); ok {
		return s
	}
	return ""
}
