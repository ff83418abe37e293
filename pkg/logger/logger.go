// Package logger wraps logrus with request-scoped helpers.
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/roguepikachu/petshop/pkg/ctxutil"
	"github.com/sirupsen/logrus"
)

// InitLogging configures the logger. It sets the log level from the LOG_LEVEL environment variable if present.
func InitLogging() {
	logrus.Info("....Configuring Logger....")
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}
	setLogLevel(logLevel)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logrus.Infof("NO/Invalid LOG_LEVEL is provided, defaulting logging level to DEBUG, provided loggingLevel=[%s]", level)
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(lvl)
	logrus.Infof("Setting logging level to %s", level)
}

// Sprintf formats like fmt.Sprintf but leaves a bare format untouched.
func Sprintf(format string, args ...any) string {
	if format == "" {
		return ""
	}
	if len(args) == 0 {
		return strings.ReplaceAll(format, "%%", "%")
	}
	return fmt.Sprintf(format, args...)
}

// entry returns a logrus entry carrying the request and client ids found in ctx.
func entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(logrus.StandardLogger())
	if ctx == nil {
		return e
	}
	if rid := ctxutil.RequestID(ctx); rid != "" {
		e = e.WithField("request_id", rid)
	}
	if cid := ctxutil.ClientID(ctx); cid != "" {
		e = e.WithField("client_id", cid)
	}
	return e
}

// With returns an entry with the given fields plus the request-scoped ones.
func With(ctx context.Context, fields map[string]any) *logrus.Entry {
	return entry(ctx).WithFields(logrus.Fields(fields))
}

// WithField returns an entry with a single extra field.
func WithField(ctx context.Context, key string, value any) *logrus.Entry {
	return entry(ctx).WithField(key, value)
}

func Info(ctx context.Context, msg string, args ...any) {
	entry(ctx).Info(Sprintf(msg, args...))
}

func Debug(ctx context.Context, msg string, args ...any) {
	entry(ctx).Debug(Sprintf(msg, args...))
}

func Error(ctx context.Context, msg string, args ...any) {
	entry(ctx).Error(Sprintf(msg, args...))
}

func Trace(ctx context.Context, msg string, args ...any) {
	entry(ctx).Trace(Sprintf(msg, args...))
}

func Warn(ctx context.Context, msg string, args ...any) {
	entry(ctx).Warn(Sprintf(msg, args...))
}

func Fatal(ctx context.Context, msg string, args ...any) {
	entry(ctx).Fatal(Sprintf(msg, args...))
}
