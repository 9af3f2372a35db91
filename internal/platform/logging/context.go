// Package logging provides the process-wide zap logger and request-scoped
// helpers that attach request and trace correlation to every log line.
package logging

import (
	"context"

	"go.uber.org/zap"
)

type scopeKey struct{}

// scope is the per-request logging state stored in the context.
type scope struct {
	logger  *zap.Logger
	traceID string
}

func scopeFromContext(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*scope)
	return s
}

// WithLogger returns a copy of ctx carrying logger and the correlation ID used in responses.
func WithLogger(ctx context.Context, logger *zap.Logger, traceID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, &scope{logger: logger, traceID: traceID})
}

// LoggerFromContext returns the request-scoped logger if present, otherwise the global logger.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if s := scopeFromContext(ctx); s != nil && s.logger != nil {
		return s.logger
	}
	return Logger()
}

// TraceIDFromContext returns the correlation identifier (trace or request ID), or "" when absent.
func TraceIDFromContext(ctx context.Context) string {
	if s := scopeFromContext(ctx); s != nil {
		return s.traceID
	}
	return ""
}

// LogInfo writes an informational message using the request-aware logger.
func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

// LogWarn writes a warning message using the request-aware logger.
func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError writes an error message and appends the error field when err is non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Error(msg, fields...)
}

// LogFatal logs with fatal severity and terminates the process.
func LogFatal(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	LoggerFromContext(ctx).Fatal(msg, fields...)
}
