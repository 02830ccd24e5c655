package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys shared by the HTTP adapter and the census services.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
	KeyEditor        = "editor"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.Default())
}

// FromContext returns the request logger, or the default logger when ctx is
// nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return defaultLogger.Load()
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithAttrs enriches the context logger with attrs.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithRequestIDs tags the context logger with the request and correlation
// ids. A correlation id equal to the request id is logged once.
func WithRequestIDs(ctx context.Context, requestID, correlationID string) context.Context {
	attrs := []slog.Attr{slog.String(KeyRequestID, requestID)}
	if correlationID != "" && correlationID != requestID {
		attrs = append(attrs, slog.String(KeyCorrelationID, correlationID))
	}

	return WithAttrs(ctx, attrs...)
}

// WithTraceID tags the context logger with a trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return WithAttrs(ctx, slog.String(KeyTraceID, traceID))
}

// WithEditor tags the context logger with the authenticated editor.
func WithEditor(ctx context.Context, subject string) context.Context {
	return WithAttrs(ctx, slog.String(KeyEditor, subject))
}

// SetDefault sets the logger used when no logger is in context and installs
// it as the slog default.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
	slog.SetDefault(logger)
}
