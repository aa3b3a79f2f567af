package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering (decode_failed, plan_imported, ...).
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step when something went wrong.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldRunID identifies one decode or import invocation.
	FieldRunID = "run_id"
	// FieldSourcePath is the RTP file being processed.
	FieldSourcePath = "source_path"
	// FieldLine is the 1-based line number inside the source file.
	FieldLine = "line"
	// FieldKeyword is the RTP record keyword.
	FieldKeyword = "keyword"
	// FieldPlanID is the plan store entry identifier.
	FieldPlanID = "plan_id"
)

type contextKey int

const (
	runIDKey contextKey = iota
	sourcePathKey
)

// WithRunID stores id on ctx for ContextFields.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext returns the run ID stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithSourcePath stores the RTP file path on ctx for ContextFields.
func WithSourcePath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sourcePathKey, path)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if path, ok := ctx.Value(sourcePathKey).(string); ok && path != "" {
		fields = append(fields, slog.String(FieldSourcePath, path))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
