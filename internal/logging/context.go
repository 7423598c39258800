package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies a single CLI invocation across every log line it emits.
	FieldRunID = "run_id"
	// FieldQuestion names the analysis question a log line belongs to (q1, q2, q4).
	FieldQuestion = "question"
	// FieldEventType is a stable machine-readable tag for the event being logged.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to do next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldPath is the filesystem path an operation read or wrote.
	FieldPath = "path"
)

type contextKey int

const (
	runIDKey contextKey = iota
	questionKey
)

// WithRunID stores the invocation identifier on ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, strings.TrimSpace(runID))
}

// RunIDFromContext returns the invocation identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithQuestion tags ctx with the analysis question being answered.
func WithQuestion(ctx context.Context, question string) context.Context {
	return context.WithValue(ctx, questionKey, strings.TrimSpace(question))
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
	if q, ok := ctx.Value(questionKey).(string); ok && q != "" {
		fields = append(fields, slog.String(FieldQuestion, q))
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
	return logger.With(attrsToArgs(fields)...)
}
