// Package logging assembles structured slog loggers and formatting helpers used
// across vangogh commands.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context helpers so every line emitted by one invocation carries
// the same run_id and, where relevant, the analysis question being answered.
// A no-op logger is provided for tests and wiring code that cannot fail.
//
// Logs are written to stderr (plus an optional file in the configured log
// directory) so command output on stdout stays clean for piping.
package logging
