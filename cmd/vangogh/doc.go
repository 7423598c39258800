// Package main hosts the vangogh CLI entrypoint and command graph.
//
// Each analysis question is its own subcommand so it can be run and tuned in
// isolation; `vangogh run` executes every question enabled in the
// configuration. The command context resolves configuration once, builds the
// logger, and tags every log line with a per-invocation run ID.
//
// Keep this package lean: analysis lives in internal/report and below, and
// commands here only translate flags into report options and print results.
package main
