// Package logging assembles structured slog loggers and formatting helpers used
// across rtpkit.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so decode and import runs tag their log
// lines with a run ID and source path. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
package logging
