// Package log builds the slog loggers used by zoo.
//
// Diagnostics always go to a writer separate from the report (stderr in the
// CLI), so the report on stdout stays byte-exact regardless of verbosity.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
// Components that accept an optional *slog.Logger fall back to Discard().
package log
