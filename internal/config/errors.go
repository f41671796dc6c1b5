package config

import "errors"

// Configuration validation errors.
// These errors are returned by ParseFormat and Config.Validate so callers
// can use errors.Is() for programmatic handling.
var (
	// ErrUnknownFormat is returned when the requested report format is not
	// one of text, json, markdown or yaml.
	ErrUnknownFormat = errors.New("unknown report format: use text, json, markdown or yaml")

	// ErrNoFormat is returned when no report format is selected at all.
	ErrNoFormat = errors.New("no report format specified")
)
