// Package config provides the run configuration for zoo.
// It defines the output format and the console behavior of a run, populated
// from CLI flags and validated once before any report is written.
package config
