package config

import (
	"fmt"
	"strings"
)

// Format selects the report writer.
type Format string

const (
	// FormatText is the line-oriented console report. This is the default.
	FormatText Format = "text"

	// FormatJSON is an indented JSON array of animal profiles.
	FormatJSON Format = "json"

	// FormatMarkdown is a GitHub Flavored Markdown document.
	FormatMarkdown Format = "markdown"

	// FormatYAML is a YAML sequence of animal profiles.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format in the order shown in help text.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown, FormatYAML}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a format name to a Format. Matching is
// case-insensitive; "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Config holds all configuration options for a zoo run.
// This struct is populated from CLI flags and passed through the
// application rather than read from global state.
type Config struct {
	// OutputFormats selects the report writers, in output order.
	// More than one format writes the reports one after another.
	OutputFormats []Format

	// Pause makes the command wait for one line on stdin after the report
	// has been written, so a console window opened just for the program
	// stays visible. EOF ends the wait as well.
	Pause bool

	// Verbose enables debug log output on stderr.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values:
// text output, pause before exit, quiet logging.
func NewConfig() *Config {
	return &Config{
		OutputFormats: []Format{FormatText},
		Pause:         true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.OutputFormats) == 0 {
		return ErrNoFormat
	}
	for _, f := range c.OutputFormats {
		if !f.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
		}
	}
	return nil
}

// ParseFormats converts every name with ParseFormat, keeping order.
// It stops at the first unknown name.
func ParseFormats(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func (f Format) valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
