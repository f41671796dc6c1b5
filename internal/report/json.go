package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/model"
)

// JSONWriter outputs reports as a JSON array of profiles.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the profiles of all animals. Empty input encodes as [].
func (w *JSONWriter) Write(animals []*model.Animal) (int, error) {
	profiles := NewProfiles(animals)

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(profiles, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(profiles)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	n, err := w.output.Write(data)
	w.logWrite(config.FormatJSON, len(profiles), n, err)
	return n, err
}
