package report

import (
	"bytes"
	"io"

	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/model"
	"gopkg.in/yaml.v3"
)

// yamlIndent is the number of spaces per nesting level.
const yamlIndent = 2

// YAMLWriter outputs reports as a YAML sequence of profiles.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the profiles of all animals. Empty input encodes as [].
func (w *YAMLWriter) Write(animals []*model.Animal) (int, error) {
	profiles := NewProfiles(animals)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(profiles); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}

	n, err := w.output.Write(buf.Bytes())
	w.logWrite(config.FormatYAML, len(profiles), n, err)
	return n, err
}
