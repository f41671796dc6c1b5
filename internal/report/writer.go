package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/log"
	"github.com/nao1215/zoo/internal/model"
)

// Writer defines the interface for report output.
// Implementations write every animal, in order, in a specific format.
type Writer interface {
	// Write outputs the report for the given animals.
	// Nil entries are skipped.
	// Returns the number of bytes written and any error encountered.
	Write(animals []*model.Animal) (int, error)
}

// NewWriter returns the writer for the given format.
// A nil logger disables diagnostics.
func NewWriter(format config.Format, output io.Writer, logger *slog.Logger) (Writer, error) {
	var w Writer
	switch format {
	case config.FormatText:
		w = NewSimpleWriter(output)
	case config.FormatJSON:
		w = NewJSONWriter(output, WithPrettyPrint())
	case config.FormatMarkdown:
		w = NewMarkdownWriter(output)
	case config.FormatYAML:
		w = NewYAMLWriter(output)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, string(format))
	}

	if logger != nil {
		if lw, ok := w.(interface{ setLogger(*slog.Logger) }); ok {
			lw.setLogger(logger)
		}
	}
	return w, nil
}

// NewFormatsWriter returns a writer producing every given format, one
// after another, on the same output. A single format yields the plain
// writer for it; several yield a MultiWriter.
func NewFormatsWriter(formats []config.Format, output io.Writer, logger *slog.Logger) (Writer, error) {
	if len(formats) == 0 {
		return nil, config.ErrNoFormat
	}

	writers := make([]Writer, 0, len(formats))
	for _, f := range formats {
		w, err := NewWriter(f, output, logger)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}

	if len(writers) == 1 {
		return writers[0], nil
	}
	return NewMultiWriter(writers...), nil
}

// MultiWriter writes to multiple Writers in turn.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write records, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(animals []*model.Animal) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(animals)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	logger *slog.Logger
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output, logger: log.Discard()}
}

func (b *baseWriter) setLogger(logger *slog.Logger) {
	b.logger = logger
}

// logWrite records a finished write at debug level.
func (b *baseWriter) logWrite(format config.Format, animals, n int, err error) {
	if err != nil {
		b.logger.Error("report write failed", "format", format, "animals", animals, "error", err)
		return
	}
	b.logger.Debug("report written", "format", format, "animals", animals, "bytes", n)
}

// countAnimals returns the number of non-nil entries.
func countAnimals(animals []*model.Animal) int {
	n := 0
	for _, a := range animals {
		if a != nil {
			n++
		}
	}
	return n
}

// yesNo renders a flag the way the console report does.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// goodBoyText renders the good boy flag. Every dog is a good boy.
func goodBoyText(b bool) string {
	if b {
		return "Ofcourse"
	}
	return "No, but actually yes"
}
