// Package report writes animal records in different output formats.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The line-oriented console report
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//   - JSONWriter: Structured JSON output for tool integration
//   - YAMLWriter: Structured YAML output
//
// Design decision: The model package knows nothing about presentation.
// Each writer walks the records it is given and dispatches on Category and
// Kind to decide which detail lines apply, so adding a format never touches
// the model.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
