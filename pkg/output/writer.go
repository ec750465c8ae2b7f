package output

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Supported export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "md"
	FormatSARIF    = "sarif"
	FormatTemplate = "template"
)

// Sentinel errors for export failure modes. Callers should use
// errors.Is() to check for these.
var (
	// ErrUnknownFormat indicates the requested export format is not
	// one of the Format* constants.
	ErrUnknownFormat = errors.New("output: unknown format")

	// ErrNoTemplate indicates the template format was requested
	// without a template.
	ErrNoTemplate = errors.New("output: template format requires a template")
)

// Writer serializes a complete report to its output.
type Writer interface {
	Write(r *Report) error
}

// Options configures writer construction.
type Options struct {
	// Title overrides the Markdown report title.
	Title string

	// Template is a text/template body or the name of a built-in
	// template ("csv", "text-summary") for FormatTemplate.
	Template string

	// Logger receives a summary line per successful export. Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// orDefault returns l if non-nil, otherwise slog.Default().
func orDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

// ForFormat constructs the writer for an export format. The console
// rendering path lives in pkg/ui and is not a Writer; everything
// file-shaped goes through here.
func ForFormat(format string, w io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w, opts.Logger), nil
	case FormatMarkdown:
		return NewMarkdownWriter(w, MarkdownConfig{Title: opts.Title, Logger: opts.Logger}), nil
	case FormatSARIF:
		return NewSARIFWriter(w, SARIFOptions{Logger: opts.Logger}), nil
	case FormatTemplate:
		if opts.Template == "" {
			return nil, ErrNoTemplate
		}
		return NewTemplateWriter(w, TemplateConfig{Template: opts.Template, Logger: opts.Logger})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
