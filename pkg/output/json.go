package output

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/auditlens/auditlens/pkg/jsonutil"
)

// JSONWriter writes the report as one indented JSON document.
type JSONWriter struct {
	w      io.Writer
	logger *slog.Logger
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer, logger *slog.Logger) *JSONWriter {
	return &JSONWriter{w: w, logger: orDefault(logger)}
}

func (jw *JSONWriter) Write(r *Report) error {
	if err := jsonutil.MarshalWrite(jw.w, r, "  "); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	if _, err := jw.w.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	jw.logger.Debug("report exported", "format", FormatJSON, "findings", r.Total)
	return nil
}
