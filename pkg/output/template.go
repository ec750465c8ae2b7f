package output

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateConfig configures the template writer.
type TemplateConfig struct {
	// Template is either the name of a built-in template ("csv",
	// "text-summary") or an inline text/template body.
	Template string

	Logger *slog.Logger
}

// builtInTemplates contains pre-defined templates for common output
// shapes. Templates execute against the Report and have the sprig
// function map available.
var builtInTemplates = map[string]string{
	"csv": `id,severity,title,chain,file,line
{{- range .Findings }}
{{ .ID }},{{ .Severity }},{{ escapeCSV .Title }},{{ .Chain }},{{ .File }},{{ .Line }}
{{- end }}`,

	"text-summary": `{{ .Tool.Name }} v{{ .Tool.Version }}: {{ .Total }} finding(s)
{{- range $sev, $n := .SeverityBreakdown }}
{{ $sev }}: {{ $n }}
{{- end }}
{{- range .Findings }}
[{{ .Severity }}] {{ .ID }}: {{ .Title }}
{{- end }}`,
}

// TemplateWriter renders the report through a text/template with the
// sprig function map, plus escapeCSV for the csv built-in.
type TemplateWriter struct {
	w      io.Writer
	tmpl   *template.Template
	logger *slog.Logger
}

// NewTemplateWriter creates a template report writer. The template is
// parsed eagerly so a bad template fails at construction, not export.
func NewTemplateWriter(w io.Writer, config TemplateConfig) (*TemplateWriter, error) {
	body := config.Template
	if builtin, ok := builtInTemplates[body]; ok {
		body = builtin
	}

	funcs := sprig.TxtFuncMap()
	funcs["escapeCSV"] = escapeCSV

	tmpl, err := template.New("report").Funcs(funcs).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing report template: %w", err)
	}
	return &TemplateWriter{w: w, tmpl: tmpl, logger: orDefault(config.Logger)}, nil
}

func (tw *TemplateWriter) Write(r *Report) error {
	if err := tw.tmpl.Execute(tw.w, r); err != nil {
		return fmt.Errorf("executing report template: %w", err)
	}
	tw.logger.Debug("report exported", "format", FormatTemplate, "findings", r.Total)
	return nil
}

// escapeCSV quotes a field when it contains separators or quotes.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
