package output

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/auditlens/auditlens/pkg/finding"
)

// MarkdownConfig configures the Markdown report writer.
type MarkdownConfig struct {
	// Title is the report title (default: "Security Audit Findings").
	Title string

	// NoCollapse renders descriptions inline instead of GitHub-flavored
	// <details> blocks.
	NoCollapse bool

	// SkipBreakdown omits the severity summary table.
	SkipBreakdown bool

	Logger *slog.Logger
}

// MarkdownWriter renders the report as a GitHub-flavored Markdown
// document: summary table, then one section per severity in priority
// order with the findings of that group.
type MarkdownWriter struct {
	w      io.Writer
	config MarkdownConfig
	logger *slog.Logger
}

// NewMarkdownWriter creates a Markdown report writer.
func NewMarkdownWriter(w io.Writer, config MarkdownConfig) *MarkdownWriter {
	if config.Title == "" {
		config.Title = "Security Audit Findings"
	}
	return &MarkdownWriter{w: w, config: config, logger: orDefault(config.Logger)}
}

func (mw *MarkdownWriter) Write(r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", mw.config.Title)
	fmt.Fprintf(&b, "Generated by %s v%s at %s", r.Tool.Name, r.Tool.Version,
		r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	if r.Source != "" {
		fmt.Fprintf(&b, " from `%s`", r.Source)
	}
	b.WriteString("\n\n")

	if r.Total == 0 {
		b.WriteString("**No vulnerabilities detected.**\n")
		return mw.flush(&b, r)
	}

	if !mw.config.SkipBreakdown {
		b.WriteString("| Severity | Count |\n|---|---|\n")
		for _, sev := range finding.Severities() {
			fmt.Fprintf(&b, "| %s | %d |\n", sev, r.SeverityBreakdown[sev.Key()])
		}
		fmt.Fprintf(&b, "| **Total** | **%d** |\n\n", r.Total)
	}

	for _, sev := range finding.Severities() {
		group := groupBySeverity(r.Findings, sev)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sev)
		for _, f := range group {
			fmt.Fprintf(&b, "### %s (`%s`)\n\n", f.Title, f.ID)
			mw.writeDescription(&b, f)
		}
	}

	return mw.flush(&b, r)
}

func (mw *MarkdownWriter) writeDescription(b *strings.Builder, f finding.Finding) {
	if f.Description == "" {
		b.WriteString("_No further detail._\n\n")
		return
	}
	if !mw.config.NoCollapse {
		b.WriteString("<details><summary>Details</summary>\n\n")
		b.WriteString(f.Description)
		b.WriteString("\n\n</details>\n\n")
		return
	}
	b.WriteString(f.Description)
	b.WriteString("\n\n")
}

func (mw *MarkdownWriter) flush(b *strings.Builder, r *Report) error {
	if _, err := io.WriteString(mw.w, b.String()); err != nil {
		return fmt.Errorf("writing Markdown report: %w", err)
	}
	mw.logger.Debug("report exported", "format", FormatMarkdown, "findings", r.Total)
	return nil
}

func groupBySeverity(findings []finding.Finding, sev finding.Severity) []finding.Finding {
	var out []finding.Finding
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
