// Package output builds the export envelope around an extracted
// findings slice and writes it in various formats (JSON, Markdown,
// SARIF, custom templates). Extraction is a one-shot synchronous
// transform, so writers receive the complete report and serialize it
// in a single Write call; there is no event stream.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/auditlens/auditlens/pkg/finding"
	"github.com/auditlens/auditlens/pkg/ui"
	"github.com/auditlens/auditlens/pkg/view"
)

// ToolName identifies auditlens in export metadata.
const ToolName = "auditlens"

// ToolInfo describes the producing tool in the export envelope.
type ToolInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Report is the export envelope: identification metadata plus the
// findings exactly as extracted. The report id is a fresh UUID per
// export; finding ids stay deterministic.
type Report struct {
	ID                string            `json:"id"`
	GeneratedAt       time.Time         `json:"generated_at"`
	Source            string            `json:"source,omitempty"`
	Tool              ToolInfo          `json:"tool"`
	Total             int               `json:"total"`
	SeverityBreakdown map[string]int    `json:"severity_breakdown"`
	Findings          []finding.Finding `json:"findings"`
}

// NewReport wraps findings in an export envelope. source names the
// report origin (file path or "stdin") for traceability.
func NewReport(source string, findings []finding.Finding) *Report {
	breakdown := make(map[string]int, 4)
	for level, n := range view.CountsByLevel(findings) {
		if level == view.All {
			continue
		}
		if sev, ok := level.Severity(); ok {
			breakdown[sev.Key()] = n
		}
	}
	return &Report{
		ID:                uuid.NewString(),
		GeneratedAt:       time.Now().UTC(),
		Source:            source,
		Tool:              ToolInfo{Name: ToolName, Version: ui.Version},
		Total:             len(findings),
		SeverityBreakdown: breakdown,
		Findings:          findings,
	}
}

// HighestSeverity returns the most severe level present, or false for
// an empty report.
func (r *Report) HighestSeverity() (finding.Severity, bool) {
	for _, sev := range finding.Severities() {
		if r.SeverityBreakdown[sev.Key()] > 0 {
			return sev, true
		}
	}
	return "", false
}
