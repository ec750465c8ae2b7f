package output

import (
	"testing"

	"github.com/auditlens/auditlens/pkg/extract"
	"github.com/auditlens/auditlens/pkg/finding"
)

const sampleText = "Critical\nReentrancy bug\nFunds can be drained.\n" +
	"High\nMissing access control\n" +
	"High\nUnchecked call return\n" +
	"Low\nFloating pragma"

func TestNewReportEnvelope(t *testing.T) {
	t.Parallel()

	findings := extract.Extract(sampleText)
	r := NewReport("audit.txt", findings)

	if r.ID == "" {
		t.Error("report id must be set")
	}
	if r.Source != "audit.txt" {
		t.Errorf("Source = %q, want audit.txt", r.Source)
	}
	if r.Tool.Name != ToolName {
		t.Errorf("Tool.Name = %q, want %q", r.Tool.Name, ToolName)
	}
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}

	want := map[string]int{"critical": 1, "high": 2, "medium": 0, "low": 1}
	for key, n := range want {
		if r.SeverityBreakdown[key] != n {
			t.Errorf("SeverityBreakdown[%s] = %d, want %d", key, r.SeverityBreakdown[key], n)
		}
	}
}

func TestReportIDsDifferPerExport(t *testing.T) {
	t.Parallel()

	findings := extract.Extract(sampleText)
	a := NewReport("audit.txt", findings)
	b := NewReport("audit.txt", findings)
	if a.ID == b.ID {
		t.Error("each export should get a fresh report id")
	}
	// Finding ids, by contrast, stay deterministic.
	if a.Findings[0].ID != b.Findings[0].ID {
		t.Error("finding ids must not change between exports")
	}
}

func TestHighestSeverity(t *testing.T) {
	t.Parallel()

	r := NewReport("", extract.Extract(sampleText))
	sev, ok := r.HighestSeverity()
	if !ok || sev != finding.Critical {
		t.Errorf("HighestSeverity = (%q, %v), want (Critical, true)", sev, ok)
	}

	empty := NewReport("", nil)
	if _, ok := empty.HighestSeverity(); ok {
		t.Error("empty report must report no highest severity")
	}
}
