package ui

import (
	"fmt"
	"strings"

	"github.com/auditlens/auditlens/pkg/finding"
	"github.com/auditlens/auditlens/pkg/view"
)

// ListRenderer renders the explorable findings list: a filter-chip
// row with per-level counts, then one line per visible finding with
// an expansion marker, severity badge, id, and title. Expanded
// findings show their description block and location metadata.
type ListRenderer struct {
	showLocation bool
}

// NewListRenderer creates a list renderer. showLocation includes the
// chain/file metadata line in expanded details.
func NewListRenderer(showLocation bool) *ListRenderer {
	return &ListRenderer{showLocation: showLocation}
}

// Render produces the complete findings view for the given selection.
// An empty findings slice renders the explicit "no vulnerabilities
// detected" success state, never an empty list.
func (r *ListRenderer) Render(findings []finding.Finding, sel *view.Selection) string {
	if len(findings) == 0 {
		return RenderNoFindings()
	}

	var b strings.Builder
	b.WriteString(r.renderChips(view.CountsByLevel(findings), sel.Filter()))
	b.WriteString("\n\n")

	visible := sel.Visible(findings)
	if len(visible) == 0 {
		b.WriteString("  " + SubtitleStyle.Render(
			fmt.Sprintf("no %s findings", strings.ToLower(sel.Filter().String()))))
		b.WriteString("\n")
		return b.String()
	}

	for _, f := range visible {
		b.WriteString(r.renderFinding(f, sel.Expanded(f.ID)))
	}
	return b.String()
}

// RenderNoFindings renders the positive empty state.
func RenderNoFindings() string {
	return "  " + SuccessStyle.Render(Icon("✔", "[OK]")+" No vulnerabilities detected") + "\n"
}

// renderChips renders the filter-chip row, highlighting the active
// level: [All 5] [Critical 2] [High 1] [Medium 1] [Low 1]
func (r *ListRenderer) renderChips(counts map[view.Level]int, active view.Level) string {
	chips := make([]string, 0, len(view.Levels()))
	for _, level := range view.Levels() {
		label := fmt.Sprintf("%s %d", level, counts[level])
		style := ChipStyle
		if level == active {
			style = ActiveChipStyle
		}
		chips = append(chips,
			BracketStyle.Render("[")+style.Render(label)+BracketStyle.Render("]"))
	}
	return "  " + strings.Join(chips, " ")
}

// renderFinding renders one finding line plus its expanded detail
// block: marker [severity] id title
func (r *ListRenderer) renderFinding(f finding.Finding, expanded bool) string {
	var b strings.Builder

	marker := Icon("▸", ">")
	if expanded {
		marker = Icon("▾", "v")
	}

	sevStyle := SeverityStyle(f.Severity)
	b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		SubtitleStyle.Render(marker),
		BracketStyle.Render("[")+sevStyle.Render(f.Severity.Key())+BracketStyle.Render("]"),
		SubtitleStyle.Render(f.ID),
		TitleStyle.Render(f.Title),
	))

	if !expanded {
		return b.String()
	}

	if f.Description == "" {
		b.WriteString("      " + SubtitleStyle.Render("no further detail") + "\n")
	} else {
		for _, line := range strings.Split(f.Description, "\n") {
			b.WriteString("      " + DetailStyle.Render(line) + "\n")
		}
	}
	if r.showLocation {
		b.WriteString("      " + SubtitleStyle.Render(
			fmt.Sprintf("chain=%s file=%s line=%d", f.Chain, f.File, f.Line)) + "\n")
	}
	return b.String()
}
