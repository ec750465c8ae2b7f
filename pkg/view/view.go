// Package view holds the transient selection state layered over a
// fixed findings slice: the active severity filter and the set of
// findings whose detail panel is expanded. The selection never touches
// the findings themselves; it only derives filtered subsets and
// expansion flags, and it is reset whenever a new report is loaded.
package view

import (
	"sort"
	"strings"

	"github.com/auditlens/auditlens/pkg/finding"
)

// Level is a filter level: one of the four severities plus the
// view-only pseudo-level All.
type Level string

const (
	All      Level = "All"
	Critical Level = Level(finding.Critical)
	High     Level = Level(finding.High)
	Medium   Level = Level(finding.Medium)
	Low      Level = Level(finding.Low)
)

// Levels returns all filter levels in display order.
func Levels() []Level {
	return []Level{All, Critical, High, Medium, Low}
}

// ParseLevel matches s against the filter levels, ignoring case.
func ParseLevel(s string) (Level, bool) {
	if sev, ok := finding.ParseSeverity(s); ok {
		return Level(sev), true
	}
	if strings.EqualFold(s, string(All)) {
		return All, true
	}
	return "", false
}

// IsValid reports whether l is a recognized filter level.
func (l Level) IsValid() bool {
	switch l {
	case All, Critical, High, Medium, Low:
		return true
	}
	return false
}

// Severity returns the severity a non-All level filters on.
func (l Level) Severity() (finding.Severity, bool) {
	if l == All || !l.IsValid() {
		return "", false
	}
	return finding.Severity(l), true
}

// String returns the level as a string.
func (l Level) String() string {
	return string(l)
}

// Selection is the per-report view state: active filter plus expanded
// finding ids. The zero value is not ready; use NewSelection. Not
// safe for concurrent use; callers that share one lock their own.
type Selection struct {
	activeFilter Level
	expanded     map[string]struct{}
}

// NewSelection returns the default selection: filter All, nothing
// expanded.
func NewSelection() *Selection {
	return &Selection{
		activeFilter: All,
		expanded:     make(map[string]struct{}),
	}
}

// Filter returns the active filter level.
func (s *Selection) Filter() Level {
	return s.activeFilter
}

// SetFilter sets the active filter. Invalid levels are ignored, not
// an error. The expanded set is untouched.
func (s *Selection) SetFilter(l Level) {
	if l.IsValid() {
		s.activeFilter = l
	}
}

// Toggle flips the expansion state of one finding id. An id that
// matches no current finding toggles harmlessly; Visible never shows
// it and ExpandAll clears it.
func (s *Selection) Toggle(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = struct{}{}
	}
}

// Expanded reports whether the finding id is currently expanded.
func (s *Selection) Expanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// ExpandedIDs returns the expanded ids in sorted order.
func (s *Selection) ExpandedIDs() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExpandAll replaces the expanded set with exactly the ids of the
// given findings, normally the currently visible subset. Previously
// expanded ids outside that subset collapse.
func (s *Selection) ExpandAll(visible []finding.Finding) {
	s.expanded = make(map[string]struct{}, len(visible))
	for _, f := range visible {
		s.expanded[f.ID] = struct{}{}
	}
}

// CollapseAll empties the expanded set.
func (s *Selection) CollapseAll() {
	s.expanded = make(map[string]struct{})
}

// Visible derives the displayed subset: the findings slice itself
// when the filter is All, otherwise the subsequence with matching
// severity in original order.
func (s *Selection) Visible(findings []finding.Finding) []finding.Finding {
	sev, ok := s.activeFilter.Severity()
	if !ok {
		return findings
	}
	var out []finding.Finding
	for _, f := range findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// CountsByLevel returns the number of findings each filter level
// would show; All maps to the total.
func CountsByLevel(findings []finding.Finding) map[Level]int {
	counts := map[Level]int{
		All:      len(findings),
		Critical: 0,
		High:     0,
		Medium:   0,
		Low:      0,
	}
	for _, f := range findings {
		counts[Level(f.Severity)]++
	}
	return counts
}
