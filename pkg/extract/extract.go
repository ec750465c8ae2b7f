package extract

import (
	"regexp"
	"strings"

	"github.com/auditlens/auditlens/pkg/finding"
)

// keywordRe matches any severity keyword as a whole word,
// case-insensitively. Word boundaries keep prose like "overflow" or
// "higher" from opening a span. RE2 has no lookahead, so instead of
// one lookahead scan per severity the extractor locates every keyword
// occurrence in a single pass and slices the text between consecutive
// occurrences; the resulting spans are identical.
var keywordRe = regexp.MustCompile(`(?i)\b(?:critical|high|medium|low)\b`)

// Extract parses report text into findings, grouped by severity in
// priority order (Critical, High, Medium, Low) and in match order
// within each group. Returns nil when no severity keyword occurs
// anywhere in the text.
func Extract(text string) []finding.Finding {
	locs := keywordRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make(map[finding.Severity][]string, 4)
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sev, ok := finding.ParseSeverity(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		spans[sev] = append(spans[sev], text[loc[0]:end])
	}

	var findings []finding.Finding
	for _, sev := range finding.Severities() {
		for ordinal, raw := range spans[sev] {
			title, desc, ok := parseSpan(sev, raw)
			if !ok {
				continue
			}
			findings = append(findings, finding.New(sev, ordinal, title, desc))
		}
	}
	return findings
}

// parseSpan locates the title line and joins the rest into the
// description. A line that is nothing but the severity keyword (a
// section heading like "Critical" or "## High:") is skipped in favor
// of the next non-blank line; a keyword line carrying extra content
// ("critical: overflow") is itself the title. Interior blank lines in
// the description are preserved; the joined text is trimmed at both
// ends. ok is false when the span has no non-blank line at all.
func parseSpan(sev finding.Severity, raw string) (title, desc string, ok bool) {
	lines := strings.Split(raw, "\n")

	titleIdx := nextNonBlank(lines, 0)
	if titleIdx < 0 {
		return "", "", false
	}
	title = cleanTitle(lines[titleIdx])

	if isHeadingOnly(title, sev) {
		if next := nextNonBlank(lines, titleIdx+1); next >= 0 {
			titleIdx = next
			title = cleanTitle(lines[titleIdx])
		}
	}

	desc = strings.TrimSpace(strings.Join(lines[titleIdx+1:], "\n"))
	return title, desc, true
}

func nextNonBlank(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}

// cleanTitle strips leading markdown heading markers and a **…**
// emphasis wrapper, then trims whitespace.
func cleanTitle(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	if strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") && len(s) >= 4 {
		s = s[2 : len(s)-2]
	}
	return strings.TrimSpace(s)
}

// isHeadingOnly reports whether a cleaned title line is just the
// severity keyword, optionally followed by a colon.
func isHeadingOnly(title string, sev finding.Severity) bool {
	t := strings.TrimSpace(strings.TrimSuffix(title, ":"))
	return strings.EqualFold(t, string(sev))
}
