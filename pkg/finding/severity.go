package finding

import (
	"golang.org/x/text/cases"
)

// Severity represents the severity level of a security finding.
// Values use canonical title casing ("Critical"), matching the
// report format produced by the upstream analysis engine.
type Severity string

const (
	// Critical represents immediate loss of funds or full compromise
	// (reentrancy, unprotected selfdestruct, auth bypass).
	Critical Severity = "Critical"

	// High represents significant impact requiring prompt fix
	// (missing access control, unchecked external calls).
	High Severity = "High"

	// Medium represents moderate impact (integer overflow on
	// non-critical paths, weak randomness).
	Medium Severity = "Medium"

	// Low represents limited impact (style issues with security
	// implications, minor information leaks).
	Low Severity = "Low"
)

// fold performs Unicode case folding for caseless keyword
// comparison. cases.Caser is not safe for concurrent use, so each
// call acquires a fresh one.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Severities returns all severity levels in fixed priority order,
// highest first. The extractor emits finding groups in this order.
func Severities() []Severity {
	return []Severity{Critical, High, Medium, Low}
}

// ParseSeverity matches s against the known severity levels,
// ignoring case. The second return value reports whether s was
// recognized.
func ParseSeverity(s string) (Severity, bool) {
	folded := fold(s)
	for _, sev := range Severities() {
		if folded == fold(string(sev)) {
			return sev, true
		}
	}
	return "", false
}

// IsValid reports whether s is a recognized severity level.
func (s Severity) IsValid() bool {
	switch s {
	case Critical, High, Medium, Low:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// Critical=4, High=3, Medium=2, Low=1, Unknown=0.
func (s Severity) Score() int {
	switch s {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// Key returns the lowercase form used in finding ids and JSON keys.
func (s Severity) Key() string {
	return fold(string(s))
}

// ToSARIF maps severity to SARIF result level.
// Critical/High → error, Medium → warning, Low → note.
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
func (s Severity) ToSARIF() string {
	switch s {
	case Critical, High:
		return "error"
	case Medium:
		return "warning"
	default:
		return "note"
	}
}

// ToSARIFScore maps severity to GitHub security-severity score.
// These scores align with GitHub Advanced Security severity thresholds.
func (s Severity) ToSARIFScore() string {
	switch s {
	case Critical:
		return "9.5"
	case High:
		return "8.0"
	case Medium:
		return "5.5"
	case Low:
		return "2.0"
	default:
		return "0.0"
	}
}

// ToGitLab maps severity to GitLab SAST severity, which happens to
// share auditlens' canonical casing.
func (s Severity) ToGitLab() string {
	if s.IsValid() {
		return string(s)
	}
	return "Info"
}
