package finding

import (
	"sort"
	"testing"
)

func TestSeverityIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want bool
	}{
		{Critical, true},
		{High, true},
		{Medium, true},
		{Low, true},
		{"Info", false},
		{"", false},
		{"CRITICAL", false}, // case-sensitive
		{"critical", false}, // must be canonical casing
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			t.Parallel()
			if got := tt.s.IsValid(); got != tt.want {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"Critical", Critical, true},
		{"critical", Critical, true},
		{"CRITICAL", Critical, true},
		{"hIgH", High, true},
		{"medium", Medium, true},
		{"LOW", Low, true},
		{"info", "", false},
		{"", "", false},
		{"highest", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseSeverity(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseSeverity(%q) = (%q, %v), want (%q, %v)",
					tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSeverityScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want int
	}{
		{Critical, 4},
		{High, 3},
		{Medium, 2},
		{Low, 1},
		{"Info", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			t.Parallel()
			if got := tt.s.Score(); got != tt.want {
				t.Errorf("Severity(%q).Score() = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestSeveritySortOrder(t *testing.T) {
	t.Parallel()

	input := []Severity{Low, Critical, Medium, High}
	sort.Slice(input, func(i, j int) bool {
		return input[i].Score() > input[j].Score()
	})
	expected := Severities()
	for i, s := range input {
		if s != expected[i] {
			t.Errorf("sort position %d = %q, want %q", i, s, expected[i])
		}
	}
}

func TestSeverityKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want string
	}{
		{Critical, "critical"},
		{High, "high"},
		{Medium, "medium"},
		{Low, "low"},
	}
	for _, tt := range tests {
		if got := tt.s.Key(); got != tt.want {
			t.Errorf("Severity(%q).Key() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSeverityToSARIF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s         Severity
		wantLevel string
		wantScore string
	}{
		{Critical, "error", "9.5"},
		{High, "error", "8.0"},
		{Medium, "warning", "5.5"},
		{Low, "note", "2.0"},
		{"", "note", "0.0"},
	}
	for _, tt := range tests {
		if got := tt.s.ToSARIF(); got != tt.wantLevel {
			t.Errorf("Severity(%q).ToSARIF() = %q, want %q", tt.s, got, tt.wantLevel)
		}
		if got := tt.s.ToSARIFScore(); got != tt.wantScore {
			t.Errorf("Severity(%q).ToSARIFScore() = %q, want %q", tt.s, got, tt.wantScore)
		}
	}
}
