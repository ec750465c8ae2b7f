package jsonutil

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := sample{ID: "critical-0", Severity: "Critical", Line: 42}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestMarshalIndent(t *testing.T) {
	t.Parallel()

	data, err := MarshalIndent(sample{ID: "low-0"}, "  ")
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"id\"") {
		t.Errorf("output not indented: %s", data)
	}
}

func TestMarshalWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := MarshalWrite(&buf, sample{ID: "high-1"}, ""); err != nil {
		t.Fatalf("MarshalWrite: %v", err)
	}
	if !Valid(buf.Bytes()) {
		t.Errorf("MarshalWrite produced invalid JSON: %s", buf.String())
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	if !Valid([]byte(`{"id":"critical-0"}`)) {
		t.Error("valid JSON reported invalid")
	}
	if Valid([]byte(`{"id":`)) {
		t.Error("truncated JSON reported valid")
	}
}
