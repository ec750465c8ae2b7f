package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSourceFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "audit.txt")
	want := "Critical\nReentrancy bug\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if got != want {
		t.Errorf("ReadSource = %q, want %q", got, want)
	}
}

func TestReadSourceEmptyFileIsValid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSource(path)
	if err != nil {
		t.Fatalf("empty report must not be an error, got %v", err)
	}
	if got != "" {
		t.Errorf("ReadSource = %q, want empty", got)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadAllSizeLimit(t *testing.T) {
	t.Parallel()

	_, err := readAll(strings.NewReader(strings.Repeat("x", MaxReportSize+1)), "test")
	if !errors.Is(err, ErrReportTooLarge) {
		t.Errorf("err = %v, want ErrReportTooLarge", err)
	}
}

func TestSourceName(t *testing.T) {
	t.Parallel()

	if got := SourceName("-"); got != "stdin" {
		t.Errorf("SourceName(-) = %q, want stdin", got)
	}
	if got := SourceName("audit.txt"); got != "audit.txt" {
		t.Errorf("SourceName(audit.txt) = %q", got)
	}
}
