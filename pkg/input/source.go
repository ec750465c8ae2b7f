// Package input acquires the raw audit report text for the extractor.
// The report arrives as one opaque string from the analysis engine;
// this package only moves bytes, it never interprets them. An empty
// report is a valid input.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxReportSize caps how much report text is read. Reports are
// narrative text; anything larger is a misdirected upload.
const MaxReportSize = 16 << 20 // 16 MiB

// ErrReportTooLarge indicates the report exceeded MaxReportSize.
var ErrReportTooLarge = errors.New("input: report exceeds size limit")

// StdinPath is the conventional path meaning "read from stdin".
const StdinPath = "-"

// ReadSource reads the full report text from a file path, or from
// stdin when path is "-".
func ReadSource(path string) (string, error) {
	if path == StdinPath {
		return readAll(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()
	return readAll(f, path)
}

func readAll(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxReportSize+1))
	if err != nil {
		return "", fmt.Errorf("reading report from %s: %w", name, err)
	}
	if len(data) > MaxReportSize {
		return "", fmt.Errorf("%w: %s", ErrReportTooLarge, name)
	}
	return string(data), nil
}

// SourceName returns the display name for a report path, used in
// export metadata.
func SourceName(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	return path
}
