// Package extract turns a free-form audit report into an ordered
// slice of findings.
//
// The report format is unstructured narrative text; segmentation is
// keyword-driven: every case-insensitive occurrence of a severity
// keyword (critical, high, medium, low) opens a span that runs to the
// next occurrence of any keyword or end of text. Spans are contiguous
// and non-overlapping by construction. Extraction is a pure function
// of the input text and never fails; text without a single keyword
// yields an empty result, which callers render as "no vulnerabilities
// detected" rather than an error.
package extract
