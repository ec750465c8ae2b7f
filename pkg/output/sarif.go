package output

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/auditlens/auditlens/pkg/finding"
	"github.com/auditlens/auditlens/pkg/jsonutil"
)

// SARIFWriter writes the report in SARIF 2.1.0 format, the standard
// for the GitHub Security tab, GitLab SAST, and Azure DevOps. One
// reporting descriptor (rule) exists per severity level; each finding
// becomes a result referencing its severity's rule, with a
// matchBasedId-style fingerprint for deduplication across uploads.
type SARIFWriter struct {
	w    io.Writer
	opts SARIFOptions
}

// SARIFOptions configures the SARIF writer.
type SARIFOptions struct {
	// ToolName is the name of the tool (default: auditlens).
	ToolName string

	// ToolURI is the information URI for the tool.
	ToolURI string

	Logger *slog.Logger
}

// SARIF 2.1.0 structures.

type sarifDocument struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool     `json:"tool"`
	Results    []sarifResult `json:"results"`
	ColumnKind string        `json:"columnKind,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	ShortDescription *sarifMessage     `json:"shortDescription,omitempty"`
	Properties       map[string]string `json:"properties,omitempty"`
}

type sarifResult struct {
	RuleID       string            `json:"ruleId"`
	RuleIndex    int               `json:"ruleIndex"`
	Level        string            `json:"level"`
	Message      sarifMessage      `json:"message"`
	Locations    []sarifLocation   `json:"locations,omitempty"`
	Fingerprints map[string]string `json:"partialFingerprints,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// NewSARIFWriter creates a SARIF 2.1.0 report writer.
func NewSARIFWriter(w io.Writer, opts SARIFOptions) *SARIFWriter {
	if opts.ToolName == "" {
		opts.ToolName = ToolName
	}
	return &SARIFWriter{w: w, opts: opts}
}

func (sw *SARIFWriter) Write(r *Report) error {
	rules := make([]sarifRule, 0, 4)
	ruleIndex := make(map[finding.Severity]int, 4)
	for i, sev := range finding.Severities() {
		ruleIndex[sev] = i
		rules = append(rules, sarifRule{
			ID:   fmt.Sprintf("%s/%s", sw.opts.ToolName, sev.Key()),
			Name: fmt.Sprintf("%sSeverityFinding", sev),
			ShortDescription: &sarifMessage{
				Text: fmt.Sprintf("%s severity audit finding", sev),
			},
			Properties: map[string]string{
				"security-severity": sev.ToSARIFScore(),
			},
		})
	}

	results := make([]sarifResult, 0, len(r.Findings))
	for _, f := range r.Findings {
		text := f.Title
		if f.Description != "" {
			text += "\n\n" + f.Description
		}
		results = append(results, sarifResult{
			RuleID:    fmt.Sprintf("%s/%s", sw.opts.ToolName, f.Severity.Key()),
			RuleIndex: ruleIndex[f.Severity],
			Level:     f.Severity.ToSARIF(),
			Message:   sarifMessage{Text: text},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.File},
					Region:           &sarifRegion{StartLine: sarifLine(f.Line)},
				},
			}},
			Fingerprints: map[string]string{
				"matchBasedId/v1": fingerprint(f),
			},
		})
	}

	doc := sarifDocument{
		Schema:  "https://docs.oasis-open.org/sarif/sarif/v2.1.0/os/schemas/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           sw.opts.ToolName,
				Version:        r.Tool.Version,
				InformationURI: sw.opts.ToolURI,
				Rules:          rules,
			}},
			Results:    results,
			ColumnKind: "utf16CodeUnits",
		}},
	}

	if err := jsonutil.MarshalWrite(sw.w, doc, "  "); err != nil {
		return fmt.Errorf("writing SARIF report: %w", err)
	}
	orDefault(sw.opts.Logger).Debug("report exported", "format", FormatSARIF, "findings", r.Total)
	return nil
}

// sarifLine clamps the placeholder line 0 into SARIF's 1-based regions.
func sarifLine(line int) int {
	if line < 1 {
		return 1
	}
	return line
}

// fingerprint hashes the stable identity of a finding for cross-upload
// deduplication.
func fingerprint(f finding.Finding) string {
	h := sha256.Sum256([]byte(f.ID + "|" + string(f.Severity) + "|" + f.Title))
	return hex.EncodeToString(h[:])
}
