package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/auditlens/auditlens/pkg/view"
)

func parseArgs(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return Parse(fs, args)
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseArgs(t, "-i", "audit.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.InitialFilter() != view.All {
		t.Errorf("InitialFilter = %q, want All", cfg.InitialFilter())
	}
}

func TestValidateMissingInput(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(t)
	if !errors.Is(err, ErrMissingRequired) {
		t.Errorf("err = %v, want ErrMissingRequired", err)
	}
}

func TestValidateBadFormat(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(t, "-i", "audit.txt", "-format", "pdf")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateBadSeverity(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(t, "-i", "audit.txt", "-severity", "info")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateTemplateRequiresBody(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(t, "-i", "audit.txt", "-format", "template")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	cfg, err := parseArgs(t, "-i", "audit.txt", "-format", "template", "-template", "csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Template != "csv" {
		t.Errorf("Template = %q, want csv", cfg.Template)
	}
}

func TestValidateInteractiveConflicts(t *testing.T) {
	t.Parallel()

	_, err := parseArgs(t, "-i", "-", "-interactive")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("stdin + interactive: err = %v, want ErrInvalidConfig", err)
	}

	_, err = parseArgs(t, "-i", "audit.txt", "-interactive", "-format", "json")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("interactive + json: err = %v, want ErrInvalidConfig", err)
	}
}

func TestInitialFilterParsesSeverity(t *testing.T) {
	t.Parallel()

	cfg, err := parseArgs(t, "-i", "audit.txt", "-severity", "CRITICAL")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.InitialFilter() != view.Critical {
		t.Errorf("InitialFilter = %q, want Critical", cfg.InitialFilter())
	}
}

func TestPresetAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	body := "input: audit.txt\nseverity: high\nformat: md\nsilent: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseArgs(t, "-preset", path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.InputPath != "audit.txt" || cfg.Severity != "high" || cfg.Format != "md" || !cfg.Silent {
		t.Errorf("preset not applied: %+v", cfg)
	}
}

func TestExplicitFlagsBeatPreset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("input: preset.txt\nformat: md\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseArgs(t, "-preset", path, "-i", "cli.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.InputPath != "cli.txt" {
		t.Errorf("InputPath = %q, explicit flag must win", cfg.InputPath)
	}
	if cfg.Format != "md" {
		t.Errorf("Format = %q, preset should fill unset flags", cfg.Format)
	}
}

func TestBundledPresetFallback(t *testing.T) {
	t.Parallel()

	// "triage.yaml" exists only in the embedded presets.
	cfg, err := parseArgs(t, "-preset", "triage.yaml", "-i", "audit.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Severity != "critical" || !cfg.ExpandAll || !cfg.ShowLocation {
		t.Errorf("bundled preset not applied: %+v", cfg)
	}
}

func TestPresetBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := parseArgs(t, "-preset", path, "-i", "audit.txt")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
