// Package config holds the CLI configuration for auditlens: flag
// registration, YAML presets, and validation.
package config

import (
	"flag"
	"fmt"

	"github.com/auditlens/auditlens/pkg/input"
	"github.com/auditlens/auditlens/pkg/output"
	"github.com/auditlens/auditlens/pkg/view"
)

// FormatConsole renders to the terminal via pkg/ui instead of an
// output.Writer.
const FormatConsole = "console"

// Config holds all CLI configuration options.
type Config struct {
	// Input settings
	InputPath string // Report file path, "-" for stdin
	Preset    string // YAML preset file

	// View settings
	Severity     string // Initial severity filter (empty = all)
	ExpandAll    bool   // Start with every visible finding expanded
	ShowLocation bool   // Show chain/file metadata in expanded detail
	Interactive  bool   // Explore findings via stdin commands

	// Output settings
	Format     string // console, json, md, sarif, template
	Template   string // Template body or built-in name for -format template
	OutputFile string // Output file path (empty = stdout)
	Silent     bool   // Suppress banner and decorative output
	NoColor    bool   // Disable colored output
	Verbose    bool   // Debug logging
}

// Register declares all flags on fs and returns the Config they
// populate.
func Register(fs *flag.FlagSet) *Config {
	cfg := &Config{}
	fs.StringVar(&cfg.InputPath, "i", "", "audit report file ('-' for stdin)")
	fs.StringVar(&cfg.Preset, "preset", "", "YAML preset file with default options")
	fs.StringVar(&cfg.Severity, "severity", "", "initial severity filter (critical, high, medium, low)")
	fs.BoolVar(&cfg.ExpandAll, "expand-all", false, "expand every visible finding")
	fs.BoolVar(&cfg.ShowLocation, "location", false, "show chain/file metadata in expanded detail")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "explore findings interactively")
	fs.StringVar(&cfg.Format, "format", FormatConsole, "output format: console, json, md, sarif, template")
	fs.StringVar(&cfg.Template, "template", "", "template body or built-in name (csv, text-summary)")
	fs.StringVar(&cfg.OutputFile, "o", "", "output file (default stdout)")
	fs.BoolVar(&cfg.Silent, "silent", false, "suppress banner output")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	return cfg
}

// Parse registers flags on fs, parses args, applies the preset file
// (explicit flags win over preset values), and validates.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Preset != "" {
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := cfg.applyPreset(cfg.Preset, explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or conflicting
// options.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input report (-i)", ErrMissingRequired)
	}

	switch c.Format {
	case FormatConsole, output.FormatJSON, output.FormatMarkdown,
		output.FormatSARIF, output.FormatTemplate:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}

	if c.Format == output.FormatTemplate && c.Template == "" {
		return fmt.Errorf("%w: -format template requires -template", ErrInvalidConfig)
	}

	if c.Severity != "" {
		if _, ok := view.ParseLevel(c.Severity); !ok {
			return fmt.Errorf("%w: severity %q", ErrInvalidConfig, c.Severity)
		}
	}

	if c.Interactive {
		if c.InputPath == input.StdinPath {
			return fmt.Errorf("%w: interactive mode cannot read the report from stdin", ErrInvalidConfig)
		}
		if c.Format != FormatConsole {
			return fmt.Errorf("%w: interactive mode requires -format console", ErrInvalidConfig)
		}
	}

	return nil
}

// InitialFilter returns the view level the explorer starts on.
func (c *Config) InitialFilter() view.Level {
	if level, ok := view.ParseLevel(c.Severity); ok {
		return level
	}
	return view.All
}
