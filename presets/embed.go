// Package presets embeds the bundled option preset files for
// distribution, so a preset referenced by name works regardless of
// installation method (Homebrew, Docker, or manual download). The
// config loader falls back to these embedded presets when the -preset
// argument names no on-disk file.
//
// Usage:
//
//	data, _ := presets.FS.ReadFile("triage.yaml")
package presets

import "embed"

// FS contains the bundled preset YAML files. Each file sets default
// CLI options for a common workflow.
//
//go:embed *.yaml
var FS embed.FS
