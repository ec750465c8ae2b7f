package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditlens/auditlens/presets"
)

// preset mirrors the flag surface in YAML. Pointer fields distinguish
// "absent" from zero values so presets only override what they set.
type preset struct {
	Input        *string `yaml:"input"`
	Severity     *string `yaml:"severity"`
	ExpandAll    *bool   `yaml:"expand-all"`
	ShowLocation *bool   `yaml:"location"`
	Interactive  *bool   `yaml:"interactive"`
	Format       *string `yaml:"format"`
	Template     *string `yaml:"template"`
	Output       *string `yaml:"output"`
	Silent       *bool   `yaml:"silent"`
	NoColor      *bool   `yaml:"no-color"`
	Verbose      *bool   `yaml:"verbose"`
}

// readPreset reads a preset from disk, falling back to the bundled
// presets when the path names no on-disk file.
func readPreset(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		if embedded, eerr := presets.FS.ReadFile(path); eerr == nil {
			return embedded, nil
		}
	}
	return nil, err
}

// applyPreset loads a YAML preset and copies its values into c,
// skipping any flag the user set explicitly on the command line.
func (c *Config) applyPreset(path string, explicit map[string]bool) error {
	data, err := readPreset(path)
	if err != nil {
		return fmt.Errorf("%w: reading preset: %v", ErrInvalidConfig, err)
	}

	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: parsing preset %s: %v", ErrInvalidConfig, path, err)
	}

	setString := func(flagName string, dst *string, src *string) {
		if src != nil && !explicit[flagName] {
			*dst = *src
		}
	}
	setBool := func(flagName string, dst *bool, src *bool) {
		if src != nil && !explicit[flagName] {
			*dst = *src
		}
	}

	setString("i", &c.InputPath, p.Input)
	setString("severity", &c.Severity, p.Severity)
	setBool("expand-all", &c.ExpandAll, p.ExpandAll)
	setBool("location", &c.ShowLocation, p.ShowLocation)
	setBool("interactive", &c.Interactive, p.Interactive)
	setString("format", &c.Format, p.Format)
	setString("template", &c.Template, p.Template)
	setString("o", &c.OutputFile, p.Output)
	setBool("silent", &c.Silent, p.Silent)
	setBool("no-color", &c.NoColor, p.NoColor)
	setBool("v", &c.Verbose, p.Verbose)
	return nil
}
