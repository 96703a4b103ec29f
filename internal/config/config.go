// Package config holds the rewriter configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datlag/tolgeerewrite/internal/funcspec"
)

// Defaults mirror the Android Context.getString -> Tolgee getStringInstant rule.
const (
	DefaultTarget      = "android/content.Context.GetString"
	DefaultReplacement = "github.com/datlag/tolgee/common.GetStringInstant"
	DefaultMarker      = "int"
)

// ErrNoTarget is returned when the target does not name a method.
var ErrNoTarget = errors.New("target must name a method: pkg/path.Type.Method")

// Config controls the getString rewrite.
type Config struct {
	// Enabled turns the rewrite on. When false the pass does nothing.
	Enabled bool

	// Target is the method whose calls are redirected.
	Target string

	// Replacements lists candidate functions in the order they are tried.
	Replacements []string

	// Marker is the resource-id type a candidate's first parameter must have.
	Marker string
}

// Default returns the built-in configuration. The rewrite is disabled.
func Default() Config {
	return Config{
		Target:       DefaultTarget,
		Replacements: []string{DefaultReplacement},
		Marker:       DefaultMarker,
	}
}

// ReplacementList returns Replacements joined in flag form.
func (c Config) ReplacementList() string {
	return strings.Join(c.Replacements, ",")
}

// SplitList splits a comma-separated flag value.
func SplitList(s string) []string {
	var out []string

	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Validate checks the parts that cannot fail open.
func (c Config) Validate() error {
	spec := funcspec.Parse(c.Target)
	if !spec.IsMethod() || spec.PkgPath == "" || spec.FuncName == "" {
		return fmt.Errorf("%w: got %q", ErrNoTarget, c.Target)
	}

	return nil
}

// Load reads a YAML configuration file on top of base.
// Keys missing from the file keep their base values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data, base)
	if err != nil {
		return base, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML content on top of base. The result is not validated:
// a disabled configuration may carry any target.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.Replacements = append([]string(nil), base.Replacements...)

	var file struct {
		Enabled      *bool    `yaml:"getstring"`
		Target       string   `yaml:"target"`
		Replacements []string
		Marker       string   `yaml:"marker"`
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, err
	}

	if file.Enabled != nil {
		cfg.Enabled = *file.Enabled
	}

	if file.Target != "" {
		cfg.Target = strings.TrimSpace(file.Target)
	}

	if len(file.Replacements) > 0 {
		cfg.Replacements = SplitList(strings.Join(file.Replacements, ","))
	}

	if file.Marker != "" {
		cfg.Marker = strings.TrimSpace(file.Marker)
	}

	return cfg, nil
}
