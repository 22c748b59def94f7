// Package config loads per-project whitespace configuration from a
// .cwlwhitespace.yaml file: the default indentation style, per-pattern
// style overrides, and exclusion patterns.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// FileName is the configuration file searched for in a project tree.
const FileName = ".cwlwhitespace.yaml"

// Override applies a different indentation style to paths matching a
// gitignore-syntax pattern.
type Override struct {
	Pattern string
	Style   types.IndentStyle

	matcher *ignore.GitIgnore
}

// Config is a parsed project configuration.
type Config struct {
	// Style is the default indentation style for files no override matches.
	Style types.IndentStyle

	// Overrides are consulted in order; the last matching pattern wins.
	Overrides []Override

	// Exclude lists gitignore-syntax patterns for files to skip entirely.
	Exclude []string

	excluded *ignore.GitIgnore
}

// Default returns the configuration used when no config file is present:
// tab indentation, no overrides, no exclusions.
func Default() *Config {
	return &Config{Style: types.Tabs()}
}

// Load parses a configuration from YAML bytes.
func Load(data []byte) (*Config, error) {
	var yamlFile yamlConfigFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if yamlFile.Style.Indent != "" {
		style, err := types.ParseIndentStyle(yamlFile.Style.Indent, yamlFile.Style.Width)
		if err != nil {
			return nil, err
		}
		cfg.Style = style
	}

	for _, yo := range yamlFile.Overrides {
		if yo.Pattern == "" {
			return nil, fmt.Errorf("override is missing a pattern")
		}
		style, err := types.ParseIndentStyle(yo.Indent, yo.Width)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", yo.Pattern, err)
		}
		cfg.Overrides = append(cfg.Overrides, Override{
			Pattern: yo.Pattern,
			Style:   style,
			matcher: ignore.CompileIgnoreLines(yo.Pattern),
		})
	}

	cfg.Exclude = yamlFile.Exclude
	if len(cfg.Exclude) > 0 {
		cfg.excluded = ignore.CompileIgnoreLines(cfg.Exclude...)
	}
	return cfg, nil
}

// LoadFile parses the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find searches dir and its ancestors for a configuration file and
// returns its path, or "" when no ancestor has one.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// StyleFor returns the indentation style for a path, applying the last
// matching override or falling back to the default style.
func (c *Config) StyleFor(path string) types.IndentStyle {
	style := c.Style
	for _, o := range c.Overrides {
		if o.matcher != nil && o.matcher.MatchesPath(path) {
			style = o.Style
		}
	}
	return style
}

// Excluded reports whether a path matches any exclusion pattern.
func (c *Config) Excluded(path string) bool {
	return c.excluded != nil && c.excluded.MatchesPath(path)
}
