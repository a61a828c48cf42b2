package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to the flags.
type FileConfig struct {
	Include struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"include" json:"include"`

	Header struct {
		Name   string `yaml:"name" json:"name"`
		Define string `yaml:"define" json:"define"`
	} `yaml:"header" json:"header"`

	Repo         string `yaml:"repo" json:"repo"`
	CI           bool   `yaml:"ci" json:"ci"`
	WriteDefault bool   `yaml:"writeDefault" json:"writeDefault"`
	DryRun       bool   `yaml:"dryRun" json:"dryRun"`
	Verbose      bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset in cfg. Flags and env should already have been
// applied; this lets file config supply defaults while preserving them.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.IncludeDir == "" && fc.Include.Dir != "" {
		cfg.IncludeDir = fc.Include.Dir
	}
	if cfg.HeaderName == "" && fc.Header.Name != "" {
		cfg.HeaderName = fc.Header.Name
	}
	if cfg.DefineName == "" && fc.Header.Define != "" {
		cfg.DefineName = fc.Header.Define
	}
	if (cfg.RepoDir == "" || cfg.RepoDir == ".") && fc.Repo != "" {
		cfg.RepoDir = fc.Repo
	}
	if !cfg.CI && fc.CI {
		cfg.CI = true
	}
	if !cfg.WriteDefault && fc.WriteDefault {
		cfg.WriteDefault = true
	}
	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// cIdentifier matches what the C preprocessor accepts as a macro name.
var cIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateConfig performs minimal schema validation. Empty fields are fine;
// they receive defaults when the app is constructed.
func ValidateConfig(cfg Config) error {
	if cfg.DefineName != "" && !cIdentifier.MatchString(cfg.DefineName) {
		return fmt.Errorf("config: define %q is not a valid macro name", cfg.DefineName)
	}
	if strings.ContainsAny(cfg.HeaderName, `/\`) {
		return errors.New("config: header name must not contain path separators (set the include dir instead)")
	}
	return nil
}
