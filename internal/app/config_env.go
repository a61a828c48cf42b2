package app

import (
	"os"
	"strings"
)

// EnvCI reports whether the hosting build environment declares CI mode.
// Only the literal "true", compared case-insensitively, counts; any other
// value, including an unset variable, means a local developer build.
func EnvCI() bool {
	return strings.EqualFold(os.Getenv("CI"), "true")
}

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values (typically from flags) take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.IncludeDir == "" {
		cfg.IncludeDir = os.Getenv("PROJECT_INCLUDE_DIR")
	}
	if !cfg.CI {
		cfg.CI = EnvCI()
	}
}
