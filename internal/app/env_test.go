package app

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadEnvFiles reads KEY=VALUE pairs into the process environment, so a
// build script can keep CI and PROJECT_INCLUDE_DIR in a file.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("PROJECT_INCLUDE_DIR", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.build")
	content := "\n# build environment\nCI=true\nPROJECT_INCLUDE_DIR='fw/include'\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if !EnvCI() {
		t.Fatalf("CI=true from dotenv should select CI mode")
	}
	if got := os.Getenv("PROJECT_INCLUDE_DIR"); got != "fw/include" {
		t.Fatalf("PROJECT_INCLUDE_DIR=%q, want fw/include (quotes stripped)", got)
	}
}

// Later files override earlier ones.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if err := LoadEnvFiles(a, b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

// Missing files are skipped so an optional .env never breaks the build.
func TestLoadEnvFiles_MissingFileIgnored(t *testing.T) {
	if err := LoadEnvFiles(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing dotenv file should not error: %v", err)
	}
}
