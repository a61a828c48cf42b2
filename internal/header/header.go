package header

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDefine is the macro name the firmware sources expect.
const DefaultDefine = "FIRMWARE_VERSION"

// DefaultVersion is embedded in the committed fallback header that the
// firmware includes when no header has been generated yet.
const DefaultVersion = "unknown"

// Render returns the full text of the generated header: a pragma guard, a
// blank line, and the version define, ending in a newline.
func Render(define, version string) string {
	return fmt.Sprintf("#pragma once\n\n#define %s %q\n", define, version)
}

// Write renders the header and writes it to path in full, replacing any
// previous content. The containing directory is created when missing,
// including parents.
func Write(path, define, version string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir include dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Render(define, version)), 0o644); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// WriteDefault writes the fallback header carrying DefaultVersion, but only
// when path does not exist yet: the fallback is committed to the repository,
// not rewritten on every build. It reports whether a file was created.
func WriteDefault(path, define string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat fallback header: %w", err)
	}
	if err := Write(path, define, DefaultVersion); err != nil {
		return false, err
	}
	return true, nil
}
