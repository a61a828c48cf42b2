package gitver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors surfaced to the CLI so it can apply its exit-code policy.
var (
	// ErrUntagged means the current revision is not pointed at by any tag.
	ErrUntagged = errors.New("current revision is not an exact tag")
	// ErrGitNotFound means the git executable could not be located in PATH.
	ErrGitNotFound = errors.New("git executable not found")
)

// Resolver answers "which tag is the checkout exactly at" by shelling out to
// git. The query is restricted to exact matches so that intermediate commits
// can never produce a release version.
type Resolver struct {
	// Dir is the work tree to query; empty means the process working
	// directory.
	Dir string

	// run overrides command execution in tests.
	run func(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ExactTag returns the tag pointing at the current revision, trimmed of
// surrounding whitespace. It fails with ErrUntagged when the revision carries
// no exact tag and with ErrGitNotFound when git is missing.
func (r *Resolver) ExactTag(ctx context.Context) (string, error) {
	runner := r.run
	if runner == nil {
		runner = runGit
	}
	out, err := runner(ctx, r.Dir, "describe", "--tags", "--exact-match")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return "", fmt.Errorf("%w: %s", ErrUntagged, msg)
			}
			return "", ErrUntagged
		}
		return "", fmt.Errorf("git describe: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// Output populates ExitError.Stderr, which carries git's diagnostic.
	return cmd.Output()
}
