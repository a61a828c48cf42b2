package app

import "time"

// Config holds runtime configuration for one generator invocation.
type Config struct {
	// Output
	IncludeDir string // directory receiving the header; default "include"
	HeaderName string // file name inside IncludeDir; default "version.h"
	DefineName string // macro name; default FIRMWARE_VERSION

	// Version resolution
	CI      bool   // require an exact git tag instead of a dev stamp
	RepoDir string // work tree queried for tags; default "."

	// Behavior
	DryRun       bool // resolve and log without touching the filesystem
	WriteDefault bool // also emit version.h.default when missing
	Verbose      bool

	// Now supplies the clock for dev version stamps; nil means time.Now.
	Now func() time.Time
}

// Defaults match the conventional PlatformIO project layout the firmware
// build uses.
const (
	DefaultIncludeDir = "include"
	DefaultHeaderName = "version.h"
	// FallbackHeaderName is the committed header the firmware falls back to
	// when no version.h has been generated.
	FallbackHeaderName = "version.h.default"
)
