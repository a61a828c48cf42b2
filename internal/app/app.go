package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"genversion/internal/gitver"
	"genversion/internal/header"
)

// tagSource is satisfied by gitver.Resolver; tests substitute a stub.
type tagSource interface {
	ExactTag(ctx context.Context) (string, error)
}

type App struct {
	cfg  Config
	tags tagSource
}

// New applies defaults and wires the git tag resolver.
func New(cfg Config) *App {
	if cfg.IncludeDir == "" {
		cfg.IncludeDir = DefaultIncludeDir
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultHeaderName
	}
	if cfg.DefineName == "" {
		cfg.DefineName = header.DefaultDefine
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &App{cfg: cfg, tags: &gitver.Resolver{Dir: cfg.RepoDir}}
}

// HeaderPath returns where the generated header will be written.
func (a *App) HeaderPath() string {
	return filepath.Join(a.cfg.IncludeDir, a.cfg.HeaderName)
}

// Run resolves the version and emits the header. It returns the resolved
// version so the CLI can print it for shell consumption. Resolution happens
// before any file I/O: a failed CI build leaves existing headers untouched.
func (a *App) Run(ctx context.Context) (string, error) {
	version, err := a.resolveVersion(ctx)
	if err != nil {
		return "", err
	}

	path := a.HeaderPath()
	if a.cfg.DryRun {
		log.Info().Str("version", version).Str("path", path).Msg("dry run, header not written")
		return version, nil
	}

	if err := header.Write(path, a.cfg.DefineName, version); err != nil {
		return "", err
	}
	if a.cfg.WriteDefault {
		fallback := filepath.Join(a.cfg.IncludeDir, FallbackHeaderName)
		created, err := header.WriteDefault(fallback, a.cfg.DefineName)
		if err != nil {
			return "", err
		}
		if created {
			log.Info().Str("path", fallback).Msg("created fallback header; commit it alongside the sources")
		}
	}

	log.Info().Str("path", path).Str("version", version).Msg("generated version header")
	return version, nil
}

func (a *App) resolveVersion(ctx context.Context) (string, error) {
	if a.cfg.CI {
		log.Info().Msg("CI environment detected, resolving version from git tag")
		return a.tags.ExactTag(ctx)
	}
	log.Debug().Msg("local build, using dev version stamp")
	return DevVersion(a.cfg.Now()), nil
}

// DevVersion formats the local-build version for the given wall-clock time,
// e.g. "dev-20251017-023223".
func DevVersion(t time.Time) string {
	return "dev-" + t.Format("20060102-150405")
}
