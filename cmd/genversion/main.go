package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"genversion/internal/app"
	"genversion/internal/gitver"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		includeDir   string
		headerName   string
		defineName   string
		repoDir      string
		ciMode       bool
		dryRun       bool
		printOnly    bool
		writeDefault bool
		envFiles     string
		configPath   string
		verbose      bool
		showVersion  bool
	)

	flag.StringVar(&includeDir, "include.dir", os.Getenv("PROJECT_INCLUDE_DIR"), "Directory receiving the generated header (default 'include')")
	flag.StringVar(&headerName, "out", "", "Header file name inside the include directory (default 'version.h')")
	flag.StringVar(&defineName, "define", "", "Preprocessor macro name (default 'FIRMWARE_VERSION')")
	flag.StringVar(&repoDir, "repo", ".", "Git work tree queried for the release tag")
	flag.BoolVar(&ciMode, "ci", false, "Require an exact git tag (implied by CI=true in the environment)")
	flag.BoolVar(&dryRun, "dry-run", false, "Resolve and log the version without writing files")
	flag.BoolVar(&printOnly, "print", false, "Also print the bare resolved version to stdout")
	flag.BoolVar(&writeDefault, "write-default", false, "Also write version.h.default when it is missing")
	flag.StringVar(&envFiles, "env", "", "Comma-separated dotenv files to load before resolving")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print the generator's own version and exit")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if showVersion {
		fmt.Printf("genversion %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	// Dotenv must load before env-derived settings are read.
	if strings.TrimSpace(envFiles) != "" {
		if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
			log.Error().Err(err).Msg("loading env files failed")
			os.Exit(1)
		}
	}

	cfg := app.Config{
		IncludeDir:   includeDir,
		HeaderName:   headerName,
		DefineName:   defineName,
		RepoDir:      repoDir,
		CI:           ciMode,
		DryRun:       dryRun,
		WriteDefault: writeDefault,
		Verbose:      verbose,
	}
	// Precedence: flags, then environment, then config file.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("loading config file failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	version, err := run(cfg)
	if err != nil {
		switch {
		case errors.Is(err, gitver.ErrUntagged):
			log.Error().Err(err).Msg("CI builds must be made from a commit with a version tag")
		case errors.Is(err, gitver.ErrGitNotFound):
			log.Error().Err(err).Msg("git not found in PATH; install git or build locally")
		default:
			log.Error().Err(err).Msg("version header generation failed")
		}
		os.Exit(1)
	}
	if printOnly {
		fmt.Println(version)
	}
}

func run(cfg app.Config) (string, error) {
	return app.New(cfg).Run(context.Background())
}
