package main

import (
	"errors"
	"fmt"
	"os"

	uikit "github.com/alnah/go-uikit"
	"github.com/alnah/go-uikit/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage             = errors.New("invalid usage")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrStylesheetMissing = errors.New("stylesheet missing")
	ErrReadStylesheet    = errors.New("failed to read stylesheet")
)

// configLoadError records which config name or path failed to load, as
// parsed from --config or UIKIT_CONFIG.
type configLoadError struct {
	name string
	err  error
}

func (e *configLoadError) Error() string {
	return "loading config: " + e.err.Error()
}

func (e *configLoadError) Unwrap() error {
	return e.err
}

// loadSettings builds the effective config.
// Precedence: CLI flags > env vars > config file > defaults
func loadSettings(common *commonFlags, af *assetFlags, env *Environment) (*config.Config, error) {
	ec := loadEnvConfig(env.Getenv)

	configName := common.config
	if configName == "" {
		configName = ec.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, &configLoadError{name: configName, err: err}
		}
		cfg = loaded
		if common.verbose {
			fmt.Fprintf(env.Stderr, "Using config: %s\n", configName)
		}
	}

	applyEnvConfig(ec, cfg)
	mergeAssetFlags(af, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeAssetFlags overrides config values with explicitly set flags.
func mergeAssetFlags(af *assetFlags, cfg *config.Config) {
	if af.assetPath != "" {
		cfg.Assets.BasePath = af.assetPath
	}
	if af.cacheDir != "" {
		cfg.Assets.CacheDir = af.cacheDir
	}
}

// newResolver creates a library resolver from the effective config.
func newResolver(cfg *config.Config) (*uikit.Resolver, error) {
	return uikit.NewResolver(
		uikit.WithAssetPath(cfg.Assets.BasePath),
		uikit.WithCacheDir(cfg.Assets.CacheDir),
	)
}

// locate resolves the stylesheet for a command, logging the result when verbose.
func locate(common *commonFlags, af *assetFlags, env *Environment) (uikit.Location, error) {
	cfg, err := loadSettings(common, af, env)
	if err != nil {
		return uikit.Location{}, err
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return uikit.Location{}, err
	}

	loc, err := resolver.Locate()
	if err != nil {
		return uikit.Location{}, err
	}

	if common.verbose {
		fmt.Fprintf(env.Stderr, "Resource root: %s (%s)\n", loc.Root, loc.Source)
	}
	return loc, nil
}

// runPath prints the stylesheet path.
func runPath(args []string, env *Environment) error {
	f, err := parsePathFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	loc, err := locate(&f.common, &f.assets, env)
	if err != nil {
		return err
	}

	if f.check {
		if _, err := os.Stat(loc.Path); err != nil {
			return fmt.Errorf("%w: %w", ErrStylesheetMissing, err)
		}
	}

	fmt.Fprintln(env.Stdout, loc.Path)
	return nil
}

// runCat writes the resolved stylesheet to stdout.
func runCat(args []string, env *Environment) error {
	f, err := parseCatFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	loc, err := locate(&f.common, &f.assets, env)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(loc.Path) // #nosec G304 -- path built from a resolved root and fixed segments
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadStylesheet, err)
	}

	if _, err := env.Stdout.Write(content); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}
