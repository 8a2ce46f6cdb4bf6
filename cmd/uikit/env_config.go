package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-uikit/internal/config"
)

// envPrefix marks the environment variables this tool reads.
const envPrefix = "UIKIT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // UIKIT_CONFIG: config file name or path
	AssetPath  string // UIKIT_ASSET_PATH: installed resource root
	CacheDir   string // UIKIT_CACHE_DIR: where embedded files are materialized
}

// knownEnvVars lists valid UIKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"UIKIT_CONFIG":     true,
	"UIKIT_ASSET_PATH": true,
	"UIKIT_CACHE_DIR":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("UIKIT_CONFIG"),
		AssetPath:  getenv("UIKIT_ASSET_PATH"),
		CacheDir:   getenv("UIKIT_CACHE_DIR"),
	}
}

// unknownEnvVars returns the sorted names of unrecognized UIKIT_* variables.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars writes a warning for each unrecognized UIKIT_* variable.
// Helps catch typos like UIKIT_ASSETS_PATH instead of UIKIT_ASSET_PATH.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, name := range unknownEnvVars(environ) {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays environment values on the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeAssetFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.CacheDir != "" {
		cfg.Assets.CacheDir = env.CacheDir
	}
}
