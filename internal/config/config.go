package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-uikit/internal/fileutil"
	"github.com/alnah/go-uikit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// MaxPathLength bounds every path-valued field.
const MaxPathLength = 4096 // PATH_MAX on Linux

// appDir is the directory name under the user config dir.
const appDir = "go-uikit"

// Config holds all configuration for resource lookup.
type Config struct {
	Assets AssetsConfig `yaml:"assets"`
}

// AssetsConfig defines where the stylesheet's resource root comes from.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Installed package root (empty = default chain)
	CacheDir string `yaml:"cacheDir"` // Where embedded files are materialized (empty = user cache dir)
}

// Validate checks field lengths and rejects NUL bytes in paths.
// Called automatically by LoadConfig, but available for callers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validatePath("assets.basePath", c.Assets.BasePath); err != nil {
		return err
	}
	if err := validatePath("assets.cacheDir", c.Assets.CacheDir); err != nil {
		return err
	}
	return nil
}

func validatePath(fieldName, value string) error {
	if err := validateFieldLength(fieldName, value, MaxPathLength); err != nil {
		return err
	}
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidField, fieldName)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that uses the default locator chain.
func DefaultConfig() *Config {
	return &Config{
		Assets: AssetsConfig{BasePath: "", CacheDir: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Relative paths inside the file are resolved against the file's directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolveRelative(filepath.Dir(configPath))

	return &cfg, nil
}

// resolveRelative anchors relative path fields at dir.
func (c *Config) resolveRelative(dir string) {
	if c.Assets.BasePath != "" && !filepath.IsAbs(c.Assets.BasePath) {
		c.Assets.BasePath = filepath.Join(dir, c.Assets.BasePath)
	}
	if c.Assets.CacheDir != "" && !filepath.IsAbs(c.Assets.CacheDir) {
		c.Assets.CacheDir = filepath.Join(dir, c.Assets.CacheDir)
	}
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// ./NAME.yaml, ./NAME.yml, {user config dir}/go-uikit/NAME.yaml, .../NAME.yml
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
