package main

import (
	"errors"
	"os"

	uikit "github.com/alnah/go-uikit"
	"github.com/alnah/go-uikit/internal/config"
	"github.com/alnah/go-uikit/internal/fileutil"
	"github.com/alnah/go-uikit/internal/hints"
)

// Exit codes for the uikit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Path printed or check passed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or asset path
	ExitIO      = 3 // Resource root or stylesheet not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, uikit.ErrInvalidAssetPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, uikit.ErrResourceNotFound) ||
		errors.Is(err, ErrStylesheetMissing) ||
		errors.Is(err, ErrReadStylesheet) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var loadErr *configLoadError
	switch {
	case errors.Is(err, uikit.ErrResourceNotFound):
		return hints.ForResourceNotFound()
	case errors.Is(err, uikit.ErrInvalidAssetPath):
		return hints.ForInvalidAssetPath()
	case errors.Is(err, ErrStylesheetMissing):
		return hints.ForMissingStylesheet()
	case errors.As(err, &loadErr) && errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(loadErr.name) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(loadErr.name))
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	default:
		return ""
	}
}
