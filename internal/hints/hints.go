// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-uikit/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForResourceNotFound returns hints for an unresolvable resource root.
// In containers the user cache dir is often read-only, so a writable cache
// directory is suggested there.
func ForResourceNotFound() string {
	var hints []string

	if os.Getenv("UIKIT_ASSET_PATH") == "" {
		hints = append(hints, "set UIKIT_ASSET_PATH or --asset-path to the directory containing dist/")
	}

	if IsInContainer() && os.Getenv("UIKIT_CACHE_DIR") == "" {
		hints = append(hints, "set UIKIT_CACHE_DIR to a writable directory in containers")
	}

	return formatHints(hints)
}

// ForInvalidAssetPath returns a hint for a configured base path that is not a directory.
func ForInvalidAssetPath() string {
	return format("--asset-path must be an existing directory that contains dist/")
}

// ForMissingStylesheet returns a hint for a resolved path whose file is absent.
func ForMissingStylesheet() string {
	return format("the resource root was found but has no stylesheet; reinstall the package or rebuild dist/")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-uikit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-uikit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
