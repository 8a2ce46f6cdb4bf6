package assets

import "path/filepath"

// Layout of the bundled stylesheet relative to a resource root.
const (
	// DefaultPackage is the package whose stylesheet is embedded in this module.
	DefaultPackage = "jinja_ui_kit"

	// DistDir is the distribution subdirectory holding built artifacts.
	DistDir = "dist"

	// StylesheetFile is the minified stylesheet inside DistDir.
	StylesheetFile = "jinja-ui-kit.min.css"
)

// StylesheetPath resolves the root of pkg through loc and joins the fixed
// dist/stylesheet segments onto it. Existence of the file is not checked.
// Errors from loc are returned unchanged.
func StylesheetPath(loc ResourceLocator, pkg string) (string, error) {
	root, err := loc.Root(pkg)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DistDir, StylesheetFile), nil
}
