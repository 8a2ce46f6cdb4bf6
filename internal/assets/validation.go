package assets

import (
	"fmt"
	"strings"
)

// ValidatePackageName checks that a package name is safe to use as a single
// path segment. Returns ErrInvalidPackageName if the name is empty or contains
// path separators, dots, or NUL bytes.
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPackageName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}
