package assets

// ResourceLocator resolves the directory holding a package's bundled files.
// Implementations may use a configured directory, an install tree, embedded
// files, etc.
type ResourceLocator interface {
	// Root returns the resource root for the named package.
	// Returns ErrResourceNotFound if no root can be located.
	// Returns ErrInvalidPackageName if pkg is not a plain name.
	Root(pkg string) (string, error)
}
