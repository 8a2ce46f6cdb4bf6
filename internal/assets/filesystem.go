package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLocator treats a directory on the filesystem as the resource root.
// Implements ResourceLocator interface.
type DirLocator struct {
	basePath string
}

// NewDirLocator creates a DirLocator for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewDirLocator(basePath string) (*DirLocator, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks so the reported root is the real location
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &DirLocator{basePath: absPath}, nil
}

// Root returns the base path. The package name is validated but does not
// select a subdirectory: the base path is the package's root.
// Returns ErrResourceNotFound if the directory has gone away since construction.
func (d *DirLocator) Root(pkg string) (string, error) {
	if err := ValidatePackageName(pkg); err != nil {
		return "", err
	}

	info, err := os.Stat(d.basePath)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s: directory %s is unavailable", ErrResourceNotFound, pkg, d.basePath)
	}

	return d.basePath, nil
}

// BasePath returns the resolved absolute base path.
func (d *DirLocator) BasePath() string {
	return d.basePath
}

func (d *DirLocator) String() string {
	return "dir"
}

// Compile-time interface check.
var _ ResourceLocator = (*DirLocator)(nil)
