package assets

import "errors"

// Sentinel errors for resource lookup.
var (
	// ErrResourceNotFound indicates the resource root of a package could not be located.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidPackageName indicates the package name contains path separators,
	// dots, or is empty.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrUnsafeCacheDir indicates a cache directory that another user could
	// have planted or can modify: a symlink, a foreign owner, or group/world
	// write permission.
	ErrUnsafeCacheDir = errors.New("unsafe cache directory")

	// ErrAssetRead indicates an I/O error occurred while reading an embedded asset.
	ErrAssetRead = errors.New("failed to read asset")
)
