package uikit

import "errors"

// Sentinel errors for library operations.
var (
	// ErrResourceNotFound indicates the package's resource root could not be
	// located. The stylesheet file itself is never checked.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidAssetPath indicates a configured asset path is not a readable directory.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrAssetRead indicates the embedded stylesheet could not be read.
	ErrAssetRead = errors.New("failed to read asset")
)
