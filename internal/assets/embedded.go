package assets

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/alnah/go-uikit/internal/fileutil"
)

//go:embed dist
var dist embed.FS

// File permission constants for materialized files.
const (
	dirPermissions        = 0o750 // rwxr-x---
	privateDirPermissions = 0o700 // rwx------
	filePermissions       = 0o644 // rw-r--r--
)

// cacheNamespace is the directory under the user cache dir holding materialized roots.
const cacheNamespace = "go-uikit"

// digestLength is the number of hex characters of the content digest used in
// the materialized root name.
const digestLength = 12

// EmbeddedLocator serves the files compiled into the binary. Embedded files
// have no path of their own, so Root writes them once into a content-addressed
// cache directory and returns that directory. Implements ResourceLocator interface.
type EmbeddedLocator struct {
	cacheDir string // empty = user cache dir
}

// NewEmbeddedLocator creates an EmbeddedLocator that materializes into cacheDir.
// If cacheDir is empty, {user cache dir}/go-uikit is used, falling back to a
// per-user directory in the system temp dir when no user cache dir is
// available. The fallback must be private to the current user.
func NewEmbeddedLocator(cacheDir string) *EmbeddedLocator {
	return &EmbeddedLocator{cacheDir: cacheDir}
}

// Root returns {cache}/{pkg}-{digest}, writing the embedded dist tree there if
// it is missing or stale. Concurrent callers may both write; each file is
// replaced atomically so readers always see complete content.
// Returns ErrResourceNotFound if pkg is not embedded or materialization fails.
func (e *EmbeddedLocator) Root(pkg string) (string, error) {
	if err := ValidatePackageName(pkg); err != nil {
		return "", err
	}
	if pkg != DefaultPackage {
		return "", fmt.Errorf("%w: %s: not embedded in this binary", ErrResourceNotFound, pkg)
	}

	digest, err := distDigest()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, pkg, err)
	}

	base, shared := e.baseDir()
	if shared {
		if err := ensurePrivateDir(base); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, pkg, err)
		}
	}

	root := filepath.Join(base, pkg+"-"+digest)
	if err := checkExistingRoot(root); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResourceNotFound, pkg, err)
	}
	if err := materialize(root); err != nil {
		return "", fmt.Errorf("%w: %s: materializing embedded files: %v", ErrResourceNotFound, pkg, err)
	}

	return root, nil
}

// baseDir returns the directory holding materialized roots. shared reports
// the temp dir fallback, which other users can write to.
func (e *EmbeddedLocator) baseDir() (dir string, shared bool) {
	if e.cacheDir != "" {
		if abs, err := filepath.Abs(e.cacheDir); err == nil {
			return abs, false
		}
		return e.cacheDir, false
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, cacheNamespace), false
	}
	return filepath.Join(os.TempDir(), tempCacheName()), true
}

// ensurePrivateDir creates dir with owner-only permissions, or verifies that
// an existing dir is a real directory private to the current user.
func ensurePrivateDir(dir string) error {
	if err := os.Mkdir(dir, privateDirPermissions); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return verifyPrivateDir(dir)
}

// checkExistingRoot refuses a materialized root that was not created by the
// current user. A missing root is fine: materialize creates it.
func checkExistingRoot(root string) error {
	if _, err := os.Lstat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return verifyPrivateDir(root)
}

// verifyPrivateDir checks dir without following symlinks.
func verifyPrivateDir(dir string) error {
	info, err := os.Lstat(dir)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s is a symlink", ErrUnsafeCacheDir, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrUnsafeCacheDir, dir)
	}
	if !ownedByCurrentUser(info) {
		return fmt.Errorf("%w: %s is owned by another user", ErrUnsafeCacheDir, dir)
	}
	if !writableOnlyByOwner(info) {
		return fmt.Errorf("%w: %s is writable by group or others", ErrUnsafeCacheDir, dir)
	}
	return nil
}

func (e *EmbeddedLocator) String() string {
	return "embedded"
}

// Stylesheet returns the embedded stylesheet content.
func Stylesheet() ([]byte, error) {
	content, err := dist.ReadFile(path.Join(DistDir, StylesheetFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// distDigest hashes every embedded file name and content under DistDir.
func distDigest() (string, error) {
	h := sha256.New()
	err := fs.WalkDir(dist, DistDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := dist.ReadFile(p)
		if err != nil {
			return err
		}
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write(content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return hex.EncodeToString(h.Sum(nil))[:digestLength], nil
}

// materialize mirrors the embedded DistDir tree under root. Files already
// present with identical content are left untouched.
func materialize(root string) error {
	return fs.WalkDir(dist, DistDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(root, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, dirPermissions)
		}

		content, err := dist.ReadFile(p)
		if err != nil {
			return err
		}

		existing, err := os.ReadFile(target) // #nosec G304 -- target built from embedded names
		if err == nil && bytes.Equal(existing, content) {
			return nil
		}

		return fileutil.WriteFileAtomic(target, content, filePermissions)
	})
}

// Compile-time interface check.
var _ ResourceLocator = (*EmbeddedLocator)(nil)
