package uikit

import (
	"errors"

	"github.com/alnah/go-uikit/internal/assets"
)

// Layout constants. Downstream consumers rely on the stylesheet living at
// {resource root}/DistDir/StylesheetFile.
const (
	// PackageName identifies the package whose resource root is resolved.
	PackageName = assets.DefaultPackage

	// DistDir is the distribution subdirectory under the resource root.
	DistDir = assets.DistDir

	// StylesheetFile is the minified stylesheet inside DistDir.
	StylesheetFile = assets.StylesheetFile
)

// ResourceLocator resolves the resource root of a package.
//
// The library resolves roots from a configured directory, an install tree
// next to the executable, or embedded files. Implement this interface for
// other layouts.
type ResourceLocator interface {
	// Root returns the resource root directory for pkg.
	// Return an error wrapping ErrResourceNotFound if it cannot be located.
	Root(pkg string) (string, error)
}

// Location describes a resolved stylesheet.
type Location struct {
	Root   string // Resource root directory
	Path   string // Root joined with DistDir and StylesheetFile
	Source string // Which locator answered: "dir", "executable", "embedded"
}

// Option configures a Resolver.
type Option func(*resolverConfig)

// resolverConfig holds internal configuration for Resolver.
type resolverConfig struct {
	assetPath string
	cacheDir  string
}

// WithAssetPath sets an installation directory tried before the defaults.
// The directory must contain dist/jinja-ui-kit.min.css for opening the
// resolved path to succeed.
func WithAssetPath(path string) Option {
	return func(c *resolverConfig) {
		c.assetPath = path
	}
}

// WithCacheDir sets where embedded files are written when no installed
// resource root is found. Empty means the user cache directory.
func WithCacheDir(dir string) Option {
	return func(c *resolverConfig) {
		c.cacheDir = dir
	}
}

// Resolver resolves the stylesheet path. It is safe for concurrent use and
// holds no cached result: every call re-resolves the resource root.
type Resolver struct {
	resolver *assets.Resolver
}

// defaultResolver backs the package-level CSSPath.
var defaultResolver = &Resolver{
	resolver: assets.NewChainResolver(nil,
		assets.NewExecutableLocator(),
		assets.NewEmbeddedLocator(""),
	),
}

// NewResolver creates a Resolver.
// Returns ErrInvalidAssetPath if WithAssetPath names something that is not a
// readable directory.
func NewResolver(opts ...Option) (*Resolver, error) {
	var cfg resolverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver, err := assets.NewResolver(cfg.assetPath, cfg.cacheDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &Resolver{resolver: resolver}, nil
}

// CSSPath returns the absolute path to dist/jinja-ui-kit.min.css under the
// resource root. The file's existence is not checked.
// Returns ErrResourceNotFound if no resource root can be located.
func (r *Resolver) CSSPath() (string, error) {
	path, err := assets.StylesheetPath(r.resolver, PackageName)
	if err != nil {
		return "", convertAssetError(err)
	}
	return path, nil
}

// Locate is CSSPath plus the resource root and the locator that produced it.
func (r *Resolver) Locate() (Location, error) {
	loc, err := r.resolver.Locate(PackageName)
	if err != nil {
		return Location{}, convertAssetError(err)
	}
	path, err := assets.StylesheetPath(staticRoot(loc.Root), PackageName)
	if err != nil {
		return Location{}, convertAssetError(err)
	}
	return Location{Root: loc.Root, Path: path, Source: loc.Source}, nil
}

// CSSPath returns the path to the bundled stylesheet using the default
// resolver chain. See Resolver.CSSPath.
func CSSPath() (string, error) {
	return defaultResolver.CSSPath()
}

// CSSPathFrom returns the stylesheet path under the root reported by loc.
// Errors from loc are passed through; wrap ErrResourceNotFound in them to
// keep errors.Is checks working.
func CSSPathFrom(loc ResourceLocator) (string, error) {
	path, err := assets.StylesheetPath(loc, PackageName)
	if err != nil {
		return "", convertAssetError(err)
	}
	return path, nil
}

// ReadCSS returns the stylesheet compiled into this module.
func ReadCSS() ([]byte, error) {
	content, err := assets.Stylesheet()
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// staticRoot is a locator that returns an already resolved root.
type staticRoot string

func (s staticRoot) Root(string) (string, error) { return string(s), nil }

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, assets.ErrResourceNotFound):
		return wrapError(ErrResourceNotFound, err)
	case isError(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case isError(err, assets.ErrInvalidPackageName):
		return wrapError(ErrResourceNotFound, err) // Invalid name means not found
	case isError(err, assets.ErrAssetRead):
		return wrapError(ErrAssetRead, err)
	default:
		return err
	}
}

// isError checks if err wraps or equals target using errors.Is semantics.
func isError(err, target error) bool {
	return errors.Is(err, target)
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
