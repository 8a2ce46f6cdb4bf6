package assets

import (
	"errors"
	"fmt"
)

// Location is a resolved resource root and the locator that produced it.
type Location struct {
	Root   string // Absolute resource root
	Source string // Locator name: "dir", "executable", "embedded"
}

// Resolver combines a custom locator with the default chain.
// When a custom locator is configured it is tried first; the defaults are
// consulted only if it reports ErrResourceNotFound.
type Resolver struct {
	custom   ResourceLocator // nil if no custom path configured
	defaults []ResourceLocator
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only the default chain is used.
// If customBasePath is set, it takes precedence with fallback to the defaults.
// cacheDir is passed to the EmbeddedLocator (empty = user cache dir).
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath, cacheDir string) (*Resolver, error) {
	resolver := &Resolver{
		defaults: []ResourceLocator{
			NewExecutableLocator(),
			NewEmbeddedLocator(cacheDir),
		},
	}

	if customBasePath != "" {
		dirLocator, err := NewDirLocator(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = dirLocator
	}

	return resolver, nil
}

// NewChainResolver creates a Resolver over an explicit list of locators,
// tried in order. custom may be nil.
func NewChainResolver(custom ResourceLocator, defaults ...ResourceLocator) *Resolver {
	return &Resolver{custom: custom, defaults: defaults}
}

// Root returns the resource root for pkg from the first locator that finds it.
func (r *Resolver) Root(pkg string) (string, error) {
	loc, err := r.Locate(pkg)
	if err != nil {
		return "", err
	}
	return loc.Root, nil
}

// Locate is Root plus the name of the locator that answered.
func (r *Resolver) Locate(pkg string) (Location, error) {
	if err := ValidatePackageName(pkg); err != nil {
		return Location{}, err
	}

	chain := r.defaults
	if r.custom != nil {
		chain = append([]ResourceLocator{r.custom}, r.defaults...)
	}
	if len(chain) == 0 {
		return Location{}, fmt.Errorf("%w: %s: no locators configured", ErrResourceNotFound, pkg)
	}

	var notFound []error
	for _, locator := range chain {
		root, err := locator.Root(pkg)
		if err == nil {
			return Location{Root: root, Source: locatorName(locator)}, nil
		}

		// Only fall back for "not found" errors, not validation errors
		if !isNotFoundError(err) {
			return Location{}, err
		}
		notFound = append(notFound, err)
	}

	return Location{}, errors.Join(notFound...)
}

// HasCustomLocator returns true if a custom base path is configured.
func (r *Resolver) HasCustomLocator() bool {
	return r.custom != nil
}

// isNotFoundError checks if the error indicates the resource root was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

func locatorName(l ResourceLocator) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", l)
}

// Compile-time interface check.
var _ ResourceLocator = (*Resolver)(nil)
