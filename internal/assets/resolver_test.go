package assets

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// namedLocator is a stubLocator with a fixed name.
type namedLocator struct {
	stubLocator
	name string
}

func (n *namedLocator) String() string { return n.name }

func notFound(name string) *namedLocator {
	return &namedLocator{
		stubLocator: stubLocator{err: fmt.Errorf("%w: %s", ErrResourceNotFound, name)},
		name:        name,
	}
}

func found(name, root string) *namedLocator {
	return &namedLocator{stubLocator: stubLocator{root: root}, name: name}
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses defaults only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver("", t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLocator() {
			t.Error("expected no custom locator for empty path")
		}
		if len(resolver.defaults) != 2 {
			t.Errorf("len(defaults) = %d, want 2", len(resolver.defaults))
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir(), "")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !resolver.HasCustomLocator() {
			t.Error("expected custom locator for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver("/nonexistent/path/abc123xyz", "")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_Locate_CustomFirst(t *testing.T) {
	t.Parallel()

	customDir := t.TempDir()
	resolver, err := NewResolver(customDir, t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	loc, err := resolver.Locate(DefaultPackage)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if loc.Source != "dir" {
		t.Errorf("Source = %q, want %q", loc.Source, "dir")
	}
	custom := resolver.custom.(*DirLocator)
	if loc.Root != custom.BasePath() {
		t.Errorf("Root = %q, want %q", loc.Root, custom.BasePath())
	}
}

func TestResolver_Locate_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	// The test binary has no install tree next to it, so the executable
	// locator reports not found and the embedded locator answers.
	resolver, err := NewResolver("", t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	loc, err := resolver.Locate(DefaultPackage)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if loc.Source != "embedded" {
		t.Errorf("Source = %q, want %q", loc.Source, "embedded")
	}
}

func TestResolver_Chain(t *testing.T) {
	t.Parallel()

	t.Run("first found wins", func(t *testing.T) {
		t.Parallel()

		second := found("second", "/b")
		third := found("third", "/c")
		resolver := NewChainResolver(nil, notFound("first"), second, third)

		loc, err := resolver.Locate(DefaultPackage)
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if loc.Root != "/b" || loc.Source != "second" {
			t.Errorf("Locate() = %+v, want /b from second", loc)
		}
		if third.calls != 0 {
			t.Errorf("third locator called %d times, want 0", third.calls)
		}
	})

	t.Run("custom overrides defaults", func(t *testing.T) {
		t.Parallel()

		resolver := NewChainResolver(found("custom", "/custom"), found("default", "/default"))
		got, err := resolver.Root(DefaultPackage)
		if err != nil {
			t.Fatalf("Root() error = %v", err)
		}
		if got != "/custom" {
			t.Errorf("Root() = %q, want /custom", got)
		}
	})

	t.Run("all not found joins errors", func(t *testing.T) {
		t.Parallel()

		resolver := NewChainResolver(notFound("custom"), notFound("executable"), notFound("embedded"))
		got, err := resolver.Root(DefaultPackage)
		if !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("Root() error = %v, want ErrResourceNotFound", err)
		}
		if got != "" {
			t.Errorf("Root() = %q, want empty", got)
		}
		for _, name := range []string{"custom", "executable", "embedded"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q should mention %q", err, name)
			}
		}
	})

	t.Run("other errors are not fallen back", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("permission denied")
		fallback := found("fallback", "/fallback")
		resolver := NewChainResolver(&namedLocator{stubLocator: stubLocator{err: boom}, name: "custom"}, fallback)

		_, err := resolver.Root(DefaultPackage)
		if !errors.Is(err, boom) {
			t.Errorf("Root() error = %v, want %v", err, boom)
		}
		if fallback.calls != 0 {
			t.Errorf("fallback called %d times, want 0", fallback.calls)
		}
	})

	t.Run("empty chain is not found", func(t *testing.T) {
		t.Parallel()

		_, err := NewChainResolver(nil).Root(DefaultPackage)
		if !errors.Is(err, ErrResourceNotFound) {
			t.Errorf("Root() error = %v, want ErrResourceNotFound", err)
		}
	})

	t.Run("validation error stops before any locator", func(t *testing.T) {
		t.Parallel()

		first := found("first", "/a")
		_, err := NewChainResolver(nil, first).Root("../secret")
		if !errors.Is(err, ErrInvalidPackageName) {
			t.Errorf("Root() error = %v, want ErrInvalidPackageName", err)
		}
		if first.calls != 0 {
			t.Errorf("locator called %d times, want 0", first.calls)
		}
	})
}

func TestLocatorName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  ResourceLocator
		want string
	}{
		{"stringer", found("custom", "/"), "custom"},
		{"embedded", NewEmbeddedLocator(""), "embedded"},
		{"plain type", &stubLocator{}, "*assets.stubLocator"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := locatorName(tt.loc); got != tt.want {
				t.Errorf("locatorName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrResourceNotFound", ErrResourceNotFound, true},
		{"wrapped ErrResourceNotFound", fmt.Errorf("%w: x", ErrResourceNotFound), true},
		{"joined ErrResourceNotFound", errors.Join(errors.New("a"), ErrResourceNotFound), true},
		{"ErrInvalidPackageName", ErrInvalidPackageName, false},
		{"ErrInvalidBasePath", ErrInvalidBasePath, false},
		{"generic error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isNotFoundError(tt.err); got != tt.want {
				t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
