package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// stubLocator returns a fixed root or error and counts calls.
type stubLocator struct {
	root  string
	err   error
	calls int
}

func (s *stubLocator) Root(string) (string, error) {
	s.calls++
	return s.root, s.err
}

func TestStylesheetPath(t *testing.T) {
	t.Parallel()

	t.Run("joins dist and stylesheet onto root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		got, err := StylesheetPath(&stubLocator{root: root}, DefaultPackage)
		if err != nil {
			t.Fatalf("StylesheetPath() error = %v", err)
		}

		want := filepath.Join(root, "dist", "jinja-ui-kit.min.css")
		if got != want {
			t.Errorf("StylesheetPath() = %q, want %q", got, want)
		}
		if filepath.Base(filepath.Dir(got)) != DistDir {
			t.Errorf("parent segment = %q, want %q", filepath.Base(filepath.Dir(got)), DistDir)
		}
		if filepath.Base(got) != StylesheetFile {
			t.Errorf("final segment = %q, want %q", filepath.Base(got), StylesheetFile)
		}
	})

	t.Run("does not check that the file exists", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		got, err := StylesheetPath(&stubLocator{root: root}, DefaultPackage)
		if err != nil {
			t.Fatalf("StylesheetPath() error = %v", err)
		}

		_, err = os.Open(got)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("os.Open() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("propagates not found unchanged", func(t *testing.T) {
		t.Parallel()

		locErr := fmt.Errorf("%w: corrupted install", ErrResourceNotFound)
		got, err := StylesheetPath(&stubLocator{err: locErr}, DefaultPackage)
		if !errors.Is(err, ErrResourceNotFound) {
			t.Errorf("StylesheetPath() error = %v, want ErrResourceNotFound", err)
		}
		if err != locErr {
			t.Errorf("StylesheetPath() error = %v, want the locator error itself", err)
		}
		if got != "" {
			t.Errorf("StylesheetPath() = %q, want empty path on error", got)
		}
	})

	t.Run("resolves the root on every call", func(t *testing.T) {
		t.Parallel()

		loc := &stubLocator{root: t.TempDir()}
		first, _ := StylesheetPath(loc, DefaultPackage)
		second, _ := StylesheetPath(loc, DefaultPackage)

		if first != second {
			t.Errorf("repeated calls differ: %q vs %q", first, second)
		}
		if loc.calls != 2 {
			t.Errorf("locator calls = %d, want 2", loc.calls)
		}
	})
}
