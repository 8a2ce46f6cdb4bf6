package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-uikit/internal/fileutil"
)

// ExecutableLocator finds the resource root in an install tree next to the
// running binary. Implements ResourceLocator interface.
//
// Candidates, in order:
//
//	{exe dir}/../share/{pkg}   # FHS-style install (bin/ + share/)
//	{exe dir}/{pkg}            # flat archive install
type ExecutableLocator struct {
	executable func() (string, error)
}

// NewExecutableLocator creates an ExecutableLocator for the running process.
func NewExecutableLocator() *ExecutableLocator {
	return &ExecutableLocator{executable: os.Executable}
}

// Root returns the first candidate directory that exists.
// Returns ErrResourceNotFound if the executable cannot be located or no
// candidate exists.
func (e *ExecutableLocator) Root(pkg string) (string, error) {
	if err := ValidatePackageName(pkg); err != nil {
		return "", err
	}

	exe, err := e.executable()
	if err != nil {
		return "", fmt.Errorf("%w: %s: locating executable: %v", ErrResourceNotFound, pkg, err)
	}
	if realPath, err := filepath.EvalSymlinks(exe); err == nil {
		exe = realPath
	}

	candidates := installCandidates(filepath.Dir(exe), pkg)
	for _, dir := range candidates {
		if fileutil.DirExists(dir) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("%w: %s: tried %s", ErrResourceNotFound, pkg, strings.Join(candidates, ", "))
}

// installCandidates lists the directories that may hold pkg relative to exeDir.
func installCandidates(exeDir, pkg string) []string {
	return []string{
		filepath.Join(exeDir, "..", "share", pkg),
		filepath.Join(exeDir, pkg),
	}
}

func (e *ExecutableLocator) String() string {
	return "executable"
}

// Compile-time interface check.
var _ ResourceLocator = (*ExecutableLocator)(nil)
