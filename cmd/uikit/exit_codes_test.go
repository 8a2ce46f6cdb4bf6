package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	uikit "github.com/alnah/go-uikit"
	"github.com/alnah/go-uikit/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitGeneral},

		{"ErrUsage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"ErrInvalidFormat", ErrInvalidFormat, ExitUsage},
		{"ErrInvalidAssetPath", fmt.Errorf("building resolver: %w", uikit.ErrInvalidAssetPath), ExitUsage},
		{"ErrConfigNotFound", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"ErrConfigParse", config.ErrConfigParse, ExitUsage},
		{"ErrFieldTooLong", config.ErrFieldTooLong, ExitUsage},
		{"ErrInvalidField", config.ErrInvalidField, ExitUsage},

		{"ErrResourceNotFound", uikit.ErrResourceNotFound, ExitIO},
		{"ErrStylesheetMissing", fmt.Errorf("%w: %w", ErrStylesheetMissing, os.ErrNotExist), ExitIO},
		{"ErrReadStylesheet", ErrReadStylesheet, ExitIO},
		{"os.ErrNotExist", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"os.ErrPermission", fmt.Errorf("open: %w", os.ErrPermission), ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.wantCode {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.wantCode)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	notFound := func(name string) error {
		return &configLoadError{name: name, err: fmt.Errorf("%w: %s", config.ErrConfigNotFound, name)}
	}

	tests := []struct {
		name     string
		err      error
		wantHint bool
		wantText string
	}{
		{"invalid asset path", uikit.ErrInvalidAssetPath, true, "--asset-path"},
		{"stylesheet missing", ErrStylesheetMissing, true, "reinstall"},
		{"config by path", notFound("/etc/uikit.yaml"), true, "--config"},
		{"config by name", notFound("work"), true, "--config"},
		{"bare config error", config.ErrConfigNotFound, true, "--config"},
		{"unrelated", errors.New("boom"), false, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if !tt.wantHint {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hintFor() = %q, want hint prefix", got)
			}
			if !strings.Contains(got, tt.wantText) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.wantText)
			}
		})
	}
}

func TestHintFor_ConfigSearchPaths(t *testing.T) {
	t.Parallel()

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}

	err = &configLoadError{name: "work", err: config.ErrConfigNotFound}
	got := hintFor(fmt.Errorf("path: %w", err))

	want := filepath.Join(userConfigDir, "go-uikit", "work.yaml")
	if !strings.Contains(got, want) {
		t.Errorf("hintFor() = %q, want it to suggest %q", got, want)
	}
}

func TestConfigLoadError(t *testing.T) {
	t.Parallel()

	err := &configLoadError{name: "work", err: fmt.Errorf("%w: work", config.ErrConfigParse)}

	if !errors.Is(err, config.ErrConfigParse) {
		t.Error("configLoadError should unwrap to the load error")
	}
	if got := err.Error(); got != "loading config: failed to parse config: work" {
		t.Errorf("Error() = %q", got)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exitCodeFor() = %d, want %d", exitCodeFor(err), ExitUsage)
	}
}
