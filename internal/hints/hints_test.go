package hints

// Notes:
// - ForResourceNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func TestForResourceNotFound_NothingConfigured(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("UIKIT_ASSET_PATH", "")
	t.Setenv("UIKIT_CACHE_DIR", "")

	hint := ForResourceNotFound()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "UIKIT_ASSET_PATH") {
		t.Error("expected UIKIT_ASSET_PATH suggestion")
	}
	if strings.Contains(hint, "UIKIT_CACHE_DIR") {
		t.Error("did not expect UIKIT_CACHE_DIR suggestion outside containers")
	}
}

func TestForResourceNotFound_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("UIKIT_ASSET_PATH", "")
	t.Setenv("UIKIT_CACHE_DIR", "")

	hint := ForResourceNotFound()

	if !strings.Contains(hint, "UIKIT_CACHE_DIR") {
		t.Error("expected UIKIT_CACHE_DIR suggestion in containers")
	}
	if !strings.Contains(hint, "; ") {
		t.Error("expected hints joined with '; '")
	}
}

func TestForResourceNotFound_AllConfigured(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("UIKIT_ASSET_PATH", "/opt/kit")
	t.Setenv("UIKIT_CACHE_DIR", "/tmp/kit")

	if hint := ForResourceNotFound(); hint != "" {
		t.Errorf("expected no hint, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user path",
			paths:    []string{"foo.yaml", "/home/u/.config/go-uikit/foo.yaml"},
			contains: "create /home/u/.config/go-uikit/foo.yaml",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForInvalidAssetPath(),
		ForMissingStylesheet(),
		ForConfigNotFound(nil),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
