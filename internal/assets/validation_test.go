package assets

import (
	"errors"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"default package", "jinja_ui_kit", false},
		{"hyphenated name", "jinja-ui-kit", false},
		{"single letter", "a", false},
		{"empty name", "", true},
		{"forward slash", "jinja/ui", true},
		{"backslash", "jinja\\ui", true},
		{"parent traversal", "..", true},
		{"dotted subpackage", "jinja_ui_kit.dist", true},
		{"nul byte", "jinja\x00kit", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePackageName(tt.pkg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPackageName) {
					t.Errorf("ValidatePackageName(%q) error = %v, want ErrInvalidPackageName", tt.pkg, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidatePackageName(%q) unexpected error: %v", tt.pkg, err)
			}
		})
	}
}
