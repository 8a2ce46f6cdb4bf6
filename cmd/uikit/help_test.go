package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"no args", nil, ExitSuccess, "Usage: uikit <command>"},
		{"path", []string{"path"}, ExitSuccess, "Usage: uikit path"},
		{"cat", []string{"cat"}, ExitSuccess, "Usage: uikit cat"},
		{"doctor", []string{"doctor"}, ExitSuccess, "--format"},
		{"version", []string{"version"}, ExitSuccess, "Usage: uikit version"},
		{"help", []string{"help"}, ExitSuccess, "Usage: uikit help"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(nil)
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantOut)
			}
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv(nil)
		if code := runHelp([]string{"render"}, env); code != ExitUsage {
			t.Errorf("runHelp() = %d, want %d", code, ExitUsage)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout)
		}
		if !strings.Contains(stderr.String(), "Unknown command: render") {
			t.Errorf("stderr = %q, want unknown command", stderr)
		}
	})
}
