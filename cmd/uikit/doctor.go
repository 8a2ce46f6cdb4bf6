package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	uikit "github.com/alnah/go-uikit"
	"github.com/alnah/go-uikit/internal/hints"
	"github.com/alnah/go-uikit/internal/yamlutil"
	flag "github.com/spf13/pflag"
)

// Output formats for the doctor command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status     string    `json:"status" yaml:"status"` // "ready", "warnings", "errors"
	Stylesheet sheetInfo `json:"stylesheet" yaml:"stylesheet"`
	Env        envInfo   `json:"environment" yaml:"environment"`
	Warnings   []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors     []string  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// sheetInfo holds stylesheet resolution results.
type sheetInfo struct {
	Package         string `json:"package" yaml:"package"`
	Root            string `json:"root,omitempty" yaml:"root,omitempty"`
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
	Path            string `json:"path,omitempty" yaml:"path,omitempty"`
	Exists          bool   `json:"exists" yaml:"exists"`
	Size            int64  `json:"size,omitempty" yaml:"size,omitempty"`
	MatchesEmbedded bool   `json:"matches_embedded" yaml:"matchesEmbedded"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os" yaml:"os"`
	Arch          string `json:"arch" yaml:"arch"`
	Container     bool   `json:"container" yaml:"container"`
	ContainerHint string `json:"container_hint,omitempty" yaml:"containerHint,omitempty"`
	AssetPath     string `json:"uikit_asset_path" yaml:"uikitAssetPath"`
	CacheDir      string `json:"uikit_cache_dir" yaml:"uikitCacheDir"`
	Config        string `json:"uikit_config" yaml:"uikitConfig"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	f, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}

	result := runDoctor(f, env)

	if err := writeDoctorResult(env.Stdout, f.format, result); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(f *doctorFlags, env *Environment) *doctorResult {
	ec := loadEnvConfig(env.Getenv)
	result := &doctorResult{
		Status:     statusReady,
		Stylesheet: sheetInfo{Package: uikit.PackageName},
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			AssetPath: ec.AssetPath,
			CacheDir:  ec.CacheDir,
			Config:    ec.ConfigPath,
		},
	}

	checkStylesheet(result, f, env)
	checkEnvironment(result, env)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkStylesheet resolves the stylesheet and inspects the file.
func checkStylesheet(result *doctorResult, f *doctorFlags, env *Environment) {
	quiet := f.common
	quiet.verbose = false // keep doctor output on stdout only

	loc, err := locate(&quiet, &f.assets, env)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	result.Stylesheet.Root = loc.Root
	result.Stylesheet.Source = loc.Source
	result.Stylesheet.Path = loc.Path

	content, err := os.ReadFile(loc.Path) // #nosec G304 -- path built from a resolved root and fixed segments
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Stylesheet not readable at %s: %v", loc.Path, err))
		return
	}
	result.Stylesheet.Exists = true
	result.Stylesheet.Size = int64(len(content))

	embedded, err := uikit.ReadCSS()
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not read embedded stylesheet: %v", err))
		return
	}
	result.Stylesheet.MatchesEmbedded = bytes.Equal(content, embedded)
	if !result.Stylesheet.MatchesEmbedded {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Stylesheet at %s differs from the one built into uikit %s", loc.Path, Version))
	}
}

// checkEnvironment detects containers and misspelled variables.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env.Getenv)

	if result.Env.Container && result.Env.CacheDir == "" && result.Stylesheet.Source == "embedded" {
		result.Warnings = append(result.Warnings,
			"Container detected and stylesheet served from the user cache. Set UIKIT_CACHE_DIR to a writable volume")
	}

	for _, name := range unknownEnvVars(env.Environ()) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown environment variable %s", name))
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(getenv func(string) string) (bool, string) {
	// Docker
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// writeDoctorResult encodes r in the requested format.
func writeDoctorResult(w io.Writer, format string, r *doctorResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		data, err := yamlutil.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		printDoctorResult(w, r)
		return nil
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "uikit doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Stylesheet")
	fmt.Fprintf(w, "  [OK] Package: %s\n", r.Stylesheet.Package)
	if r.Stylesheet.Root != "" {
		fmt.Fprintf(w, "  [OK] Resource root: %s (%s)\n", r.Stylesheet.Root, r.Stylesheet.Source)
	} else {
		fmt.Fprintln(w, "  [ERROR] Resource root: not found")
	}
	if r.Stylesheet.Exists {
		fmt.Fprintf(w, "  [OK] File: %s (%d bytes)\n", r.Stylesheet.Path, r.Stylesheet.Size)
	} else if r.Stylesheet.Path != "" {
		fmt.Fprintf(w, "  [ERROR] File: %s missing\n", r.Stylesheet.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.AssetPath != "" {
		fmt.Fprintf(w, "  [OK] UIKIT_ASSET_PATH=%s\n", r.Env.AssetPath)
	}
	if r.Env.CacheDir != "" {
		fmt.Fprintf(w, "  [OK] UIKIT_CACHE_DIR=%s\n", r.Env.CacheDir)
	}
	if r.Env.Config != "" {
		fmt.Fprintf(w, "  [OK] UIKIT_CONFIG=%s\n", r.Env.Config)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	default:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
