package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	verbose bool
}

// assetFlags holds resource lookup flags.
type assetFlags struct {
	assetPath string
	cacheDir  string
}

// pathFlags holds all flags for the path command.
type pathFlags struct {
	common commonFlags
	assets assetFlags
	check  bool
}

// catFlags holds all flags for the cat command.
type catFlags struct {
	common commonFlags
	assets assetFlags
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	assets assetFlags
	format string
	json   bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show the resolved root and locator")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "installed resource root (contains dist/)")
	fs.StringVar(&f.cacheDir, "cache-dir", "", "where embedded files are written")
}

// newFlagSet creates a pflag set that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs parses args and rejects positional arguments.
// flag.ErrHelp is returned unwrapped so callers can exit cleanly.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, fs.Name(), fs.Args())
	}
	return nil
}

// newPathFlagSet registers the path command flags.
// Shared by parsing and shell completion.
func newPathFlagSet(w io.Writer) (*flag.FlagSet, *pathFlags) {
	f := &pathFlags{}
	fs := newFlagSet("path", w, printPathUsage)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	fs.BoolVar(&f.check, "check", false, "fail if the stylesheet file does not exist")
	return fs, f
}

func newCatFlagSet(w io.Writer) (*flag.FlagSet, *catFlags) {
	f := &catFlags{}
	fs := newFlagSet("cat", w, printCatUsage)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	return fs, f
}

func newDoctorFlagSet(w io.Writer) (*flag.FlagSet, *doctorFlags) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor", w, printDoctorUsage)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json, yaml")
	fs.BoolVar(&f.json, "json", false, "shorthand for --format json")
	return fs, f
}

func parsePathFlags(args []string, w io.Writer) (*pathFlags, error) {
	fs, f := newPathFlagSet(w)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseCatFlags(args []string, w io.Writer) (*catFlags, error) {
	fs, f := newCatFlagSet(w)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, error) {
	fs, f := newDoctorFlagSet(w)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	if f.json {
		f.format = formatJSON
	}
	switch f.format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, f.format)
	}
	return f, nil
}
