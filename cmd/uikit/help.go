package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uikit <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  path       Print the path to the bundled stylesheet")
	fmt.Fprintln(w, "  cat        Write the bundled stylesheet to stdout")
	fmt.Fprintln(w, "  doctor     Check how the stylesheet is resolved")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'uikit help <command>' for details on a specific command.")
}

// printLookupFlags prints the flags shared by every lookup command.
func printLookupFlags(w io.Writer) {
	fmt.Fprintln(w, "Lookup:")
	fmt.Fprintln(w, "      --asset-path <dir>    Installed resource root (contains dist/)")
	fmt.Fprintln(w, "      --cache-dir <dir>     Where embedded files are written")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -v, --verbose             Show the resolved root and locator on stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  UIKIT_ASSET_PATH          Same as --asset-path")
	fmt.Fprintln(w, "  UIKIT_CACHE_DIR           Same as --cache-dir")
	fmt.Fprintln(w, "  UIKIT_CONFIG              Same as --config")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults")
}

// printPathUsage prints usage for the path command.
func printPathUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uikit path [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the absolute path to dist/jinja-ui-kit.min.css under the")
	fmt.Fprintln(w, "resource root. The file is not opened unless --check is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check:")
	fmt.Fprintln(w, "      --check               Exit 3 if the stylesheet file does not exist")
	fmt.Fprintln(w)
	printLookupFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 2 usage or config, 3 not found")
}

// printCatUsage prints usage for the cat command.
func printCatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uikit cat [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the stylesheet found at the resolved path to stdout.")
	fmt.Fprintln(w)
	printLookupFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uikit doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve the stylesheet and report where it came from.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, json, yaml")
	fmt.Fprintln(w, "      --json                Same as --format json")
	fmt.Fprintln(w)
	printLookupFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ready (warnings allowed), 1 errors found")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "path":
		printPathUsage(env.Stdout)
	case "cat":
		printCatUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: uikit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: uikit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
