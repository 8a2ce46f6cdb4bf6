package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

var supportedShells = []string{
	string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell),
}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --asset-path
	Short    string   // -c (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // choices for the positional argument, if any
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"format":     {Values: []string{formatText, formatJSON, formatYAML}},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"asset-path": {IsDir: true},
	"cache-dir":  {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the same FlagSets the commands parse with.
func getCommands() []commandDef {
	pathFS, _ := newPathFlagSet(io.Discard)
	catFS, _ := newCatFlagSet(io.Discard)
	doctorFS, _ := newDoctorFlagSet(io.Discard)

	cmds := []commandDef{
		{Name: "path", Desc: "Print the path to the bundled stylesheet", Flags: extractFlagsFromFlagSet(pathFS)},
		{Name: "cat", Desc: "Write the bundled stylesheet to stdout", Flags: extractFlagsFromFlagSet(catFS)},
		{Name: "doctor", Desc: "Check how the stylesheet is resolved", Flags: extractFlagsFromFlagSet(doctorFS)},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script", Args: supportedShells},
	}

	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	for i := range cmds {
		if cmds[i].Name == "help" {
			cmds[i].Args = names
		}
	}
	return cmds
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var buf bytes.Buffer
	cmds := getCommands()

	switch shell {
	case ShellBash:
		generateBash(&buf, cmds)
	case ShellZsh:
		generateZsh(&buf, cmds)
	case ShellFish:
		generateFish(&buf, cmds)
	case ShellPowerShell:
		generatePowerShell(&buf, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func commandNames(cmds []commandDef) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// flagWords lists --long and -s forms of every flag.
func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(b *bytes.Buffer, cmds []commandDef) {
	b.WriteString("# bash completion for uikit\n\n")
	b.WriteString("_uikit_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(b, "    local commands=\"%s\"\n\n", commandNames(cmds))
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"${commands}\" -- \"${cur}\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}

		b.WriteString("        case \"${prev}\" in\n")
		for _, f := range c.Flags {
			if f.Type == flagBool {
				continue
			}
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			fmt.Fprintf(b, "        %s)\n", pattern)
			fmt.Fprintf(b, "            %s\n", bashValueCompletion(f))
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("        esac\n")
		fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", flagWords(c.Flags))
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _uikit_completions uikit\n")
}

func bashValueCompletion(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))", strings.Join(f.Values, " "))
	case flagDir:
		return "COMPREPLY=($(compgen -d -- \"${cur}\"))"
	case flagFile:
		return "COMPREPLY=($(compgen -f -- \"${cur}\"))"
	default:
		return "COMPREPLY=()"
	}
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(b *bytes.Buffer, cmds []commandDef) {
	b.WriteString("#compdef uikit\n\n")
	b.WriteString("_uikit() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"${cmd}\" in\n")

	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(b, "        _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}

		specs := make([]string, 0, len(c.Flags))
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		b.WriteString("        _arguments \\\n            ")
		b.WriteString(strings.Join(specs, " \\\n            "))
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _uikit uikit\n")
}

func zshFlagSpec(f flagDef) string {
	var spec string
	if f.Short != "" {
		spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]", f.Short, f.Long, f.Short, f.Long, zshQuote(f.Desc))
	} else {
		spec = fmt.Sprintf("'--%s[%s]", f.Long, zshQuote(f.Desc))
	}

	switch f.Type {
	case flagBool:
	case flagEnum:
		spec += fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagDir:
		spec += ":directory:_files -/"
	case flagFile:
		spec += fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	default:
		spec += ":value:"
	}
	return spec + "'"
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	var exts []string
	for _, p := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshQuote escapes text for a single-quoted _arguments description.
func zshQuote(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(b *bytes.Buffer, cmds []commandDef) {
	b.WriteString("# fish completion for uikit\n\n")
	b.WriteString("function __fish_uikit_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_uikit_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c uikit -f\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c uikit -n __fish_uikit_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_uikit_using_command %s'", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(b, "complete -c uikit -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c uikit -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += fmt.Sprintf(" -d '%s'", fishQuote(f.Desc))
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -r -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				line += " -r -a '(__fish_complete_directories)'"
			case flagFile:
				line += " -r -F"
			default:
				line += " -r"
			}
			b.WriteString(line + "\n")
		}
	}
}

func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(b *bytes.Buffer, cmds []commandDef) {
	b.WriteString("# PowerShell completion for uikit\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName uikit -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		words := c.Args
		if len(c.Flags) > 0 {
			words = strings.Fields(flagWords(c.Flags))
		}
		quoted := make([]string, 0, len(words))
		for _, w := range words {
			quoted = append(quoted, "'"+w+"'")
		}
		fmt.Fprintf(b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete -ne '')) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $commands[$elements[1]] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	switch len(args) {
	case 0:
		printCompletionUsage(env.Stdout)
		return nil
	case 1:
		return GenerateCompletion(env.Stdout, Shell(args[0]))
	default:
		return fmt.Errorf("%w: completion takes one shell, got %q", ErrUsage, args)
	}
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: uikit completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(uikit completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(uikit completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    uikit completion fish > ~/.config/fish/completions/uikit.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    uikit completion powershell | Out-String | Invoke-Expression")
}
