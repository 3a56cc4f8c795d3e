package flagparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulschiretz/pgl-tosc/pkg/buildinfo"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

// InputKey is the flagMap key holding the positional input path.
const InputKey = "input"

// cliFlags holds pointers to all possible command-line flags.
// Fields are pointers so we can distinguish between "not registered for this command" (nil)
// and "registered but not set by user" (non-nil pointer to zero value).
type cliFlags struct {
	// Global
	LogLevel *string
	Metrics  *bool
	Quiet    *bool

	// Shared: ExtractXML / MakeTosc
	OutputPath *string
	Force      *bool

	// ExtractXML specific
	PrettyXML *bool

	// MakeTosc specific
	ShrinkXML        *bool
	CompressionLevel *string
}

// flagAliases maps a short flag name onto its canonical long name.
var flagAliases = map[string]string{
	"o": "output-path",
	"f": "force",
	"p": "pretty-xml",
	"s": "shrink-xml",
	"q": "quiet",
}

func registerGlobalFlags(fs *flag.FlagSet, f *cliFlags) {
	f.LogLevel = fs.String("log-level", "info", "Set the logging level: 'debug', 'notice', 'info', 'warn', 'error'.")
	f.Metrics = fs.Bool("metrics", false, "Log byte counts and the compression ratio after the run.")

	f.Quiet = new(bool)
	fs.BoolVar(f.Quiet, "quiet", false, "Suppress informational output. Warnings and errors are still printed.")
	fs.BoolVar(f.Quiet, "q", false, "Shorthand for -quiet.")
}

func registerOutputFlags(fs *flag.FlagSet, f *cliFlags, defaultDesc string) {
	f.OutputPath = new(string)
	fs.StringVar(f.OutputPath, "output-path", "", "Path of the file to write. "+defaultDesc)
	fs.StringVar(f.OutputPath, "o", "", "Shorthand for -output-path.")

	f.Force = new(bool)
	fs.BoolVar(f.Force, "force", false, "Overwrite the output file if it already exists.")
	fs.BoolVar(f.Force, "f", false, "Shorthand for -force.")
}

func registerExtractFlags(fs *flag.FlagSet, f *cliFlags) {
	registerOutputFlags(fs, f, "(Default: <input>.xml)")

	f.PrettyXML = new(bool)
	fs.BoolVar(f.PrettyXML, "pretty-xml", false, "Re-indent the extracted XML with two spaces per nesting level.")
	fs.BoolVar(f.PrettyXML, "p", false, "Shorthand for -pretty-xml.")
}

func registerPackFlags(fs *flag.FlagSet, f *cliFlags) {
	registerOutputFlags(fs, f, "(Default: <input> with .xml replaced by .tosc)")

	f.ShrinkXML = new(bool)
	fs.BoolVar(f.ShrinkXML, "shrink-xml", false, "Strip whitespace-only text between XML elements before compressing.")
	fs.BoolVar(f.ShrinkXML, "s", false, "Shorthand for -shrink-xml.")

	f.CompressionLevel = fs.String("compression-level", "", "Compression level: 'default', 'fastest', 'better', 'best'.")
}

// Parse parses the provided arguments (usually os.Args[1:]) and returns the action and config map.
func Parse(args []string) (Command, map[string]interface{}, error) {
	return parse(args, os.Stderr)
}

func parse(args []string, output io.Writer) (Command, map[string]interface{}, error) {
	// Handle top-level help
	// If no arguments provided, print help and exit.
	if len(args) == 0 {
		printTopLevelUsage(output)
		return None, nil, nil
	}

	cmdStr := strings.ToLower(args[0])

	if cmdStr == "help" || cmdStr == "-h" || cmdStr == "-help" || cmdStr == "--help" {
		printTopLevelUsage(output)
		return None, nil, nil
	}

	command, err := ParseCommand(cmdStr)
	if err != nil {
		return None, nil, usererr.Wrap(usererr.InvalidArgument, err)
	}

	f := &cliFlags{}
	fs := flag.NewFlagSet(command.String(), flag.ContinueOnError)
	fs.SetOutput(output)

	// Check for subcommand
	switch command {
	case ExtractXML:
		registerGlobalFlags(fs, f)
		registerExtractFlags(fs, f)

		// Custom usage for the subcommand
		fs.Usage = func() {
			printSubcommandUsage(command, "Extract the XML payload of a compressed .tosc container.", fs)
		}

	case MakeTosc:
		registerGlobalFlags(fs, f)
		registerPackFlags(fs, f)

		fs.Usage = func() {
			printSubcommandUsage(command, "Compress an XML layout into a .tosc container.", fs)
		}

	case Version:
		return command, nil, nil

	default:
		return None, nil, fmt.Errorf("unknown command: %s", args[0])
	}

	positional, err := parseInterspersed(fs, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		// Usage was printed by the flag set.
		return None, nil, nil
	}
	if err != nil {
		return command, nil, usererr.Wrap(usererr.InvalidArgument, err)
	}
	if len(positional) > 1 {
		return command, nil, usererr.New(usererr.InvalidArgument, "too many arguments: expected one input path, got %d", len(positional))
	}

	flagMap, err := flagsToMap(fs, f)
	if err != nil {
		return command, nil, err
	}
	if len(positional) == 1 {
		flagMap[InputKey] = positional[0]
	}
	return command, flagMap, nil
}

// parseInterspersed allows flags both before and after positional arguments.
// Everything following a "--" terminator is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// fs.Parse consumed a "--" if it is the token right before rest.
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func flagsToMap(fs *flag.FlagSet, f *cliFlags) (map[string]interface{}, error) {
	// Create a map of the flags that were explicitly set by the user, along with their values.
	// This map is used to selectively override the base configuration.
	usedFlags := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		name := fl.Name
		if long, ok := flagAliases[name]; ok {
			name = long
		}
		usedFlags[name] = true
	})

	flagMap := make(map[string]any)

	addIfUsed(flagMap, usedFlags, "log-level", f.LogLevel)
	addIfUsed(flagMap, usedFlags, "metrics", f.Metrics)
	addIfUsed(flagMap, usedFlags, "quiet", f.Quiet)

	addIfUsed(flagMap, usedFlags, "output-path", f.OutputPath)
	addIfUsed(flagMap, usedFlags, "force", f.Force)
	addIfUsed(flagMap, usedFlags, "pretty-xml", f.PrettyXML)
	addIfUsed(flagMap, usedFlags, "shrink-xml", f.ShrinkXML)
	addIfUsed(flagMap, usedFlags, "compression-level", f.CompressionLevel)

	return flagMap, nil
}

// addIfUsed adds the value of ptr to flagMap if ptr is not nil and the flag was set.
func addIfUsed[T any](flagMap map[string]interface{}, usedFlags map[string]bool, name string, ptr *T) {
	if ptr != nil && usedFlags[name] {
		flagMap[name] = *ptr
	}
}

// printTopLevelUsage prints the main help message.
func printTopLevelUsage(w io.Writer) {

	execName := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "%s(%s) ", buildinfo.Name, buildinfo.Version)
	fmt.Fprintf(w, "Convert TouchOSC .tosc layouts to XML and back.\n\n")
	fmt.Fprintf(w, "Usage: %s <command> <input_path> [flags]\n\n", execName)
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  extract-xml   Extract the XML payload of a .tosc container\n")
	fmt.Fprintf(w, "  make-tosc     Compress an XML layout into a .tosc container\n")
	fmt.Fprintf(w, "  version       Print the application version\n")
	fmt.Fprintf(w, "\nRun '%s <command> -help' for more information on a command.\n", execName)
}

// printSubcommandUsage prints the help message for a specific subcommand.
func printSubcommandUsage(command Command, desc string, fs *flag.FlagSet) {

	execName := filepath.Base(os.Args[0])
	fmt.Fprintf(fs.Output(), "%s(%s) ", buildinfo.Name, buildinfo.Version)
	fmt.Fprintf(fs.Output(), "Convert TouchOSC .tosc layouts to XML and back.\n\n")
	fmt.Fprintf(fs.Output(), "Usage of the %s command: %s %s <input_path> [flags]\n\n", command, execName, command)
	fmt.Fprintf(fs.Output(), "%s\n\n", desc)
	fmt.Fprintf(fs.Output(), "Flags:\n")
	fs.PrintDefaults()
}
