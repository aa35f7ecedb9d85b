package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/generator"
	"github.com/erraggy/casetools/internal/mcpserver"
	"github.com/erraggy/casetools/recase"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "detect":
		if err := handleDetect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "keys":
		if err := handleKeys(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "gen":
		if err := handleGen(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	target string
	all    bool
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.target, "t", "camel", "target convention (camel, pascal, snake, kebab, dot, constant, train, title)")
	fs.BoolVar(&flags.all, "all", false, "print the text in every convention")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools convert [flags] [text ...]\n\n")
		_, _ = fmt.Fprintf(output, "Converts each text argument (or each stdin line when no arguments\nare given) to the target case convention.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	inputs, err := argsOrStdin(fs.Args())
	if err != nil {
		return err
	}

	if flags.all {
		for _, input := range inputs {
			for _, c := range caser.Conventions() {
				fmt.Printf("%-8s %s\n", c.String()+":", c.ConvertString(input))
			}
		}
		return nil
	}

	conv, err := caser.ParseConvention(flags.target)
	if err != nil {
		return err
	}
	for _, input := range inputs {
		fmt.Println(conv.ConvertString(input))
	}
	return nil
}

func handleDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools detect [text ...]\n\n")
		_, _ = fmt.Fprintf(output, "Reports the case convention each text argument (or each stdin line\nwhen no arguments are given) most resembles.\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	inputs, err := argsOrStdin(fs.Args())
	if err != nil {
		return err
	}

	for _, input := range inputs {
		conv := caser.Detect(input)
		name := conv.String()
		if name == "" {
			name = "unknown"
		}
		fmt.Printf("%-9s %s\n", name, input)
	}
	return nil
}

// keysFlags contains flags for the keys command
type keysFlags struct {
	target string
	output string
	skip   string
}

func setupKeysFlags() (*flag.FlagSet, *keysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	flags := &keysFlags{}

	fs.StringVar(&flags.target, "t", "", "target convention for mapping keys (required)")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.skip, "skip", "", "comma-separated keys to leave untouched")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools keys -t <convention> [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Re-cases every mapping key of a YAML or JSON document.\nUse '-' as the file to read from stdin.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleKeys(args []string) error {
	fs, flags := setupKeysFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.target == "" {
		fs.Usage()
		return fmt.Errorf("keys command requires -t <convention>")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("keys command requires exactly one file path (or '-' for stdin)")
	}

	conv, err := caser.ParseConvention(flags.target)
	if err != nil {
		return err
	}

	var data []byte
	if path := fs.Arg(0); path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	}

	var opts []recase.Option
	if flags.skip != "" {
		opts = append(opts, recase.WithSkipKeys(strings.Split(flags.skip, ",")...))
	}

	result, err := recase.Keys(data, conv, opts...)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, result, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Re-cased document written to %s\n", flags.output)
		return nil
	}
	_, err = os.Stdout.Write(result)
	return err
}

// genFlags contains flags for the gen command
type genFlags struct {
	packageName string
	target      string
	prefix      string
	output      string
}

func setupGenFlags() (*flag.FlagSet, *genFlags) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	flags := &genFlags{}

	fs.StringVar(&flags.packageName, "pkg", "names", "package clause of the generated file")
	fs.StringVar(&flags.target, "t", "snake", "convention constant values are emitted in")
	fs.StringVar(&flags.prefix, "prefix", "", "prefix for every generated identifier")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: casetools gen [flags] [name ...]\n\n")
		_, _ = fmt.Fprintf(output, "Generates a Go source file declaring one string constant per name\n(or per stdin line when no arguments are given).\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

func handleGen(args []string) error {
	fs, flags := setupGenFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	names, err := argsOrStdin(fs.Args())
	if err != nil {
		return err
	}

	conv, err := caser.ParseConvention(flags.target)
	if err != nil {
		return err
	}

	src, err := generator.Generate(names,
		generator.WithPackageName(flags.packageName),
		generator.WithConvention(conv),
		generator.WithConstPrefix(flags.prefix),
	)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, src, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Generated source written to %s\n", flags.output)
		return nil
	}
	_, err = os.Stdout.Write(src)
	return err
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// argsOrStdin returns the positional arguments, falling back to reading
// one input per stdin line when none are given.
func argsOrStdin(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input provided")
	}
	return inputs, nil
}

// commands lists every top-level command for typo suggestions.
var commands = []string{"convert", "detect", "keys", "gen", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`casetools - Case Convention Tools

Usage:
  casetools <command> [options]

Commands:
  convert     Convert text to a target case convention
  detect      Detect the case convention of text
  keys        Re-case the mapping keys of a YAML or JSON document
  gen         Generate Go constants from identifier names
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  casetools convert -t snake myVariableName
  casetools convert -all "first name"
  casetools detect already-kebab-case
  casetools keys -t camel -o recased.yaml config.yaml
  casetools gen -pkg fields -t snake "user id" "screen name"

Run 'casetools <command> --help' for more information on a command.`)
}
