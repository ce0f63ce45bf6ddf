package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/ldecampos/namecraft"
	"github.com/ldecampos/namecraft/casing"
	"github.com/ldecampos/namecraft/cmd/namecraft/commands"
	"github.com/ldecampos/namecraft/internal/mcpserver"
	"github.com/ldecampos/namecraft/internal/stringutil"
	"github.com/ldecampos/namecraft/renamer"
	"github.com/ldecampos/namecraft/sequencer"
	"github.com/ldecampos/namecraft/valuecodec"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("namecraft v%s\n", namecraft.Version())
	case "help", "-h", "--help":
		printUsage()
	case "classify":
		if err := handleClassify(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "case":
		if err := handleCase(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tokens":
		if err := handleTokens(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "increment":
		if err := handleIncrement(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "decrement":
		if err := handleDecrement(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "digits":
		if err := handleDigits(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "value":
		if err := handleValue(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "rename":
		if err := handleRename(os.Args[2:]); err != nil {
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

// classifyFlags contains flags for the classify command
type classifyFlags struct {
	format string
}

func setupClassifyFlags() (*flag.FlagSet, *classifyFlags) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	flags := &classifyFlags{}

	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft classify [flags] <name>... | -\n\n")
		_, _ = fmt.Fprintf(output, "Report the case style of each name.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft classify nameOfVariable\n")
		_, _ = fmt.Fprintf(output, "  namecraft classify --format json left_arm_ctrl LeftArmCtrl\n")
		_, _ = fmt.Fprintf(output, "  ls | namecraft classify -\n")
	}

	return fs, flags
}

func handleClassify(args []string) error {
	fs, flags := setupClassifyFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}

	names, err := commands.ReadNames(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("classify command requires at least one name")
	}

	type classification struct {
		Name  string       `json:"name" yaml:"name"`
		Style casing.Style `json:"style" yaml:"style"`
	}
	results := make([]classification, 0, len(names))
	for _, name := range names {
		results = append(results, classification{Name: name, Style: casing.Classify(name)})
	}

	if flags.format == commands.FormatText {
		for _, r := range results {
			fmt.Printf("%s: %s\n", r.Name, r.Style)
		}
		return nil
	}
	return commands.OutputStructured(results, flags.format)
}

// caseFlags contains flags for the case command
type caseFlags struct {
	to          string
	stripDigits bool
	format      string
}

func setupCaseFlags() (*flag.FlagSet, *caseFlags) {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	flags := &caseFlags{}

	fs.StringVar(&flags.to, "to", "", "target case style: camelCase, PascalCase, snake_case, or kebab-case")
	fs.BoolVar(&flags.stripDigits, "strip-digits", false, "remove digit runs from the converted name")
	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft case --to <style> [flags] <name>... | -\n\n")
		_, _ = fmt.Fprintf(output, "Convert names to a case style.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft case --to snake_case nameOfVariable\n")
		_, _ = fmt.Fprintf(output, "  namecraft case --to camelCase --strip-digits name-of-variable_32\n")
	}

	return fs, flags
}

func handleCase(args []string) error {
	fs, flags := setupCaseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if flags.to == "" {
		fs.Usage()
		return fmt.Errorf("case command requires --to")
	}

	names, err := commands.ReadNames(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("case command requires at least one name")
	}

	var opts []casing.Option
	if flags.stripDigits {
		opts = append(opts, casing.StripDigits())
	}

	type conversion struct {
		Name      string `json:"name" yaml:"name"`
		Converted string `json:"converted" yaml:"converted"`
	}
	results := make([]conversion, 0, len(names))
	for _, name := range names {
		converted, err := casing.Convert(name, casing.Style(flags.to), opts...)
		if err != nil {
			return err
		}
		results = append(results, conversion{Name: name, Converted: converted})
	}

	if flags.format == commands.FormatText {
		for _, r := range results {
			fmt.Println(r.Converted)
		}
		return nil
	}
	return commands.OutputStructured(results, flags.format)
}

// tokensFlags contains flags for the tokens command
type tokensFlags struct {
	format string
}

func setupTokensFlags() (*flag.FlagSet, *tokensFlags) {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	flags := &tokensFlags{}

	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft tokens [flags] <name>\n\n")
		_, _ = fmt.Fprintf(output, "Split a name into its word tokens.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft tokens Another_Example-Here99\n")
	}

	return fs, flags
}

func handleTokens(args []string) error {
	fs, flags := setupTokensFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tokens command requires exactly one name")
	}

	tokens := casing.Tokenize(fs.Arg(0))

	if flags.format == commands.FormatText {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	}
	return commands.OutputStructured(tokens, flags.format)
}

// incrementFlags contains flags for the increment command
type incrementFlags struct {
	letters bool
	pad     int
}

func setupIncrementFlags() (*flag.FlagSet, *incrementFlags) {
	fs := flag.NewFlagSet("increment", flag.ContinueOnError)
	flags := &incrementFlags{}

	fs.BoolVar(&flags.letters, "letters", false, "step the name as a base-26 letter sequence instead of digits")
	fs.IntVar(&flags.pad, "pad", 0, "zero-fill width for the digit run (default 2)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft increment [flags] <name>... | -\n\n")
		_, _ = fmt.Fprintf(output, "Increment each name's trailing digit run, or its letter sequence with --letters.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft increment arm_ctrl_01\n")
		_, _ = fmt.Fprintf(output, "  namecraft increment --pad 5 file4567\n")
		_, _ = fmt.Fprintf(output, "  namecraft increment --letters AZ\n")
	}

	return fs, flags
}

func handleIncrement(args []string) error {
	fs, flags := setupIncrementFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	names, err := commands.ReadNames(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("increment command requires at least one name")
	}

	for _, name := range names {
		if flags.letters {
			if !stringutil.IsLetters(name) {
				return fmt.Errorf("--letters requires letter-only names, got %q", name)
			}
			fmt.Println(sequencer.IncrementLetters(name))
		} else {
			fmt.Println(sequencer.IncrementDigits(name, flags.pad))
		}
	}
	return nil
}

// decrementFlags contains flags for the decrement command
type decrementFlags struct {
	letters bool
}

func setupDecrementFlags() (*flag.FlagSet, *decrementFlags) {
	fs := flag.NewFlagSet("decrement", flag.ContinueOnError)
	flags := &decrementFlags{}

	fs.BoolVar(&flags.letters, "letters", false, "step the name as a base-26 letter sequence instead of digits")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft decrement [flags] <name>... | -\n\n")
		_, _ = fmt.Fprintf(output, "Decrement each name's trailing digit run, or its letter sequence with --letters.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft decrement item123\n")
		_, _ = fmt.Fprintf(output, "  namecraft decrement --letters AA\n")
	}

	return fs, flags
}

func handleDecrement(args []string) error {
	fs, flags := setupDecrementFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	names, err := commands.ReadNames(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("decrement command requires at least one name")
	}

	for _, name := range names {
		if flags.letters {
			if !stringutil.IsLetters(name) {
				return fmt.Errorf("--letters requires letter-only names, got %q", name)
			}
			fmt.Println(sequencer.DecrementLetters(name))
		} else {
			fmt.Println(sequencer.DecrementDigits(name))
		}
	}
	return nil
}

// digitsFlags contains flags for the digits command
type digitsFlags struct {
	index     int
	bracketed bool
	format    string
}

func setupDigitsFlags() (*flag.FlagSet, *digitsFlags) {
	fs := flag.NewFlagSet("digits", flag.ContinueOnError)
	flags := &digitsFlags{}

	fs.IntVar(&flags.index, "index", maxInt, "return only the digit run at this index (negative counts from the end)")
	fs.BoolVar(&flags.bracketed, "bracketed", false, "return only digit runs inside [...] pairs")
	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft digits [flags] <name>\n\n")
		_, _ = fmt.Fprintf(output, "Extract digit runs from a name.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft digits name_01_of_12_variable_34\n")
		_, _ = fmt.Fprintf(output, "  namecraft digits --index -1 0name12Of34Variable56\n")
		_, _ = fmt.Fprintf(output, "  namecraft digits --bracketed 'name_[01]_of_[12]_variable_34'\n")
	}

	return fs, flags
}

// maxInt marks the digits --index flag as unset.
const maxInt = int(^uint(0) >> 1)

func handleDigits(args []string) error {
	fs, flags := setupDigitsFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("digits command requires exactly one name")
	}
	name := fs.Arg(0)

	var runs []string
	switch {
	case flags.bracketed:
		runs = sequencer.BracketedDigitRuns(name)
	case flags.index != maxInt:
		if run, ok := sequencer.DigitRunAt(name, flags.index); ok {
			runs = []string{run}
		}
	default:
		runs = sequencer.DigitRuns(name)
	}

	if flags.format == commands.FormatText {
		for _, run := range runs {
			fmt.Println(run)
		}
		return nil
	}
	return commands.OutputStructured(runs, flags.format)
}

// valueFlags contains flags for the value command
type valueFlags struct {
	decode bool
}

func setupValueFlags() (*flag.FlagSet, *valueFlags) {
	fs := flag.NewFlagSet("value", flag.ContinueOnError)
	flags := &valueFlags{}

	fs.BoolVar(&flags.decode, "decode", false, "decode tokens back into numbers instead of encoding")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft value [flags] <number|token>...\n\n")
		_, _ = fmt.Fprintf(output, "Encode numbers as identifier-safe tokens, or decode them back.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft value -- -0.99\n")
		_, _ = fmt.Fprintf(output, "  namecraft value --decode M0d99\n")
	}

	return fs, flags
}

func handleValue(args []string) error {
	fs, flags := setupValueFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("value command requires at least one argument")
	}

	for _, arg := range fs.Args() {
		if flags.decode {
			value, err := valuecodec.Decode(arg)
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(value, 'f', -1, 64))
			continue
		}
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("parsing number %q: %w", arg, err)
		}
		fmt.Println(valuecodec.Encode(value))
	}
	return nil
}

// renameFlags contains flags for the rename command
type renameFlags struct {
	plan   string
	unique bool
	format string
}

func setupRenameFlags() (*flag.FlagSet, *renameFlags) {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	flags := &renameFlags{}

	fs.StringVar(&flags.plan, "plan", "", "YAML rename plan file")
	fs.BoolVar(&flags.unique, "unique", false, "bump numeric suffixes so computed names stay unique within the batch")
	fs.StringVar(&flags.format, "format", commands.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: namecraft rename --plan <file> [flags] <name>... | -\n\n")
		_, _ = fmt.Fprintf(output, "Preview a batch rename plan against a list of names.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  namecraft rename --plan plan.yaml leftArmCtrl rightArmCtrl\n")
		_, _ = fmt.Fprintf(output, "  ls | namecraft rename --plan plan.yaml --format json -\n")
	}

	return fs, flags
}

func handleRename(args []string) error {
	fs, flags := setupRenameFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := commands.ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if flags.plan == "" {
		fs.Usage()
		return fmt.Errorf("rename command requires --plan")
	}

	names, err := commands.ReadNames(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("rename command requires at least one name")
	}
	for _, name := range names {
		if !stringutil.IsIdentifier(name) {
			return fmt.Errorf("%q is not a valid node name", name)
		}
	}

	plan, err := renamer.LoadPlan(flags.plan)
	if err != nil {
		return err
	}

	var renames []renamer.Rename
	if flags.unique {
		// Seed a graph with the batch itself so collisions inside the
		// batch get bumped the way the host application would.
		renames, err = plan.Apply(renamer.NewMemoryGraph(names...), names)
	} else {
		renames, err = plan.Preview(names)
	}
	if err != nil {
		return err
	}

	if flags.format == commands.FormatText {
		for _, r := range renames {
			fmt.Printf("%s -> %s\n", r.From, r.To)
		}
		return nil
	}
	return commands.OutputStructured(renames, flags.format)
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Printf(`namecraft v%s - naming utilities for scene-graph node names

Usage: namecraft <command> [flags] [args]

Commands:
  classify    Report the case style of names
  case        Convert names between case styles
  tokens      Split a name into word tokens
  increment   Increment trailing digit runs or letter sequences
  decrement   Decrement trailing digit runs or letter sequences
  digits      Extract digit runs from a name
  value       Encode numbers as name tokens, or decode them
  rename      Preview a batch rename plan
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Run 'namecraft <command> --help' for command-specific flags.
`, namecraft.Version())
}
