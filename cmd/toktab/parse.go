package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/toktab/render"
)

// Option structs for subcommands that have flags
type RunOptions struct {
	Input        string
	Output       string
	Pos          string
	LemmaDataset string
	Kept         string
	ManualStore  string
	Format       string
	Config       string
}

type LabelOptions struct {
	Input       string
	ManualStore string
}

type ImportLabelsOptions struct {
	From string
	To   string
}

type ExportLabelsOptions struct {
	From string
	To   string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func posModes() []string {
	return []string{"rules", "manual"}
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("toktab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseRunArgs(args []string, ui UI) (RunOptions, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts RunOptions
	fs.StringVar(&opts.Input, "input", "", "Path to the UTF-8 input text file (required)")
	fs.StringVar(&opts.Input, "i", "", "alias for -input")

	fs.StringVar(&opts.Output, "output", "", "Path to write the annotation table (required)")
	fs.StringVar(&opts.Output, "o", "", "alias for -output")

	posFlag := &enumFlag{allowed: posModes(), value: &opts.Pos}
	fs.Var(posFlag, "pos", "Tagging mode: deterministic rules (rules) or stored labels with rule fallback (manual)")
	fs.Var(posFlag, "p", "alias for -pos")

	fs.StringVar(&opts.LemmaDataset, "lemma-dataset", "", "Path to a lemma<TAB>surface_form dataset file")
	fs.StringVar(&opts.LemmaDataset, "l", "", "alias for -lemma-dataset")

	fs.StringVar(&opts.Kept, "kept", "", "Path to write the kept tokens (default: standard output)")
	fs.StringVar(&opts.Kept, "k", "", "alias for -kept")

	fs.StringVar(&opts.ManualStore, "manual-store", os.Getenv("TOKTAB_MANUAL_STORE"), "Path to the manual POS label store (.json file or SQLite file)")
	fs.StringVar(&opts.ManualStore, "m", os.Getenv("TOKTAB_MANUAL_STORE"), "alias for -manual-store")

	opts.Format = render.DefaultFormat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Table output format: tab-separated (tsv) or records array (json)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.StringVar(&opts.Config, "config", "", "Path to a YAML config file")
	fs.StringVar(&opts.Config, "c", "", "alias for -config")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s run --input <file> --output <file> [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Annotate a text file: tokenize, tag, lemmatize, filter stopwords.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Writes the annotation table to --output and the kept tokens to\n")
		_, _ = fmt.Fprintf(fs.Output(), "  --kept or standard output.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("run command accepts no positional arguments")
	}

	if opts.Input == "" {
		return opts, errors.New("--input is required")
	}

	if opts.Output == "" {
		return opts, errors.New("--output is required")
	}

	return opts, nil
}

func parseLabelArgs(args []string, ui UI) (LabelOptions, error) {
	fs := flag.NewFlagSet("label", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LabelOptions
	fs.StringVar(&opts.Input, "input", "", "Path to the UTF-8 input text file (required)")
	fs.StringVar(&opts.Input, "i", "", "alias for -input")

	fs.StringVar(&opts.ManualStore, "manual-store", os.Getenv("TOKTAB_MANUAL_STORE"), "Path to the manual POS label store (.json file or SQLite file)")
	fs.StringVar(&opts.ManualStore, "m", os.Getenv("TOKTAB_MANUAL_STORE"), "alias for -manual-store")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s label --input <file> [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Interactively assign POS labels to the tokens of a file and store\n")
		_, _ = fmt.Fprintf(fs.Output(), "  them for later runs with --pos manual.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.Input == "" {
		return opts, errors.New("--input is required")
	}

	if opts.ManualStore == "" {
		return opts, errors.New("manual store must be specified via -m or TOKTAB_MANUAL_STORE")
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat <file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show sentence, token and kept-token statistics for a text file.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", errors.New("stat command needs exactly one argument: <file>")
	}

	return fs.Arg(0), nil
}

func parseImportLabelsArgs(args []string, ui UI) (ImportLabelsOptions, error) {
	fs := flag.NewFlagSet("import-labels", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportLabelsOptions
	fs.StringVar(&opts.From, "from", "", "Source JSON label store")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-labels --from <json_file> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseExportLabelsArgs(args []string, ui UI) (ExportLabelsOptions, error) {
	fs := flag.NewFlagSet("export-labels", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportLabelsOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target JSON label store")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export-labels --from <sqlite_file> --to <json_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Token annotation pipeline: POS tags, lemmas, stopword filtering\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  run            Annotate a text file into a TSV table and kept-token list.\n")
		_, _ = fmt.Fprintf(output, "  label          Interactively assign POS labels to tokens of a file.\n")
		_, _ = fmt.Fprintf(output, "  stat           Show statistics for a text file.\n")
		_, _ = fmt.Fprintf(output, "  import-labels  Import POS labels from JSON to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export-labels  Export POS labels from SQLite to JSON.\n")
		_, _ = fmt.Fprintf(output, "  bash           Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help           Show help for a command.\n")
	}
}
