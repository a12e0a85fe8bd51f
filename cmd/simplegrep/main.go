package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/localrivet/simplegrep"
	"github.com/localrivet/simplegrep/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

// exitInterrupted is the conventional status for a run stopped by SIGINT
const exitInterrupted = 130

// environment carries the process streams so the command can be tested
type environment struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	stdinReady func() bool
}

// cliOptions holds the parsed command-line flags
type cliOptions struct {
	recursive   bool
	fullPaths   bool
	regex       bool
	lineNumbers bool
	gitignore   bool
	verbose     bool
	colorMode   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], environment{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdinReady: stdinHasData,
	})

	stop()
	os.Exit(code)
}

// run executes the command line and returns the exit status
func run(ctx context.Context, args []string, env environment) int {
	cmd := newRootCmd(env)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, simplegrep.ErrInvalidArguments):
		// Usage has been printed; malformed flags are a no-op
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		fmt.Fprintf(env.stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd(env environment) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "simplegrep [flags] [SEARCH_TERM] [FILE_OR_DIR]",
		Short: "Search files for a term or pattern",
		Long: `simplegrep searches a file, a directory or standard input for a term and
prints the matches with colored paths and highlighted terms.

By default only the files directly inside the directory are searched. Use -r
to descend into subdirectories. Without a path the current directory is
searched. Data piped on standard input takes precedence over any path.

EXAMPLES:
  simplegrep aware notes.txt          # Whole-file search of one file
  simplegrep -n aware notes.txt       # Line by line, with line numbers
  simplegrep -r -e "func \w+" src/    # Recursive regex search
  simplegrep --full TODO .            # Print absolute paths
  cat log.txt | simplegrep -n ERROR   # Search standard input`,
		Version:           version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			colorOn, err := resolveColor(opts.colorMode, env.stdout)
			if err != nil {
				return usageError(cmd, err)
			}
			return runSearch(cmd.Context(), env, opts, colorOn, args)
		},
	}

	cmd.SetIn(env.stdin)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Search directory recursively")
	flags.BoolVar(&opts.fullPaths, "full", false, "Display full/absolute paths for matches")
	flags.BoolVarP(&opts.regex, "regex", "e", false, "Use the search term as a regex pattern")
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "Search line by line and display line numbers")
	flags.BoolVar(&opts.gitignore, "gitignore", false, "Skip files listed in the directory's .gitignore")
	flags.StringVar(&opts.colorMode, "color", "auto", "Colorize output: auto, always or never")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log diagnostics to standard error")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err)
	})

	return cmd
}

// usageError prints err and the usage text, then marks the run as a no-op
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), err)
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	return fmt.Errorf("%w: %v", simplegrep.ErrInvalidArguments, err)
}

func runSearch(ctx context.Context, env environment, opts *cliOptions, colorOn bool, args []string) error {
	var term, pathArg string
	if len(args) > 0 {
		term = args[0]
	}
	if len(args) > 1 {
		pathArg = args[1]
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewConsoleLogger(env.stderr, level)

	searchOpts := []simplegrep.Option{
		simplegrep.WithRecursive(opts.recursive),
		simplegrep.WithGitignore(opts.gitignore),
		simplegrep.WithColor(colorOn),
		simplegrep.WithOutput(env.stdout),
		simplegrep.WithErrorOutput(env.stderr),
		simplegrep.WithLogger(log),
	}
	if opts.regex {
		searchOpts = append(searchOpts, simplegrep.WithRegex())
	}
	if opts.lineNumbers {
		searchOpts = append(searchOpts, simplegrep.WithLineNumbers())
	}
	if opts.fullPaths {
		searchOpts = append(searchOpts, simplegrep.WithAbsolutePaths())
	}

	var target simplegrep.Target
	var err error
	if env.stdinReady != nil && env.stdinReady() {
		staged, cleanup, err := stageStdin(env.stdin)
		if err != nil {
			return fmt.Errorf("failed to stage standard input: %w", err)
		}
		defer cleanup()

		log.Debugf("staged standard input to %s", staged)
		target = simplegrep.Target{File: staged}
		searchOpts = append(searchOpts, simplegrep.WithFromStdin())
	} else {
		target, err = resolveTarget(pathArg)
		if err != nil {
			return err
		}
	}

	_, err = simplegrep.NewSearcher(term, searchOpts...).Run(ctx, target)
	return err
}

// resolveTarget maps the path argument onto a search target: a directory is
// walked, no argument means the current directory, anything else is a file.
func resolveTarget(pathArg string) (simplegrep.Target, error) {
	if pathArg == "" {
		wd, err := os.Getwd()
		if err != nil {
			return simplegrep.Target{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		return simplegrep.Target{Dir: wd}, nil
	}

	if info, err := os.Stat(pathArg); err == nil && info.IsDir() {
		return simplegrep.Target{Dir: pathArg}, nil
	}
	return simplegrep.Target{File: pathArg}, nil
}

// resolveColor decides whether output is colored
func resolveColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color value %q", mode)
	}
}
