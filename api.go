package simplegrep

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger receives diagnostic messages from the searcher
type Logger interface {
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option represents a functional option for configuring searches
type Option func(*searchOptions)

// searchOptions holds the configuration for a search operation
type searchOptions struct {
	regex      bool
	lineByLine bool
	fromStdin  bool
	recursive  bool
	absolute   bool
	gitignore  bool
	color      bool
	workDir    string
	stdout     io.Writer
	stderr     io.Writer
	logger     Logger
}

// defaultOptions returns the default search options
func defaultOptions() *searchOptions {
	return &searchOptions{
		color:  !color.NoColor,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: nopLogger{},
	}
}

// Find searches path for term and prints matches to the configured output.
// A directory path is walked; anything else is searched as a single file.
func Find(term, path string, opts ...Option) ([]FileResult, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	target := Target{File: path}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		target = Target{Dir: path}
	}

	return NewSearcher(term, opts...).Run(context.Background(), target)
}

// Search Behavior Options

// WithRegex treats the search term as a regular expression
func WithRegex() Option {
	return func(opts *searchOptions) {
		opts.regex = true
	}
}

// WithLineNumbers searches line by line and prints line numbers
func WithLineNumbers() Option {
	return func(opts *searchOptions) {
		opts.lineByLine = true
	}
}

// WithFromStdin marks the input as staged standard input. Output then carries
// only the matched text.
func WithFromStdin() Option {
	return func(opts *searchOptions) {
		opts.fromStdin = true
	}
}

// File Filtering Options

// WithRecursive enables or disables recursive directory traversal
func WithRecursive(enabled bool) Option {
	return func(opts *searchOptions) {
		opts.recursive = enabled
	}
}

// WithGitignore enables or disables filtering by the root .gitignore file
func WithGitignore(enabled bool) Option {
	return func(opts *searchOptions) {
		opts.gitignore = enabled
	}
}

// Output Options

// WithAbsolutePaths prints absolute file paths
func WithAbsolutePaths() Option {
	return func(opts *searchOptions) {
		opts.absolute = true
	}
}

// WithColor forces colored output on or off
func WithColor(enabled bool) Option {
	return func(opts *searchOptions) {
		opts.color = enabled
	}
}

// WithWorkDir sets the directory relative paths are printed against
func WithWorkDir(dir string) Option {
	return func(opts *searchOptions) {
		opts.workDir = dir
	}
}

// WithOutput sets the writer for matches
func WithOutput(w io.Writer) Option {
	return func(opts *searchOptions) {
		if w != nil {
			opts.stdout = w
		}
	}
}

// WithErrorOutput sets the writer for file errors
func WithErrorOutput(w io.Writer) Option {
	return func(opts *searchOptions) {
		if w != nil {
			opts.stderr = w
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(l Logger) Option {
	return func(opts *searchOptions) {
		if l != nil {
			opts.logger = l
		}
	}
}
