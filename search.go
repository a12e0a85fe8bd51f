package simplegrep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Target names what to search: a single file or a directory
type Target struct {
	Dir  string
	File string // Takes precedence over Dir when set
}

// Searcher runs a search over a target, printing results as each file
// completes. Files are searched one at a time and a failing file never stops
// the run.
type Searcher struct {
	engine  *Engine
	options *searchOptions
	format  FormatOptions
}

// NewSearcher creates a searcher for term
func NewSearcher(term string, opts ...Option) *Searcher {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			options.workDir = wd
		}
	}

	config := SearchConfig{
		Term:       term,
		Regex:      options.regex,
		LineByLine: options.lineByLine,
		FromStdin:  options.fromStdin,
	}

	return &Searcher{
		engine:  NewEngine(config),
		options: options,
		format: FormatOptions{
			Term:       term,
			Absolute:   options.absolute,
			FromStdin:  options.fromStdin,
			LineByLine: options.lineByLine,
			WorkDir:    options.workDir,
			Scheme:     NewScheme(options.absolute, options.color),
		},
	}
}

// Config returns the search configuration
func (s *Searcher) Config() SearchConfig {
	return s.engine.Config()
}

// Run searches the target and returns every file that matched. Only context
// cancellation is returned as an error; per-file failures are reported and
// skipped.
func (s *Searcher) Run(ctx context.Context, target Target) ([]FileResult, error) {
	var matched []FileResult

	visit := func(path string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if fr, ok := s.searchFile(path); ok {
			s.print(fr)
			matched = append(matched, fr)
		}
		return nil
	}

	if target.File != "" {
		return matched, visit(target.File)
	}

	walker, err := s.newWalker(target.Dir)
	if err != nil {
		s.reportError(err)
		return matched, nil
	}

	if err := walker.Walk(ctx, target.Dir, visit); err != nil {
		if ctx.Err() != nil {
			return matched, ctx.Err()
		}
		s.reportError(&FileAccessError{Path: target.Dir, Err: err})
	}

	return matched, nil
}

func (s *Searcher) newWalker(root string) (*Walker, error) {
	var ignore *IgnoreFilter
	if s.options.gitignore {
		filter, err := LoadIgnoreFilter(root)
		if err != nil {
			return nil, err
		}
		if filter != nil {
			s.options.logger.Debugf("using %s/.gitignore", root)
		}
		ignore = filter
	}
	return NewWalker(s.options.recursive, ignore, s.options.logger), nil
}

// searchFile runs the engine on one file, reporting any error
func (s *Searcher) searchFile(path string) (FileResult, bool) {
	s.options.logger.Debugf("searching %s (%s)", path, s.engine.Config().Strategy())

	fr, ok, err := s.engine.Search(path)
	if err != nil {
		s.reportError(err)
		return FileResult{}, false
	}
	return fr, ok
}

// reportError writes a per-file error. Regex errors go to the match output,
// everything else to the error output.
func (s *Searcher) reportError(err error) {
	var regexErr *RegexSyntaxError
	if errors.As(err, &regexErr) {
		fmt.Fprintf(s.options.stdout, "Regex expression error:\n\t%s\n", regexErr)
		return
	}
	fmt.Fprintf(s.options.stderr, "Error while reading file: %s\n", err)
}

// print writes all lines of a file result in a single write
func (s *Searcher) print(fr FileResult) {
	lines := FormatResult(fr, s.format)
	if len(lines) == 0 {
		return
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, _ = s.options.stdout.Write([]byte(b.String()))
}
