package simplegrep

import (
	"errors"
	"fmt"
)

// SearchConfig holds the per-invocation search settings
type SearchConfig struct {
	Term       string // Search term; empty matches everything
	Regex      bool   // Treat Term as a regular expression
	LineByLine bool   // Search and report per line, with line numbers
	FromStdin  bool   // Input was staged from standard input
}

// Strategy is one of the four matching strategies
type Strategy int

const (
	WholeFileLiteral Strategy = iota
	WholeFileRegex
	LineLiteral
	LineRegex
)

func (s Strategy) String() string {
	switch s {
	case WholeFileLiteral:
		return "whole-file literal"
	case WholeFileRegex:
		return "whole-file regex"
	case LineLiteral:
		return "line literal"
	case LineRegex:
		return "line regex"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Strategy selects the matching strategy for this configuration
func (c SearchConfig) Strategy() Strategy {
	switch {
	case c.LineByLine && c.Regex:
		return LineRegex
	case c.LineByLine:
		return LineLiteral
	case c.Regex:
		return WholeFileRegex
	default:
		return WholeFileLiteral
	}
}

// ResultKind tags the shape of a Result
type ResultKind int

const (
	NoMatch     ResultKind = iota // Nothing matched
	WholeFile                     // Empty term in whole-file mode; Text holds the file
	BinaryMatch                   // Binary file with at least one match
	LineMatches                   // Matches holds token or line matches
)

// LineMatch is a single recorded match. Key is a zero-based token index in
// whole-file mode and a 1-based line number in line-by-line mode.
type LineMatch struct {
	Key  int
	Text string
}

// Result is the outcome of searching one file
type Result struct {
	Kind    ResultKind
	Text    string
	Matches []LineMatch
}

// Empty reports whether the result carries nothing to print
func (r Result) Empty() bool {
	switch r.Kind {
	case WholeFile, BinaryMatch:
		return false
	case LineMatches:
		return len(r.Matches) == 0
	default:
		return true
	}
}

// FileResult pairs a file path with its non-empty Result
type FileResult struct {
	Path   string
	Result Result
}

// ErrInvalidArguments is returned for malformed command-line flags
var ErrInvalidArguments = errors.New("invalid arguments")

// RegexSyntaxError reports a search term that does not compile
type RegexSyntaxError struct {
	Pattern string
	Err     error
}

func (e *RegexSyntaxError) Error() string {
	return e.Err.Error()
}

func (e *RegexSyntaxError) Unwrap() error { return e.Err }

// FileAccessError reports a file that could not be opened or read
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return e.Err.Error()
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DecodeError reports file content that is not valid text
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("'%s' is not valid UTF-8: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
