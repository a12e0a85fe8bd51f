package simplegrep

import (
	"strings"
	"unicode"
)

// Engine searches single files with one SearchConfig. The regex, when
// configured, is compiled on first use and reused for later files.
type Engine struct {
	config   SearchConfig
	isBinary func(filePath string) bool

	compiled   bool
	pattern    *Pattern
	compileErr error
}

// NewEngine creates an engine for the given configuration
func NewEngine(config SearchConfig) *Engine {
	return &Engine{
		config:   config,
		isBinary: IsBinaryFile,
	}
}

// Config returns the engine's search configuration
func (e *Engine) Config() SearchConfig {
	return e.config
}

// Search runs the configured strategy against filePath. The boolean is false
// when the file has nothing to report. Errors are *FileAccessError,
// *DecodeError or *RegexSyntaxError and only concern this file.
func (e *Engine) Search(filePath string) (FileResult, bool, error) {
	var result Result
	var err error

	switch e.config.Strategy() {
	case WholeFileLiteral:
		result, err = e.searchWholeFile(filePath, false)
	case WholeFileRegex:
		result, err = e.searchWholeFile(filePath, true)
	case LineLiteral:
		result, err = e.searchLines(filePath, literalMatcher{term: e.config.Term})
	case LineRegex:
		var pattern *Pattern
		if pattern, err = e.compile(); err == nil {
			result, err = e.searchLines(filePath, pattern)
		}
	}

	if err != nil || result.Empty() {
		return FileResult{}, false, err
	}
	return FileResult{Path: filePath, Result: result}, true, nil
}

func (e *Engine) compile() (*Pattern, error) {
	if !e.compiled {
		e.pattern, e.compileErr = CompilePattern(e.config.Term)
		e.compiled = true
	}
	return e.pattern, e.compileErr
}

// binaryCheck returns a memoized binary test for filePath
func (e *Engine) binaryCheck(filePath string) func() bool {
	checked, binary := false, false
	return func() bool {
		if !checked {
			binary = e.isBinary(filePath)
			checked = true
		}
		return binary
	}
}

func (e *Engine) searchWholeFile(filePath string, regex bool) (Result, error) {
	content, err := readText(filePath)
	if err != nil {
		return Result{}, err
	}

	if e.config.Term == "" {
		return Result{Kind: WholeFile, Text: content}, nil
	}

	var m termMatcher = literalMatcher{term: e.config.Term}
	if regex {
		pattern, err := e.compile()
		if err != nil {
			return Result{}, err
		}
		m = pattern
	}

	return matchWholeFile(content, m, e.binaryCheck(filePath)), nil
}

func (e *Engine) searchLines(filePath string, m termMatcher) (Result, error) {
	t, err := openText(filePath)
	if err != nil {
		return Result{}, err
	}
	defer t.Close()

	isBinary := e.binaryCheck(filePath)
	binary := false
	var matches []LineMatch

	err = t.EachLine(func(lineNum int, line string) bool {
		text, ok := matchLine(line, e.config.Term, m)
		if !ok {
			return true
		}
		if e.config.Term != "" && isBinary() {
			binary = true
			return false
		}
		matches = append(matches, LineMatch{Key: lineNum, Text: text})
		return true
	})
	if err != nil {
		return Result{}, err
	}

	if binary {
		return Result{Kind: BinaryMatch}, nil
	}
	if len(matches) == 0 {
		return Result{}, nil
	}
	return Result{Kind: LineMatches, Matches: matches}, nil
}

// matchWholeFile scans content for tokens holding the term. The last match in
// content only decides whether scanning happens at all; an empty last match
// counts as no match. Every containing token is recorded.
func matchWholeFile(content string, m termMatcher, isBinary func() bool) Result {
	last, ok := m.Last(content)
	if !ok || last == "" {
		return Result{}
	}

	if isBinary() {
		return Result{Kind: BinaryMatch}
	}

	var matches []LineMatch
	for index, token := range strings.Fields(content) {
		if m.Contains(token) {
			matches = append(matches, LineMatch{Key: index, Text: token})
		}
	}

	if len(matches) == 0 {
		return Result{}
	}
	return Result{Kind: LineMatches, Matches: matches}
}

// matchLine returns the text recorded for a single line: the whole line for
// an empty term, otherwise the line up to the end of the first match.
func matchLine(line, term string, m termMatcher) (string, bool) {
	if term == "" {
		return trimTrailing(line), true
	}

	start, end, ok := m.First(line)
	if !ok {
		return "", false
	}

	// A zero-width match has no end to cut at
	if start == end {
		return trimTrailing(line), true
	}

	return trimTrailing(line[:end]), true
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
