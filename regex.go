package simplegrep

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// termMatcher locates the search term in text. Offsets are byte offsets.
type termMatcher interface {
	// Last returns the text of the last match in s
	Last(s string) (string, bool)
	// Contains reports whether s holds at least one match
	Contains(s string) bool
	// First returns the offsets of the first match in s
	First(s string) (start, end int, ok bool)
}

// literalMatcher matches an exact substring
type literalMatcher struct {
	term string
}

func (m literalMatcher) Last(s string) (string, bool) {
	i := strings.LastIndex(s, m.term)
	if i < 0 {
		return "", false
	}
	return s[i : i+len(m.term)], true
}

func (m literalMatcher) Contains(s string) bool {
	return strings.Contains(s, m.term)
}

func (m literalMatcher) First(s string) (int, int, bool) {
	i := strings.Index(s, m.term)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(m.term), true
}

// Pattern is a compiled regular expression search term. It uses a
// backtracking engine, so lookaround and backreferences are available.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// CompilePattern compiles a regex search term. A malformed pattern yields a
// *RegexSyntaxError.
func CompilePattern(pattern string) (*Pattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, &RegexSyntaxError{Pattern: pattern, Err: err}
	}
	return &Pattern{source: pattern, re: re}, nil
}

// String returns the source pattern
func (p *Pattern) String() string {
	return p.source
}

func (p *Pattern) Last(s string) (string, bool) {
	var last *regexp2.Match
	m, _ := p.re.FindStringMatch(s)
	for m != nil {
		last = m
		m, _ = p.re.FindNextMatch(m)
	}
	if last == nil {
		return "", false
	}
	return last.String(), true
}

func (p *Pattern) Contains(s string) bool {
	ok, _ := p.re.MatchString(s)
	return ok
}

func (p *Pattern) First(s string) (int, int, bool) {
	m, _ := p.re.FindStringMatch(s)
	if m == nil {
		return 0, 0, false
	}
	// regexp2 reports rune positions
	start := byteOffset(s, m.Index)
	return start, start + len(m.String()), true
}

// byteOffset converts a rune index in s to a byte offset
func byteOffset(s string, runeIndex int) int {
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}
