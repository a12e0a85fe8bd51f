package simplegrep

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// stdinLabel stands in for the staged temp file when reporting stdin input
const stdinLabel = "(standard input)"

// Scheme holds the colors used to render results
type Scheme struct {
	Path       *color.Color
	Separator  *color.Color
	LineNumber *color.Color
	Match      *color.Color
}

// NewScheme returns the default color scheme. Separators are green when
// absolute paths are shown and blue otherwise. enabled forces colors on or
// off regardless of the terminal.
func NewScheme(absolute, enabled bool) Scheme {
	separator := color.FgBlue
	if absolute {
		separator = color.FgGreen
	}

	scheme := Scheme{
		Path:       color.New(color.FgMagenta),
		Separator:  color.New(separator),
		LineNumber: color.New(color.FgGreen),
		Match:      color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{scheme.Path, scheme.Separator, scheme.LineNumber, scheme.Match} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return scheme
}

// FormatOptions controls how a FileResult is rendered
type FormatOptions struct {
	Term       string // Highlighted in each rendered line
	Absolute   bool   // Render absolute paths
	FromStdin  bool   // Emit bare text without path or line number
	LineByLine bool   // Add a line number segment
	WorkDir    string // Base for relative paths
	Scheme     Scheme
}

// FormatResult renders a file result as output lines without trailing newlines
func FormatResult(fr FileResult, opts FormatOptions) []string {
	path := displayPath(fr.Path, opts)

	switch fr.Result.Kind {
	case BinaryMatch:
		return []string{"Binary file " + path + " matches"}

	case WholeFile:
		return []string{formatLine(path, 0, false, fr.Result.Text, opts)}

	case LineMatches:
		lines := make([]string, 0, len(fr.Result.Matches))
		for _, m := range fr.Result.Matches {
			lines = append(lines, formatLine(path, m.Key, opts.LineByLine, m.Text, opts))
		}
		return lines
	}

	return nil
}

func formatLine(path string, lineNum int, withLineNum bool, text string, opts FormatOptions) string {
	text = highlight(stripFinalNewline(text), opts.Term, opts.Scheme.Match)
	if opts.FromStdin {
		return text
	}

	s := opts.Scheme
	var b strings.Builder
	b.WriteString(s.Path.Sprint(path))
	b.WriteString(s.Separator.Sprint(":"))
	if withLineNum {
		b.WriteString(s.LineNumber.Sprint(strconv.Itoa(lineNum)))
		b.WriteString(s.Separator.Sprint(":"))
	}
	b.WriteString(text)
	return b.String()
}

// displayPath renders path per the options
func displayPath(path string, opts FormatOptions) string {
	if opts.FromStdin {
		return stdinLabel
	}

	if opts.Absolute {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return filepath.Clean(path)
	}

	if opts.WorkDir == "" {
		return filepath.Clean(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	rel, err := filepath.Rel(opts.WorkDir, abs)
	if err != nil {
		return filepath.Clean(path)
	}
	return rel
}

// stripFinalNewline removes one trailing line terminator
func stripFinalNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}

// highlight colors the last occurrence of term in s
func highlight(s, term string, c *color.Color) string {
	if term == "" {
		return s
	}

	i := strings.LastIndex(s, term)
	if i < 0 {
		return s
	}
	return s[:i] + c.Sprint(term) + s[i+len(term):]
}
