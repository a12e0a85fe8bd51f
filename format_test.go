package simplegrep

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResultPlain(t *testing.T) {
	workDir := t.TempDir()
	path := filepath.Join(workDir, "notes", "a.txt")

	base := FormatOptions{
		Term:    "aware",
		WorkDir: workDir,
		Scheme:  NewScheme(false, false),
	}
	lineResult := FileResult{Path: path, Result: Result{
		Kind:    LineMatches,
		Matches: []LineMatch{{Key: 1, Text: "aware"}, {Key: 2, Text: "be aware"}},
	}}

	t.Run("WholeFileMode", func(t *testing.T) {
		lines := FormatResult(lineResult, base)
		assert.Equal(t, []string{
			filepath.Join("notes", "a.txt") + ":aware",
			filepath.Join("notes", "a.txt") + ":be aware",
		}, lines)
	})

	t.Run("LineByLine", func(t *testing.T) {
		opts := base
		opts.LineByLine = true
		lines := FormatResult(lineResult, opts)
		assert.Equal(t, []string{
			filepath.Join("notes", "a.txt") + ":1:aware",
			filepath.Join("notes", "a.txt") + ":2:be aware",
		}, lines)
	})

	t.Run("Stdin", func(t *testing.T) {
		opts := base
		opts.LineByLine = true
		opts.FromStdin = true
		assert.Equal(t, []string{"aware", "be aware"}, FormatResult(lineResult, opts))
	})

	t.Run("Absolute", func(t *testing.T) {
		opts := base
		opts.Absolute = true
		lines := FormatResult(lineResult, opts)
		assert.Equal(t, path+":aware", lines[0])
	})

	t.Run("Binary", func(t *testing.T) {
		binary := FileResult{Path: path, Result: Result{Kind: BinaryMatch}}
		assert.Equal(t, []string{"Binary file " + filepath.Join("notes", "a.txt") + " matches"}, FormatResult(binary, base))

		opts := base
		opts.FromStdin = true
		assert.Equal(t, []string{"Binary file (standard input) matches"}, FormatResult(binary, opts))
	})

	t.Run("WholeFileSentinel", func(t *testing.T) {
		opts := base
		opts.Term = ""
		whole := FileResult{Path: path, Result: Result{Kind: WholeFile, Text: "hello\nworld\n"}}
		assert.Equal(t, []string{filepath.Join("notes", "a.txt") + ":hello\nworld"}, FormatResult(whole, opts))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, FormatResult(FileResult{Path: path}, base))
	})
}

func TestFormatResultColored(t *testing.T) {
	workDir := t.TempDir()
	path := filepath.Join(workDir, "a.txt")
	scheme := NewScheme(false, true)

	opts := FormatOptions{
		Term:       "aware",
		LineByLine: true,
		WorkDir:    workDir,
		Scheme:     scheme,
	}
	fr := FileResult{Path: path, Result: Result{
		Kind:    LineMatches,
		Matches: []LineMatch{{Key: 7, Text: "aware or aware"}},
	}}

	lines := FormatResult(fr, opts)
	expected := scheme.Path.Sprint("a.txt") +
		scheme.Separator.Sprint(":") +
		scheme.LineNumber.Sprint("7") +
		scheme.Separator.Sprint(":") +
		"aware or " + scheme.Match.Sprint("aware")

	assert.Equal(t, []string{expected}, lines)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[35m"), "path should be magenta")

	t.Run("BinaryNotColored", func(t *testing.T) {
		binary := FileResult{Path: path, Result: Result{Kind: BinaryMatch}}
		assert.Equal(t, []string{"Binary file a.txt matches"}, FormatResult(binary, opts))
	})
}

func TestNewSchemeSeparators(t *testing.T) {
	relative := NewScheme(false, true)
	absolute := NewScheme(true, true)

	assert.Equal(t, relative.LineNumber.Sprint(":"), absolute.Separator.Sprint(":"), "absolute separators are green")
	assert.NotEqual(t, relative.Separator.Sprint(":"), absolute.Separator.Sprint(":"))

	disabled := NewScheme(false, false)
	assert.Equal(t, "x", disabled.Match.Sprint("x"))
}

func TestStripFinalNewline(t *testing.T) {
	assert.Equal(t, "a\nb", stripFinalNewline("a\nb\n"))
	assert.Equal(t, "a\nb", stripFinalNewline("a\nb"))
	assert.Equal(t, "a\n", stripFinalNewline("a\n\n"))
	assert.Equal(t, "a", stripFinalNewline("a\r\n"))
	assert.Equal(t, "", stripFinalNewline("\n"))
}

func TestHighlight(t *testing.T) {
	c := NewScheme(false, true).Match

	assert.Equal(t, "x aware "+c.Sprint("aware")+" y", highlight("x aware aware y", "aware", c))
	assert.Equal(t, "nothing", highlight("nothing", "aware", c))
	assert.Equal(t, "text", highlight("text", "", c))
}
