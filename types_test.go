package simplegrep

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchConfigStrategy(t *testing.T) {
	tests := []struct {
		config   SearchConfig
		expected Strategy
	}{
		{SearchConfig{}, WholeFileLiteral},
		{SearchConfig{Regex: true}, WholeFileRegex},
		{SearchConfig{LineByLine: true}, LineLiteral},
		{SearchConfig{LineByLine: true, Regex: true}, LineRegex},
		{SearchConfig{LineByLine: true, FromStdin: true}, LineLiteral},
	}

	for _, test := range tests {
		t.Run(test.expected.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.config.Strategy())
		})
	}
}

func TestResultEmpty(t *testing.T) {
	assert.True(t, Result{}.Empty())
	assert.True(t, Result{Kind: LineMatches}.Empty())
	assert.False(t, Result{Kind: WholeFile}.Empty(), "whole-file result with empty text still reports")
	assert.False(t, Result{Kind: BinaryMatch}.Empty())
	assert.False(t, Result{Kind: LineMatches, Matches: []LineMatch{{Key: 1, Text: "x"}}}.Empty())
}

func TestErrorTypesUnwrap(t *testing.T) {
	cause := errors.New("boom")

	assert.ErrorIs(t, &RegexSyntaxError{Pattern: "(", Err: cause}, cause)
	assert.ErrorIs(t, &FileAccessError{Path: "x", Err: fs.ErrPermission}, fs.ErrPermission)
	assert.ErrorIs(t, &DecodeError{Path: "x", Err: cause}, cause)

	assert.Equal(t, "boom", (&RegexSyntaxError{Pattern: "(", Err: cause}).Error())
	assert.Contains(t, (&DecodeError{Path: "data.bin", Err: cause}).Error(), "data.bin")
}
