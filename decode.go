package simplegrep

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// textFile is an open file whose bytes are validated as UTF-8 while read
type textFile struct {
	path   string
	file   *os.File
	reader io.Reader
}

// openText opens filePath for reading as UTF-8 text
func openText(filePath string) (*textFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &FileAccessError{Path: filePath, Err: err}
	}

	return &textFile{
		path:   filePath,
		file:   file,
		reader: transform.NewReader(file, encoding.UTF8Validator),
	}, nil
}

// Close releases the underlying file
func (t *textFile) Close() error {
	return t.file.Close()
}

// wrapReadError classifies a read failure as a decode or access error
func (t *textFile) wrapReadError(err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return &DecodeError{Path: t.path, Err: err}
	}
	return &FileAccessError{Path: t.path, Err: err}
}

// ReadAll returns the whole file content
func (t *textFile) ReadAll() (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, t.reader); err != nil {
		return "", t.wrapReadError(err)
	}
	return sb.String(), nil
}

// EachLine calls fn for every line, newline included, numbering from 1.
// Iteration stops early when fn returns false.
func (t *textFile) EachLine(fn func(lineNum int, line string) bool) error {
	reader := bufio.NewReader(t.reader)
	lineNum := 0

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNum++
			if !fn(lineNum, line) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return t.wrapReadError(err)
		}
	}
}

// readText reads the whole file at filePath as UTF-8 text
func readText(filePath string) (string, error) {
	t, err := openText(filePath)
	if err != nil {
		return "", err
	}
	defer t.Close()

	return t.ReadAll()
}
