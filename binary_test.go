package simplegrep

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name     string
		sample   []byte
		expected bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello world\nsecond line\n"), false},
		{"tabs and carriage returns", []byte("a\tb\r\nc\fd\n"), false},
		{"utf8 text", []byte("héllo wörld ünïcödé ñ 日本語のテキスト\n"), false},
		{"ansi escapes", []byte("\x1b[31mred\x1b[0m\n"), false},
		{"null byte", []byte("text\x00more text"), true},
		{"leading null", []byte{0, 'a', 'b'}, true},
		{"control bytes", []byte("\x01\x02\x03\x04abcdef"), true},
		{"invalid utf8", bytes.Repeat([]byte{0xff, 0xfe, 'a'}, 20), true},
		{"few latin1 bytes", []byte("caf\xe9 au lait with plenty of plain ascii text around it"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsBinary(test.sample))
		})
	}
}

func TestIsBinaryTruncatedRune(t *testing.T) {
	// "日" is three bytes; cut it in the middle
	sample := []byte(strings.Repeat("日本", 10))
	sample = sample[:len(sample)-1]
	assert.False(t, IsBinary(sample))
}

func TestIsBinaryFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, content []byte) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, content, 0644))
		return path
	}

	t.Run("EmptyFile", func(t *testing.T) {
		assert.False(t, IsBinaryFile(write("empty.txt", nil)))
	})

	t.Run("TextFile", func(t *testing.T) {
		assert.False(t, IsBinaryFile(write("text.txt", []byte("aware\naware werwer\n"))))
	})

	t.Run("NullInSample", func(t *testing.T) {
		assert.True(t, IsBinaryFile(write("null.dat", []byte("abc\x00def"))))
	})

	t.Run("NullBeyondSample", func(t *testing.T) {
		content := append(bytes.Repeat([]byte("a"), BinarySniffLength), 0)
		assert.False(t, IsBinaryFile(write("late.txt", content)))
	})

	t.Run("MissingFile", func(t *testing.T) {
		assert.False(t, IsBinaryFile(filepath.Join(dir, "missing")))
	})
}
