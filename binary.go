package simplegrep

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"
)

// BinarySniffLength is the number of leading bytes inspected by IsBinaryFile
const BinarySniffLength = 8 * 1024

const (
	maxControlRatio  = 0.10
	maxHighByteRatio = 0.30
)

// IsBinaryFile reports whether the file at filePath looks like binary data.
// Only the first BinarySniffLength bytes are read. Files that cannot be read
// are reported as text so the caller surfaces the read error instead.
func IsBinaryFile(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, BinarySniffLength)
	n, err := io.ReadFull(file, buffer)
	if err != nil && n == 0 {
		return false
	}

	return IsBinary(buffer[:n])
}

// IsBinary applies the binary heuristic to a content sample
func IsBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}

	// Null bytes never appear in text
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	control := 0
	high := 0
	for _, b := range sample {
		switch {
		case b == '\t', b == '\n', b == '\v', b == '\f', b == '\r', b == '\b', b == 0x1b:
		case b < 32 || b == 127:
			control++
		case b >= 128:
			high++
		}
	}

	n := float64(len(sample))
	if float64(control)/n > maxControlRatio {
		return true
	}

	// High bytes are fine as long as they form UTF-8
	if high > 0 && !validUTF8Prefix(sample) && float64(high)/n > maxHighByteRatio {
		return true
	}

	return false
}

// validUTF8Prefix validates sample, tolerating a rune cut off by the sample boundary
func validUTF8Prefix(sample []byte) bool {
	if utf8.Valid(sample) {
		return true
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(sample); cut++ {
		tail := sample[len(sample)-cut:]
		if utf8.RuneStart(tail[0]) && !utf8.FullRune(tail) {
			return utf8.Valid(sample[:len(sample)-cut])
		}
	}
	return false
}
