// Package ingestion turns input files into clean analyzable text. Plain
// text and HTML are supported; binary formats are rejected with a typed
// error so callers can tell the user to export text first.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extractor converts one input format to plain text.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// EmptyInputError reports an input that yielded no usable text.
type EmptyInputError struct {
	Path string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("input %s contains no text", e.Path)
}

// UnreadableError reports an input that could not be opened or parsed.
type UnreadableError struct {
	Path  string
	Cause error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot read input %s: %v", e.Path, e.Cause)
}

func (e *UnreadableError) Unwrap() error {
	return e.Cause
}

// BinaryInputError reports a binary input, typically an exported PDF or a
// scanned image, that carries no extractable text.
type BinaryInputError struct {
	Path string
}

func (e *BinaryInputError) Error() string {
	return fmt.Sprintf("input %s looks binary; export it as plain text or HTML first", e.Path)
}

// ForPath picks the extractor for a file based on its extension. Anything
// that is not HTML is treated as plain text.
func ForPath(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return &HTML{}
	default:
		return &PlainText{}
	}
}

// ReadFile loads, extracts, and cleans one input file.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &UnreadableError{Path: path, Cause: err}
	}
	if looksBinary(raw) {
		return "", &BinaryInputError{Path: path}
	}

	text, err := ForPath(path).Extract(bytes.NewReader(raw))
	if err != nil {
		return "", &UnreadableError{Path: path, Cause: err}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &EmptyInputError{Path: path}
	}
	return cleaned, nil
}

// looksBinary flags content that is not valid UTF-8 or contains NUL bytes.
func looksBinary(raw []byte) bool {
	if bytes.IndexByte(raw, 0) >= 0 {
		return true
	}
	return !utf8.Valid(raw)
}
