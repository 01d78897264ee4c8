package parser

import (
	"io"
	"strings"
)

// TextExtractor handles plain text files. Text passes through verbatim:
// downstream search relevance depends on exact token boundaries, so no
// whitespace is rewritten. Only a leading BOM is dropped.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(b), "\ufeff"), nil
}
