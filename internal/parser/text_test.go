package parser

import (
	"strings"
	"testing"
)

func TestTextExtractorVerbatim(t *testing.T) {
	input := "Case 1:19-cv-03377 Document 58-3 Filed 01/13/20 Page 1 of 2\n\n  indented body\r\nline two\n"
	e := &TextExtractor{}
	got, err := e.Extract(strings.NewReader(input), "scan.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != input {
		t.Errorf("text should pass through verbatim, got %q", got)
	}
}

func TestTextExtractorStripsBOM(t *testing.T) {
	e := &TextExtractor{}
	got, err := e.Extract(strings.NewReader("\ufeffhello"), "scan.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected leading BOM stripped, got %q", got)
	}
}
