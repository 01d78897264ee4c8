// Package parser extracts plain text from corpus files. Court corpora are
// normally OCR'd .txt, but releases occasionally mix in Markdown, HTML, PDF
// and DOCX copies of the same filings; every extractor flattens its input to
// the raw text the page splitter operates on.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor produces the plain text of one document file.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// Options tunes extractor behavior.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the Go PDF library
	// fails on a file.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions the pipeline can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
