// Package splitter divides a document's raw text into physical pages using
// the court page-header line as the boundary marker.
package splitter

import (
	"iter"

	"github.com/dgallion1/docketprep/internal/header"
)

// Page is one physical page of a document.
type Page struct {
	Ordinal int    // 1-based position within the document
	Text    string // raw page text, untrimmed
}

// Pages returns a lazy, restartable sequence of the document's pages in
// physical order. Every occurrence of the page-header marker starts a new
// page; any preamble before the first marker belongs to page 1. A document
// with no markers at all is a single page. Printed page numbers inside the
// headers never reorder the sequence.
func Pages(content string) iter.Seq[Page] {
	return func(yield func(Page) bool) {
		locs := header.Marker.FindAllStringIndex(content, -1)
		if len(locs) == 0 {
			yield(Page{Ordinal: 1, Text: content})
			return
		}
		for i, loc := range locs {
			start := loc[0]
			if i == 0 {
				start = 0
			}
			end := len(content)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			if !yield(Page{Ordinal: i + 1, Text: content[start:end]}) {
				return
			}
		}
	}
}

// Split materializes Pages into a slice.
func Split(content string) []Page {
	var pages []Page
	for p := range Pages(content) {
		pages = append(pages, p)
	}
	return pages
}
