// Package record defines the flat output unit consumed by the search engine's
// document importer and assembles records from split pages.
package record

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docketprep/internal/header"
	"github.com/dgallion1/docketprep/internal/splitter"
)

// Document is a single source file. It is read once and never mutated; the
// file on disk remains the source of truth.
type Document struct {
	Path       string // path on disk
	SourceFile string // corpus-root-relative path, forward slashes
	Folder     string // immediate parent directory name ("root" at top level)
	ID         string // file name without extension
	Text       string // raw document text
}

// Record is one page of one document, flattened for import. Field names are
// part of the external contract and must not change.
type Record struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	DocumentID string  `json:"document_id"`
	Folder     string  `json:"folder"`
	PageNumber int     `json:"page_number"`
	TotalPages int     `json:"total_pages"`
	CaseNumber *string `json:"case_number"`
	SourceFile string  `json:"source_file"`
}

// Build assembles one Record per page.
//
// The record id always uses the physical page ordinal, so ids stay unique
// even when a header's printed page number is duplicated or corrupt.
// page_number and total_pages report the printed header values when a header
// parses, falling back to the physical ordinal and the detected page count.
// Missing metadata is not an error: case_number is nil when neither the page
// nor the document yields a docket number.
func Build(doc Document, pages []splitter.Page) []Record {
	records := make([]Record, 0, len(pages))
	detected := len(pages)

	for _, page := range pages {
		pageNumber := page.Ordinal
		totalPages := detected
		if n, total, ok := header.ExtractPageInfo(page.Text); ok {
			pageNumber = n
			totalPages = total
		}

		var caseNumber *string
		if cn, ok := header.ExtractCaseNumber(page.Text); ok {
			caseNumber = &cn
		} else if cn, ok := header.ExtractCaseNumber(doc.Text); ok {
			caseNumber = &cn
		}

		records = append(records, Record{
			ID:         PageID(doc.ID, page.Ordinal),
			Content:    strings.TrimSpace(page.Text),
			DocumentID: doc.ID,
			Folder:     doc.Folder,
			PageNumber: pageNumber,
			TotalPages: totalPages,
			CaseNumber: caseNumber,
			SourceFile: doc.SourceFile,
		})
	}
	return records
}

// PageID is the deterministic record id for a document page.
func PageID(documentID string, ordinal int) string {
	return fmt.Sprintf("%s_page_%d", documentID, ordinal)
}
