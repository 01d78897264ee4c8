// Package header parses the stamped page-header line that courts place at the
// top of every filed page, e.g.
//
//	Case 1:19-cv-03377 Document 1-3 Filed 04/16/19 Page 2 of 3
//
// The same line doubles as the page-boundary marker used by the splitter, so
// the full-line pattern is exported as Marker.
package header

import (
	"regexp"
	"strconv"
)

// Literal tokens of the page-header line.
const (
	TokenCase     = "Case"
	TokenDocument = "Document"
	TokenFiled    = "Filed"
	TokenPage     = "Page"
	TokenOf       = "of"
)

// Grammar fragments for the variable parts of the header line. The docket
// number grammar is deliberately loose: districts stamp variations like
// 1:19-cv-03377 or 9:08-cr-80736-KAM.
const (
	docketNumberExpr = `[\d:]+[-\w]+`
	documentRefExpr  = `[\d-]+`
	filedDateExpr    = `[\d/]+`
)

var (
	// Marker matches one full page-header line. Occurrences of Marker are
	// page boundaries.
	Marker = regexp.MustCompile(
		TokenCase + `\s+` + docketNumberExpr +
			`\s+` + TokenDocument + `\s+` + documentRefExpr +
			`\s+` + TokenFiled + `\s+` + filedDateExpr +
			`\s+` + TokenPage + `\s+\d+\s+` + TokenOf + `\s+\d+`)

	casePattern = regexp.MustCompile(TokenCase + `\s+(` + docketNumberExpr + `)`)
	pagePattern = regexp.MustCompile(TokenPage + `\s+(\d+)\s+` + TokenOf + `\s+(\d+)`)
)

// Header is the metadata carried by one page-header line.
type Header struct {
	CaseNumber string
	PageNumber int
	TotalPages int
}

// ExtractHeader parses the first page-header line found in text. The second
// return value is false when no full header line is present.
func ExtractHeader(text string) (Header, bool) {
	loc := Marker.FindStringIndex(text)
	if loc == nil {
		return Header{}, false
	}
	line := text[loc[0]:loc[1]]

	var h Header
	if cn, ok := ExtractCaseNumber(line); ok {
		h.CaseNumber = cn
	}
	if page, total, ok := ExtractPageInfo(line); ok {
		h.PageNumber = page
		h.TotalPages = total
	}
	return h, true
}

// ExtractCaseNumber returns the docket number following the first "Case"
// token, without the token itself.
func ExtractCaseNumber(text string) (string, bool) {
	m := casePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractPageInfo returns the two integers of the first "Page n of m"
// occurrence in text.
func ExtractPageInfo(text string) (page, total int, ok bool) {
	m := pagePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	page, _ = strconv.Atoi(m[1])
	total, _ = strconv.Atoi(m[2])
	return page, total, true
}
