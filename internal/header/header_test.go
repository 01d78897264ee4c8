package header

import "testing"

const sampleHeader = "Case 1:19-cv-03377 Document 1-3 Filed 04/16/19 Page 2 of 3"

func TestExtractHeader_FullLine(t *testing.T) {
	text := "preamble\n" + sampleHeader + "\nbody text"
	h, ok := ExtractHeader(text)
	if !ok {
		t.Fatalf("expected header to parse")
	}
	if h.CaseNumber != "1:19-cv-03377" {
		t.Errorf("case number: expected %q, got %q", "1:19-cv-03377", h.CaseNumber)
	}
	if h.PageNumber != 2 {
		t.Errorf("page number: expected 2, got %d", h.PageNumber)
	}
	if h.TotalPages != 3 {
		t.Errorf("total pages: expected 3, got %d", h.TotalPages)
	}
}

func TestExtractHeader_Absent(t *testing.T) {
	if _, ok := ExtractHeader("no header line in here\nPage 1 of 3"); ok {
		t.Errorf("expected no header for text without a full marker line")
	}
}

func TestExtractCaseNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"civil docket", "Case 1:19-cv-03377 Document 1-3", "1:19-cv-03377", true},
		{"criminal docket with judge suffix", "Case 9:08-cr-80736-KAM Document 1", "9:08-cr-80736-KAM", true},
		{"extra whitespace", "Case   1:19-cv-03377", "1:19-cv-03377", true},
		{"no case token", "Document 1-3 Filed 04/16/19", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCaseNumber(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractPageInfo(t *testing.T) {
	page, total, ok := ExtractPageInfo("some text\nPage 12 of 345\nmore")
	if !ok {
		t.Fatalf("expected page info to parse")
	}
	if page != 12 || total != 345 {
		t.Errorf("expected 12/345, got %d/%d", page, total)
	}

	if _, _, ok := ExtractPageInfo("nothing to see"); ok {
		t.Errorf("expected no page info")
	}
}

func TestMarker_RequiresFullLine(t *testing.T) {
	if header := Marker.FindString(sampleHeader); header != sampleHeader {
		t.Errorf("expected marker to match the full header, got %q", header)
	}
	if Marker.MatchString("Page 1 of 3") {
		t.Errorf("bare page info must not be a page boundary")
	}
	if Marker.MatchString("Case 1:19-cv-03377 was filed") {
		t.Errorf("bare case mention must not be a page boundary")
	}
}
