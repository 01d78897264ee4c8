package parser

import (
	"strings"
	"testing"
)

func TestHTMLExtractorBlocks(t *testing.T) {
	input := `<html><head><title>skip</title><style>p{color:red}</style></head>
<body>
<nav>navigation junk</nav>
<h1>Deposition Transcript</h1>
<p>First paragraph.</p>
<ul><li>one</li><li>two</li></ul>
<script>var x = 1;</script>
<footer>footer junk</footer>
</body></html>`

	e := &HTMLExtractor{}
	got, err := e.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, want := range []string{"Deposition Transcript", "First paragraph.", "one", "two"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
	for _, junk := range []string{"navigation junk", "footer junk", "var x", "color:red"} {
		if strings.Contains(got, junk) {
			t.Errorf("expected %q excluded, got %q", junk, got)
		}
	}
}

func TestHTMLExtractorNoBlockMarkup(t *testing.T) {
	e := &HTMLExtractor{}
	got, err := e.Extract(strings.NewReader("<html><body>bare text</body></html>"), "page.html")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "bare text" {
		t.Errorf("expected fallback text content, got %q", got)
	}
}
