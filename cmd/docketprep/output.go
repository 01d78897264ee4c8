package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/docketprep/internal/corpus"
)

var (
	// titleStyle for summary headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted label text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for warnings inside summaries
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for summary boxes
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatRunSummary renders the end-of-run box for the build command.
func FormatRunSummary(w io.Writer, res *corpus.Result, output string) {
	lines := []string{
		titleStyle.Render("Corpus build complete"),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			dimStyle.Render("Files:"), res.Files,
			dimStyle.Render("Records:"), len(res.Records),
			dimStyle.Render("Skipped:"), len(res.Skipped)),
		fmt.Sprintf("%s %s", dimStyle.Render("Output:"), output),
	}
	if res.Stats.Count > 0 {
		lines = append(lines, fmt.Sprintf("%s p50 %.0fms  p95 %.0fms  max %dms",
			dimStyle.Render("Per-file:"), res.Stats.P50Ms, res.Stats.P95Ms, res.Stats.MaxMs))
	}
	if res.Files == 0 {
		lines = append(lines, warnStyle.Render("warning: no input files found"))
	}
	for _, s := range res.Skipped {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("skipped: %s (%s)", s.Path, s.Reason)))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatChunkSummary renders the chunk command summary.
func FormatChunkSummary(w io.Writer, records int, written []string) {
	lines := []string{
		titleStyle.Render("Artifact chunked"),
		fmt.Sprintf("%s %d  %s %d",
			dimStyle.Render("Records:"), records,
			dimStyle.Render("Parts:"), len(written)),
	}
	for _, path := range written {
		lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("-"), filepath.Base(path)))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatPushSummary renders the push command summary.
func FormatPushSummary(w io.Writer, records, batches int, index string) {
	content := titleStyle.Render("Import complete") + "\n" +
		fmt.Sprintf("%s %d  %s %d  %s %s",
			dimStyle.Render("Records:"), records,
			dimStyle.Render("Batches:"), batches,
			dimStyle.Render("Index:"), index)
	fmt.Fprintln(w, boxStyle.Render(content))
}
