package corpus

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dgallion1/docketprep/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const pageOne = "Case 1:19-cv-03377 Document 58-3 Filed 01/13/20 Page 1 of 2\n\nbody one\n"
const pageTwo = "Case 1:19-cv-03377 Document 58-3 Filed 01/13/20 Page 2 of 2\n\nbody two\n"

func testConfig(root string) config.Config {
	cfg := config.Default()
	cfg.Root = root
	cfg.Concurrency = 2
	return cfg
}

func TestRunAggregatesInDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "001", "alpha.txt"), pageOne+pageTwo)
	writeFile(t, filepath.Join(root, "001", "beta.txt"), "no markers here\n")
	writeFile(t, filepath.Join(root, "zeta.txt"), pageOne)

	proc := NewProcessor(testConfig(root), testLogger())
	res, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Files != 3 {
		t.Errorf("expected 3 files, got %d", res.Files)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("expected no skipped files, got %v", res.Skipped)
	}

	wantIDs := []string{"alpha_page_1", "alpha_page_2", "beta_page_1", "zeta_page_1"}
	if len(res.Records) != len(wantIDs) {
		t.Fatalf("expected %d records, got %d", len(wantIDs), len(res.Records))
	}
	for i, want := range wantIDs {
		if res.Records[i].ID != want {
			t.Errorf("record %d: expected id %q, got %q", i, want, res.Records[i].ID)
		}
	}

	first := res.Records[0]
	if first.Folder != "001" {
		t.Errorf("expected folder %q, got %q", "001", first.Folder)
	}
	if first.SourceFile != "001/alpha.txt" {
		t.Errorf("expected source_file %q, got %q", "001/alpha.txt", first.SourceFile)
	}
	if first.CaseNumber == nil || *first.CaseNumber != "1:19-cv-03377" {
		t.Errorf("expected case number 1:19-cv-03377, got %v", first.CaseNumber)
	}

	top := res.Records[3]
	if top.Folder != "root" {
		t.Errorf("expected top-level folder %q, got %q", "root", top.Folder)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		writeFile(t, filepath.Join(root, name), pageOne+pageTwo)
	}

	proc := NewProcessor(testConfig(root), testLogger())
	first, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("runs over the same corpus should produce identical records")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	proc := NewProcessor(testConfig(t.TempDir()), testLogger())
	res, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Records == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(res.Records) != 0 {
		t.Errorf("expected no records, got %d", len(res.Records))
	}
}

func TestRunSkipsUnparseableFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.txt"), pageOne)
	// Claims to be docx but holds no zip structure.
	writeFile(t, filepath.Join(root, "broken.docx"), "not a real archive")

	cfg := testConfig(root)
	cfg.Extensions = []string{".txt", ".docx"}
	proc := NewProcessor(cfg, testLogger())
	res, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped file, got %d", len(res.Skipped))
	}
	if filepath.Base(res.Skipped[0].Path) != "broken.docx" {
		t.Errorf("unexpected skipped path %q", res.Skipped[0].Path)
	}
	if len(res.Records) != 1 || res.Records[0].ID != "good_page_1" {
		t.Errorf("expected only the readable file's record, got %d records", len(res.Records))
	}
}

func TestWalkDirFiltersAndSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b")
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "notes.md"), "md")
	writeFile(t, filepath.Join(root, ".hidden.txt"), "hidden")
	writeFile(t, filepath.Join(root, ".git", "config.txt"), "hidden dir")

	files, err := WalkDir(root, []string{".txt"})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}
