// Package corpus walks a directory tree of court documents and aggregates the
// per-page records of every readable file into one ordered collection.
package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/docketprep/internal/config"
	"github.com/dgallion1/docketprep/internal/parser"
	"github.com/dgallion1/docketprep/internal/record"
	"github.com/dgallion1/docketprep/internal/splitter"
)

// SkippedFile reports one file left out of the batch and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result is the outcome of one corpus run.
type Result struct {
	Records []record.Record
	Files   int // input files discovered
	Skipped []SkippedFile
	Stats   FileStats // per-file processing latency summary
}

// Processor runs the extraction pipeline over a corpus root.
type Processor struct {
	root        string
	extensions  []string
	concurrency int
	parserOpts  parser.Options
	log         *slog.Logger
}

func NewProcessor(cfg config.Config, log *slog.Logger) *Processor {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Processor{
		root:        cfg.Root,
		extensions:  cfg.Extensions,
		concurrency: concurrency,
		parserOpts:  parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		log:         log,
	}
}

// Run discovers, parses and splits every corpus file, returning the flat
// record collection in discovery order then page order. A file that cannot be
// read or parsed is skipped and reported; the batch always completes.
func (p *Processor) Run(ctx context.Context) (*Result, error) {
	files, err := WalkDir(p.root, p.extensions)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", p.root, err)
	}
	if len(files) == 0 {
		p.log.Warn("no input files found", "root", p.root, "extensions", p.extensions)
		return &Result{Records: []record.Record{}}, nil
	}
	p.log.Info("corpus discovered", "root", p.root, "files", len(files))

	// Files are independent, so they process in parallel. Results land in
	// per-file slots indexed by discovery position: the aggregated order is
	// the deterministic walk order, never completion order.
	perFile := make([][]record.Record, len(files))
	skipped := make([]*SkippedFile, len(files))
	durations := make([]time.Duration, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			records, err := p.processFile(path)
			durations[i] = time.Since(start)
			if err != nil {
				p.log.Warn("skipping file", "path", path, "error", err)
				skipped[i] = &SkippedFile{Path: path, Reason: err.Error()}
				return nil
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Records: []record.Record{},
		Files:   len(files),
		Stats:   SummarizeDurations(durations),
	}
	for _, records := range perFile {
		res.Records = append(res.Records, records...)
	}
	for _, s := range skipped {
		if s != nil {
			res.Skipped = append(res.Skipped, *s)
		}
	}

	p.log.Info("corpus processed",
		"files", res.Files,
		"records", len(res.Records),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

// processFile turns one file into its page records.
func (p *Processor) processFile(path string) ([]record.Record, error) {
	extractor, err := parser.ForFile(path, p.parserOpts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	text, err := extractor.Extract(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	doc := p.documentFor(path, text)
	return record.Build(doc, splitter.Split(text)), nil
}

// documentFor resolves the folder, document id and source-relative path for a
// corpus file.
func (p *Processor) documentFor(path, text string) record.Document {
	rel, err := filepath.Rel(p.root, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	folder := "root"
	if dir := filepath.Dir(rel); dir != "." {
		folder = filepath.Base(dir)
	}

	base := filepath.Base(path)
	return record.Document{
		Path:       path,
		SourceFile: filepath.ToSlash(rel),
		Folder:     folder,
		ID:         strings.TrimSuffix(base, filepath.Ext(base)),
		Text:       text,
	}
}
