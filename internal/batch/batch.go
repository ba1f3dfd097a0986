// Package batch processes every supported document in an input directory and
// writes one outline record per document to an output directory. Documents
// are independent, so they run concurrently; a failed document is logged and
// skipped without aborting the rest.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/extract"
	"github.com/dgallion1/outliner/internal/outline"
)

// Summary reports the outcome of a batch run.
type Summary struct {
	Found     int
	Processed int
	Failed    int
}

// Runner walks a directory tree of documents.
type Runner struct {
	Workers int
	Stats   *extract.Stats
	Log     *slog.Logger
}

// Run processes all supported files directly under inputDir, writing
// <stem>.json outputs to outputDir.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !extract.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}

	sum := Summary{Found: len(files)}
	if len(files) == 0 {
		r.Log.Warn("no supported files found", "dir", inputDir)
		return sum, nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 4
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, name := range files {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := r.processFile(inputDir, outputDir, name)
			mu.Lock()
			if err != nil {
				sum.Failed++
				r.Log.Error("document failed", "file", name, "error", err)
			} else {
				sum.Processed++
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	r.Log.Info("batch complete",
		"found", sum.Found,
		"processed", sum.Processed,
		"failed", sum.Failed,
	)
	return sum, nil
}

func (r *Runner) processFile(inputDir, outputDir, name string) error {
	ex, err := extract.ForFile(name)
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Join(inputDir, name))
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	start := time.Now()
	spans, err := ex.Extract(f, name)
	if r.Stats != nil {
		r.Stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	result := outline.Build(spans)

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outputDir, stem+".json")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	r.Log.Info("document processed",
		"file", name,
		"title", result.Title,
		"headings", len(result.Outline),
		"output", filepath.Base(outPath),
	)
	return nil
}
