package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/outliner/internal/extract"
	"github.com/dgallion1/outliner/internal/outline"
)

// Worker processes a single outline job.
type Worker struct {
	stats *extract.Stats
	log   *slog.Logger
}

func NewWorker(stats *extract.Stats, log *slog.Logger) *Worker {
	return &Worker{
		stats: stats,
		log:   log,
	}
}

// Process runs the full outline pipeline for a job. Once spans are
// extracted the pipeline cannot fail: an empty or degenerate document still
// yields the canonical result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Extract spans.
	job.SetStatus(StatusExtracting, "extracting")
	ex, err := extract.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	start := time.Now()
	spans, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	w.stats.Record(time.Since(start).Milliseconds())
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Build the outline.
	job.SetStatus(StatusAnalyzing, "analyzing")
	result := outline.Build(spans)

	job.SetCounts(len(spans), len(result.Outline))
	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("outline complete",
		"spans", len(spans),
		"headings", len(result.Outline),
		"title", result.Title,
	)
}
