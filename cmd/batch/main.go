package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/outliner/internal/batch"
	"github.com/dgallion1/outliner/internal/extract"
)

func main() {
	inputDir := flag.String("input", "input", "directory of documents to process")
	outputDir := flag.String("output", "output", "directory for outline JSON files")
	workers := flag.Int("workers", 4, "concurrent documents")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if _, err := os.Stat(*inputDir); err != nil {
		log.Error("input directory does not exist", "dir", *inputDir)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := &batch.Runner{
		Workers: *workers,
		Stats:   extract.NewStats(time.Hour),
		Log:     log,
	}

	log.Info("starting outline extraction", "input", *inputDir, "output", *outputDir)
	sum, err := runner.Run(ctx, *inputDir, *outputDir)
	if err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	if sum.Failed > 0 {
		os.Exit(1)
	}
}
