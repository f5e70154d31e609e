package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Ingester converts one corpus layout into audio/transcript manifest rows
type Ingester interface {
	Ingest(ctx context.Context) (*Result, error)
}

// Result is what a completed run produced
type Result struct {
	RunID        uuid.UUID
	ManifestPath string
	Manifest     *Manifest
	Stats        Stats
}

// AudioItem is one source audio unit and where its outputs go.
// When Inline is set, Text is written to TranscriptPath after conversion;
// otherwise TranscriptPath names an existing transcript file.
type AudioItem struct {
	Source         string
	Output         string
	TranscriptPath string
	Text           string
	Inline         bool
}

// run carries the per-invocation accumulator shared by an adapter's loop
type run struct {
	id         uuid.UUID
	log        *slog.Logger
	transcoder Transcoder
	manifest   *Manifest
	stats      Stats
}

func newRun(corpus string, logger *slog.Logger, transcoder Transcoder) *run {
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	logger = logger.With("corpus", corpus, "run_id", id.String())

	if transcoder == nil {
		transcoder = NewConverter().WithLogger(logger)
	}

	return &run{
		id:         id,
		log:        logger,
		transcoder: transcoder,
		manifest:   &Manifest{},
	}
}

// process converts one item, writes its inline transcript and records it.
// Failures are logged and counted; the caller moves on to the next item.
func (r *run) process(ctx context.Context, item AudioItem) bool {
	if !r.transcoder.Transcode(ctx, item.Source, item.Output) {
		r.log.Warn("Audio conversion failed", "source", item.Source)
		r.stats.FailedConversion++
		return false
	}

	if item.Inline {
		if err := os.WriteFile(item.TranscriptPath, []byte(item.Text+"\n"), 0644); err != nil {
			r.log.Warn("Could not write transcript", "source", item.Source, "transcript", item.TranscriptPath, "error", err)
			r.stats.FailedTranscript++
			return false
		}
	}

	r.manifest.Add(item.Output, item.TranscriptPath)
	r.stats.Recorded++
	return true
}

// cancelled reports a cancelled context as a run error. The manifest is
// left untouched so a partial run never replaces a complete one.
func (r *run) cancelled(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	r.log.Warn("Ingestion cancelled", "recorded", r.stats.Recorded)
	return fmt.Errorf("ingestion cancelled: %w", err)
}

// missingTranscript logs and counts an item whose transcript is unavailable
func (r *run) missingTranscript(source string) {
	r.log.Warn("Could not find transcript", "source", source)
	r.stats.MissingTranscript++
}

// finish writes the manifest once and returns the run result
func (r *run) finish(manifestPath string) (*Result, error) {
	r.log.Info("Writing manifest file", "path", manifestPath, "rows", r.manifest.Len())
	if err := r.manifest.Write(manifestPath); err != nil {
		return nil, err
	}

	r.log.Info("Ingestion finished", "stats", r.stats)
	return &Result{
		RunID:        r.id,
		ManifestPath: manifestPath,
		Manifest:     r.manifest,
		Stats:        r.stats,
	}, nil
}

// progressStep returns the interval giving roughly ten progress lines over n items
func progressStep(n int) int {
	if n < 10 {
		return 1
	}
	return n / 10
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s %s", ErrMissingInput, what, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s %s is not a directory", ErrMissingInput, what, path)
	}
	return nil
}

func requireFile(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s %s", ErrMissingInput, what, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s %s is a directory", ErrMissingInput, what, path)
	}
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
