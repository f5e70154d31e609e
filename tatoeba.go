package ingest

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Tatoeba ingests the Tatoeba crowd-sourced sentence corpus: a flat
// directory of <sentence-id>.mp3 files plus a tab-separated sentence
// details file (id, language, text, ...).
type Tatoeba struct {
	InputDir      string
	SentencesFile string
	OutputDir     string
	TranscriptDir string
	ManifestPath  string

	Transcoder Transcoder
	Logger     *slog.Logger
}

// Ingest converts every mp3 with a known sentence and writes the manifest
func (t *Tatoeba) Ingest(ctx context.Context) (*Result, error) {
	if err := requireDir(t.InputDir, "mp3 directory"); err != nil {
		return nil, err
	}
	if err := requireFile(t.SentencesFile, "sentence details file"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(t.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.MkdirAll(t.TranscriptDir, 0755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	r := newRun("tatoeba", t.Logger, t.Transcoder)

	// Whole-corpus lookup table so each mp3 costs one map access
	transcripts, err := loadSentences(t.SentencesFile, r)
	if err != nil {
		return nil, fmt.Errorf("read sentence details: %w", err)
	}
	r.log.Info("Loaded sentence details", "sentences", len(transcripts))

	r.log.Info("Beginning audio conversions")
	i := 0
	for mp3File := range Glob(t.InputDir, "*.mp3") {
		if err := r.cancelled(ctx); err != nil {
			return nil, err
		}
		if i%100 == 0 {
			r.log.Info("Converting audio", "file", i)
		}
		i++
		r.stats.Discovered++

		id := strings.TrimSuffix(filepath.Base(mp3File), filepath.Ext(mp3File))
		text, ok := transcripts[id]
		if !ok {
			r.missingTranscript(mp3File)
			continue
		}

		r.process(ctx, AudioItem{
			Source:         mp3File,
			Output:         filepath.Join(t.OutputDir, id+".wav"),
			TranscriptPath: filepath.Join(t.TranscriptDir, id+".txt"),
			Text:           text,
			Inline:         true,
		})
	}

	return r.finish(t.ManifestPath)
}

// loadSentences maps sentence id (column 0) to text (column 2). Rows with
// fewer than three columns are logged and skipped.
func loadSentences(path string, r *run) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	transcripts := make(map[string]string)
	lineno := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		details := strings.Split(line, "\t")
		if len(details) < 3 {
			r.log.Warn("Malformed sentence details row", "file", path, "line", lineno)
			r.stats.Malformed++
			continue
		}
		transcripts[details[0]] = details[2]
	}

	return transcripts, scanner.Err()
}
