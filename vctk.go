package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// VCTK ingests the CSTR VCTK studio corpus: wav48/<speaker>/<utt>.wav with
// transcripts at txt/<speaker>/<utt>.txt. Existing transcript files are
// referenced in place; nothing is written next to them.
type VCTK struct {
	InputDir     string
	OutputDir    string // defaults to <InputDir>/ingested
	ManifestPath string // defaults to <InputDir>/manifest.csv

	WavDir string // audio subtree under InputDir, defaults to "wav48"
	TxtDir string // transcript subtree under InputDir, defaults to "txt"

	Transcoder Transcoder
	Logger     *slog.Logger
}

func (v *VCTK) defaults() {
	if v.OutputDir == "" {
		v.OutputDir = filepath.Join(v.InputDir, "ingested")
	}
	if v.ManifestPath == "" {
		v.ManifestPath = filepath.Join(v.InputDir, "manifest.csv")
	}
	if v.WavDir == "" {
		v.WavDir = "wav48"
	}
	if v.TxtDir == "" {
		v.TxtDir = "txt"
	}
}

// Ingest converts every speaker's wavs and writes the manifest
func (v *VCTK) Ingest(ctx context.Context) (*Result, error) {
	v.defaults()

	wavDir := filepath.Join(v.InputDir, v.WavDir)
	txtDir := filepath.Join(v.InputDir, v.TxtDir)
	if err := requireDir(wavDir, "wav directory"); err != nil {
		return nil, err
	}
	if err := requireDir(txtDir, "transcript directory"); err != nil {
		return nil, err
	}

	r := newRun("vctk", v.Logger, v.Transcoder)

	// One output directory per speaker
	speakers, err := os.ReadDir(wavDir)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	for _, speaker := range speakers {
		if !speaker.IsDir() {
			continue
		}
		if err := os.MkdirAll(filepath.Join(v.OutputDir, speaker.Name()), 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	filenames, err := Walk(wavDir, "*.wav")
	if err != nil {
		return nil, fmt.Errorf("discover wav files: %w", err)
	}
	if len(filenames) == 0 {
		r.log.Error("No .wav files were found", "dir", wavDir)
		return nil, fmt.Errorf("%w in %s", ErrNoInputFiles, wavDir)
	}

	r.log.Info("Beginning audio conversions", "files", len(filenames))
	step := progressStep(len(filenames))
	for i, fname := range filenames {
		if err := r.cancelled(ctx); err != nil {
			return nil, err
		}
		if i%step == 0 {
			r.log.Info("Converting audio", "file", i, "of", len(filenames))
		}
		r.stats.Discovered++

		item, ok := v.resolve(txtDir, fname)
		if !ok {
			r.missingTranscript(fname)
			continue
		}

		r.process(ctx, item)
	}

	return r.finish(v.ManifestPath)
}

// resolve maps wav48/<speaker>/<utt>.wav to its output path and to the
// transcript at txt/<speaker>/<utt>.txt, reporting whether that file exists.
func (v *VCTK) resolve(txtDir, fname string) (AudioItem, bool) {
	speaker := filepath.Base(filepath.Dir(fname))
	base := filepath.Base(fname)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	item := AudioItem{
		Source:         fname,
		Output:         filepath.Join(v.OutputDir, speaker, base),
		TranscriptPath: filepath.Join(txtDir, speaker, stem+".txt"),
	}
	return item, isFile(item.TranscriptPath)
}
