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

// IndexPattern matches LibriSpeech chapter transcript index files
const IndexPattern = "*.trans.txt"

// LibriSpeech ingests the LibriSpeech audiobook corpus. Transcript index
// files (<speaker>-<chapter>.trans.txt) anywhere under InputDir hold one
// "<speaker>-<chapter>-<utt> <text>" line per utterance; the audio lives at
// <speaker>/<chapter>/<id>.flac. Each utterance's text is written to its own
// file under TranscriptDir.
type LibriSpeech struct {
	InputDir      string
	OutputDir     string
	TranscriptDir string
	ManifestPath  string

	Transcoder Transcoder
	Logger     *slog.Logger
}

// Ingest converts every utterance listed in the index files and writes the manifest
func (l *LibriSpeech) Ingest(ctx context.Context) (*Result, error) {
	if err := requireDir(l.InputDir, "data directory"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(l.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.MkdirAll(l.TranscriptDir, 0755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	r := newRun("librispeech", l.Logger, l.Transcoder)

	// Per-utterance transcripts written by earlier runs are plain .txt and
	// may live under InputDir, so only chapter indexes are matched
	indexFiles, err := Walk(l.InputDir, IndexPattern)
	if err != nil {
		return nil, fmt.Errorf("discover transcript files: %w", err)
	}
	if len(indexFiles) == 0 {
		r.log.Error("No .trans.txt files were found", "dir", l.InputDir)
		return nil, fmt.Errorf("%w in %s", ErrNoInputFiles, l.InputDir)
	}

	r.log.Info("Beginning audio conversions", "transcript_files", len(indexFiles))
	for i, indexFile := range indexFiles {
		r.log.Info("Converting audio for transcript", "file", i, "of", len(indexFiles))

		lines, err := readLines(indexFile)
		if err != nil {
			r.log.Warn("Could not read transcript file", "file", indexFile, "error", err)
			continue
		}

		for _, line := range lines {
			if err := r.cancelled(ctx); err != nil {
				return nil, err
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			item, ok := l.resolve(line)
			if !ok {
				r.log.Warn("Malformed transcript line", "file", indexFile, "line", line)
				r.stats.Malformed++
				continue
			}

			r.stats.Discovered++
			r.process(ctx, item)
		}
	}

	return r.finish(l.ManifestPath)
}

// resolve splits "<id> <text>" at the first space and derives every path
// from the id. It reports false when the line has no text or the id lacks
// the speaker or chapter segment.
func (l *LibriSpeech) resolve(line string) (AudioItem, bool) {
	id, text, found := strings.Cut(line, " ")
	if !found || id == "" {
		return AudioItem{}, false
	}

	source, ok := l.flacPath(id)
	if !ok {
		return AudioItem{}, false
	}

	return AudioItem{
		Source:         source,
		Output:         filepath.Join(l.OutputDir, id+".wav"),
		TranscriptPath: filepath.Join(l.TranscriptDir, id+".txt"),
		Text:           strings.TrimRight(text, "\r\n"),
		Inline:         true,
	}, true
}

// flacPath maps "19-198-0001" to <InputDir>/19/198/19-198-0001.flac. The
// first two segments name the directories; further segments are optional.
func (l *LibriSpeech) flacPath(id string) (string, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	return filepath.Join(l.InputDir, parts[0], parts[1], id+".flac"), true
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
