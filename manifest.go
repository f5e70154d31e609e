package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestDelimiter separates the fields of a manifest row. Fields are
// written verbatim, so paths and transcripts must not contain it.
const ManifestDelimiter = ","

// Record is one manifest row
type Record struct {
	Audio      string
	Transcript string
}

// Manifest accumulates index-aligned audio and transcript columns in
// insertion order. It is not safe for concurrent use.
type Manifest struct {
	audio       []string
	transcripts []string
}

// Add appends one successfully ingested item to both columns
func (m *Manifest) Add(audioPath, transcript string) {
	m.audio = append(m.audio, audioPath)
	m.transcripts = append(m.transcripts, transcript)
}

// Len returns the number of rows
func (m *Manifest) Len() int {
	return len(m.audio)
}

// Records returns the rows in insertion order
func (m *Manifest) Records() []Record {
	records := make([]Record, len(m.audio))
	for i := range m.audio {
		records[i] = Record{Audio: m.audio[i], Transcript: m.transcripts[i]}
	}
	return records
}

// Write persists the manifest to path, replacing any existing file
func (m *Manifest) Write(path string) error {
	return WriteManifest(path, m.audio, m.transcripts)
}

// WriteManifest writes one line per index, joining the values found at that
// index in every column. Output stops at the shortest column. An existing
// file is truncated.
func WriteManifest(path string, columns ...[]string) error {
	rows := 0
	for i, col := range columns {
		if i == 0 || len(col) < rows {
			rows = len(col)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	w := bufio.NewWriter(f)
	fields := make([]string, len(columns))
	for i := 0; i < rows; i++ {
		for j, col := range columns {
			fields[j] = col[i]
		}
		if _, err := w.WriteString(strings.Join(fields, ManifestDelimiter) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("%w: %w", ErrManifestWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrManifestWrite, err)
	}

	return nil
}

// ReadManifest parses a two-column manifest. Blank lines and lines starting
// with '#' are ignored. When root is not empty every field is joined under
// it. Every row must carry the same number of fields as the first one.
func ReadManifest(path, root string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}
	defer f.Close()

	var records []Record
	width := 0
	lineno := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ManifestDelimiter)
		if root != "" {
			for i := range fields {
				fields[i] = filepath.Join(root, fields[i])
			}
		}

		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrManifestRead, lineno, len(fields), width)
		}
		if width != 2 {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected audio and transcript", ErrManifestRead, lineno, width)
		}

		records = append(records, Record{Audio: fields[0], Transcript: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}

	return records, nil
}
