// Command ingest-librispeech converts LibriSpeech flac files to 16kHz mono
// WAV, extracts one transcript file per utterance and writes a manifest.
package main

import (
	"log/slog"

	ingest "github.com/thadeu/go-speech-ingest"
	"github.com/thadeu/go-speech-ingest/internal/cli"
)

func main() {
	cli.Command{
		Name: "ingest-librispeech",
		Args: []string{"manifest_file", "input_directory", "output_directory", "transcript_directory"},
		Build: func(args []string, logger *slog.Logger) ingest.Ingester {
			return &ingest.LibriSpeech{
				ManifestPath:  args[0],
				InputDir:      args[1],
				OutputDir:     args[2],
				TranscriptDir: args[3],
				Logger:        logger,
			}
		},
	}.Main()
}
