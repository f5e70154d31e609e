// Command ingest-tatoeba converts Tatoeba mp3 files to 16kHz mono WAV,
// writes each sentence's text to a transcript file and writes a manifest.
package main

import (
	"log/slog"

	ingest "github.com/thadeu/go-speech-ingest"
	"github.com/thadeu/go-speech-ingest/internal/cli"
)

func main() {
	cli.Command{
		Name: "ingest-tatoeba",
		Args: []string{"manifest_file", "input_directory", "sentence_details", "output_directory", "transcript_directory"},
		Build: func(args []string, logger *slog.Logger) ingest.Ingester {
			return &ingest.Tatoeba{
				ManifestPath:  args[0],
				InputDir:      args[1],
				SentencesFile: args[2],
				OutputDir:     args[3],
				TranscriptDir: args[4],
				Logger:        logger,
			}
		},
	}.Main()
}
