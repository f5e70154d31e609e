// Command ingest-vctk converts the CSTR VCTK corpus to 16kHz mono WAV and
// writes a manifest pairing each file with its existing transcript.
package main

import (
	"log/slog"

	ingest "github.com/thadeu/go-speech-ingest"
	"github.com/thadeu/go-speech-ingest/internal/cli"
)

func main() {
	cli.Command{
		Name: "ingest-vctk",
		Args: []string{"manifest_file", "input_directory", "output_directory"},
		Build: func(args []string, logger *slog.Logger) ingest.Ingester {
			return &ingest.VCTK{
				ManifestPath: args[0],
				InputDir:     args[1],
				OutputDir:    args[2],
				Logger:       logger,
			}
		},
	}.Main()
}
