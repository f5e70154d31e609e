// Package ingest converts speech corpora into a uniform training layout:
// 16kHz, 16-bit signed, mono WAV files, each paired with a plain-text
// transcript, indexed by a manifest of "audio,transcript" rows.
//
// # Corpora
//
// Three layouts are supported, each by its own Ingester:
//   - VCTK: wav48/<speaker>/<utt>.wav with txt/<speaker>/<utt>.txt
//   - LibriSpeech: <speaker>/<chapter>/<id>.flac with *.trans.txt index files
//   - Tatoeba: a flat directory of <id>.mp3 plus a tab-separated sentence file
//
// # Basic Usage
//
//	result, err := (&ingest.LibriSpeech{
//	    InputDir:      "LibriSpeech/dev-clean",
//	    OutputDir:     "out/wav",
//	    TranscriptDir: "out/txt",
//	    ManifestPath:  "out/manifest.csv",
//	}).Ingest(ctx)
//
// Items whose transcript cannot be resolved, or whose conversion fails, are
// logged and left out of the manifest; the run continues. Missing input
// directories abort the run with ErrMissingInput before anything is written.
//
// # Conversion
//
// Audio is converted one file at a time by the sox binary:
//
//	sox -q <input> -t wav -e signed-integer -b 16 -c 1 -r 16000 <output>
//
// Verify installation:
//
//	err := ingest.CheckSoxInstalled("")
//
// # Manifest
//
// Rows are written in processing order with no header and no quoting, so
// paths must not contain commas. ReadManifest parses a manifest back,
// skipping blank lines and '#' comments.
package ingest
