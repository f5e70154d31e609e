package ingest

import (
	"fmt"
	"strconv"
)

const (
	TYPE_WAV         = "wav"
	SIGNED_INTEGER   = "signed-integer"
	UNSIGNED_INTEGER = "unsigned-integer"
	FLOATING_POINT   = "floating-point"
)

// AudioFormat describes the encoding sox writes for every ingested file
type AudioFormat struct {
	Type       string // "wav"; empty lets sox infer it from the output extension
	Encoding   string // "signed-integer", "unsigned-integer", "floating-point"
	SampleRate int    // Sample rate in Hz (16000 for speech training)
	Channels   int    // 1 = mono
	BitDepth   int    // Bits per sample: 8, 16, 24, 32

	Endian  string // --endian little|big|swap
	Comment string // --comment TEXT written into the output header

	// CustomArgs is appended after the standard output format options
	CustomArgs []string
}

var (
	// WAV_16K_MONO - WAV 16kHz mono 16-bit signed, the ingestion target
	WAV_16K_MONO = AudioFormat{
		Type:       TYPE_WAV,
		Encoding:   SIGNED_INTEGER,
		SampleRate: 16000,
		Channels:   1,
		BitDepth:   16,
	}
)

// BuildArgs converts the format to sox output options
func (f *AudioFormat) BuildArgs() []string {
	var args []string

	if f.Type != "" {
		args = append(args, "-t", f.Type)
	}

	if f.Encoding != "" {
		args = append(args, "-e", f.Encoding)
	}

	if f.BitDepth > 0 {
		args = append(args, "-b", strconv.Itoa(f.BitDepth))
	}

	if f.Endian != "" {
		args = append(args, "--endian", f.Endian)
	}

	if f.Channels > 0 {
		args = append(args, "-c", strconv.Itoa(f.Channels))
	}

	if f.SampleRate > 0 {
		args = append(args, "-r", strconv.Itoa(f.SampleRate))
	}

	if f.Comment != "" {
		args = append(args, "--comment", f.Comment)
	}

	if len(f.CustomArgs) > 0 {
		args = append(args, f.CustomArgs...)
	}

	return args
}

// Validate checks that the format can be handed to sox
func (f *AudioFormat) Validate() error {
	if f.SampleRate < 0 {
		return fmt.Errorf("%w: negative sample rate %d", ErrInvalidFormat, f.SampleRate)
	}

	if f.Channels < 0 {
		return fmt.Errorf("%w: negative channel count %d", ErrInvalidFormat, f.Channels)
	}

	switch f.BitDepth {
	case 0, 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidFormat, f.BitDepth)
	}

	switch f.Encoding {
	case "", SIGNED_INTEGER, UNSIGNED_INTEGER, FLOATING_POINT, "signed", "unsigned":
	default:
		return fmt.Errorf("%w: unknown encoding %q", ErrInvalidFormat, f.Encoding)
	}

	if f.Endian != "" {
		if f.Endian != "little" && f.Endian != "big" && f.Endian != "swap" {
			return fmt.Errorf("%w: endian must be 'little', 'big', or 'swap'", ErrInvalidFormat)
		}
	}

	return nil
}
