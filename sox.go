package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Transcoder converts one source audio file into the ingestion format.
// A false return means the item must be skipped; it never aborts a run.
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) bool
}

// Converter handles file-to-file audio conversion using SoX
type Converter struct {
	Output  AudioFormat
	Options ConversionOptions
	Logger  *slog.Logger
}

// NewConverter creates a Converter writing 16kHz 16-bit signed mono WAV
func NewConverter() *Converter {
	return &Converter{
		Output:  WAV_16K_MONO,
		Options: DefaultOptions(),
	}
}

// WithOutput sets the target format
func (c *Converter) WithOutput(format AudioFormat) *Converter {
	c.Output = format
	return c
}

// WithOptions sets custom conversion options
func (c *Converter) WithOptions(opts ConversionOptions) *Converter {
	c.Options = opts
	return c
}

// WithLogger sets the logger used for conversion diagnostics
func (c *Converter) WithLogger(logger *slog.Logger) *Converter {
	c.Logger = logger
	return c
}

// ConvertFile converts audio from an input file to an output file.
// The input format is detected by sox from the file header.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	args := c.buildCommandArgs(inputPath, outputPath)
	cmd := exec.CommandContext(ctx, c.Options.soxPath(), args...)

	// Capture stderr
	stderr, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("sox conversion failed: %w\nstderr: %s", err, string(stderr))
	}

	return nil
}

// Transcode runs ConvertFile and reports whether sox exited with status zero
func (c *Converter) Transcode(ctx context.Context, inputPath, outputPath string) bool {
	if err := c.ConvertFile(ctx, inputPath, outputPath); err != nil {
		c.logger().Debug("sox failed", "input", inputPath, "output", outputPath, "error", err)
		return false
	}
	return true
}

// buildCommandArgs constructs the complete SoX command arguments
func (c *Converter) buildCommandArgs(inputPath, outputPath string) []string {
	args := []string{}

	// Global options
	args = append(args, c.Options.buildGlobalArgs()...)

	args = append(args, inputPath)

	// Output format arguments
	args = append(args, c.Output.BuildArgs()...)

	args = append(args, outputPath)

	// Effects
	if effects := c.Options.buildEffectArgs(); len(effects) > 0 {
		args = append(args, effects...)
	}

	return args
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// CheckSoxInstalled verifies that SoX is installed and accessible
func CheckSoxInstalled(soxPath string) error {
	if soxPath == "" {
		soxPath = "sox"
	}

	cmd := exec.Command(soxPath, "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSoxNotFound, soxPath, err)
	}

	return nil
}
