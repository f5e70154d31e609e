package ingest

// ConversionOptions provides additional options for the sox invocation
type ConversionOptions struct {
	// SoxPath specifies the path to the sox binary (defaults to "sox")
	SoxPath string

	// Effects contains additional SoX effects appended after the output file
	// Example: []string{"norm", "-3"} for normalization
	Effects []string

	// ShowProgress enables progress output from SoX (written to stderr)
	ShowProgress bool

	// Verbose enables verbose output from SoX for debugging
	Verbose bool
}

// DefaultOptions returns ConversionOptions with sensible defaults
func DefaultOptions() ConversionOptions {
	return ConversionOptions{
		SoxPath:      "sox",
		ShowProgress: false,
		Verbose:      false,
	}
}

// buildGlobalArgs converts ConversionOptions to SoX global arguments
func (o *ConversionOptions) buildGlobalArgs() []string {
	var args []string

	if !o.ShowProgress {
		args = append(args, "-q") // quiet mode
	}

	if o.Verbose {
		args = append(args, "-V")
	}

	return args
}

// buildEffectArgs converts effects to SoX effect arguments
func (o *ConversionOptions) buildEffectArgs() []string {
	if len(o.Effects) == 0 {
		return nil
	}
	return o.Effects
}

func (o *ConversionOptions) soxPath() string {
	if o.SoxPath == "" {
		return "sox"
	}
	return o.SoxPath
}
