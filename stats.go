package ingest

import "log/slog"

// Stats counts what happened to the items of one ingestion run
type Stats struct {
	Discovered        int // audio items (or index lines) considered
	Recorded          int // items written to the manifest
	MissingTranscript int // no transcript file or no metadata entry
	FailedConversion  int // sox exited non-zero
	FailedTranscript  int // transcript text could not be written
	Malformed         int // unparseable index or metadata lines
}

// Skipped returns the number of items that never reached the manifest
func (s Stats) Skipped() int {
	return s.MissingTranscript + s.FailedConversion + s.FailedTranscript
}

// SuccessRate returns the recorded share of discovered items as a percentage
func (s Stats) SuccessRate() float64 {
	if s.Discovered == 0 {
		return 100.0
	}
	return float64(s.Recorded) / float64(s.Discovered) * 100.0
}

// LogValue implements slog.LogValuer
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("discovered", s.Discovered),
		slog.Int("recorded", s.Recorded),
		slog.Int("skipped", s.Skipped()),
		slog.Int("missing_transcript", s.MissingTranscript),
		slog.Int("failed_conversion", s.FailedConversion),
		slog.Int("failed_transcript", s.FailedTranscript),
		slog.Int("malformed", s.Malformed),
		slog.Float64("success_rate", s.SuccessRate()),
	)
}
