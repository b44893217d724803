package config

import "github.com/gogpu/vgrade/plot"

// FieldError reports one invalid setting.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "config: " + e.Field + ": " + e.Reason
}

// Validate checks the ranges the pipeline and stream rely on and fills
// the trace color when it is empty. Grade values are unbounded: the
// pipeline clamps whatever they produce.
func Validate(cfg *Config) error {
	if cfg.Look.Mask.Radius < 0 {
		return &FieldError{Field: "mask.radius", Reason: "must be >= 0"}
	}
	if cfg.Stabilization < 0 || cfg.Stabilization > 100 {
		return &FieldError{Field: "stabilization", Reason: "must be between 0 and 100"}
	}
	if !(cfg.PreviewQuality > 0 && cfg.PreviewQuality <= 1) {
		return &FieldError{Field: "preview_quality", Reason: "must be in (0, 1]"}
	}
	if cfg.Frame.Width <= 0 || cfg.Frame.Height <= 0 {
		return &FieldError{Field: "frame", Reason: "width and height must be > 0"}
	}
	if !(cfg.Frame.FPS > 0) {
		return &FieldError{Field: "frame.fps", Reason: "must be > 0"}
	}
	if cfg.Scopes.WaveformWidth < 0 || cfg.Scopes.WaveformHeight < 0 {
		return &FieldError{Field: "scopes", Reason: "waveform size must be >= 0"}
	}

	if cfg.Scopes.TraceColor == "" {
		cfg.Scopes.TraceColor = "#22d3ee"
	}
	if _, err := plot.ParseTraceColor(cfg.Scopes.TraceColor); err != nil {
		return &FieldError{Field: "scopes.trace_color", Reason: err.Error()}
	}
	return nil
}
