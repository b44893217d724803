// Package config loads look files: YAML documents holding a grade
// snapshot plus the preview and scope settings of a stream.
//
// Example look file:
//
//	template: cinema
//	grade:
//	  temperature: 12
//	  lift: 10
//	mask: {center_x: 40, center_y: 55, radius: 30}
//	lut: teal-orange
//	key: {chroma_threshold: 120, spill_reduction: 20, feather: 5}
//	stabilization: 30
//	preview_quality: 0.5
//	frame: {width: 1280, height: 720, fps: 30}
//	scopes: {waveform_width: 256, waveform_height: 100, trace_color: "#22d3ee"}
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vgrade"
)

// Config is a parsed look file.
type Config struct {
	// Template names a preset applied before the file's own values, so
	// explicit settings override the preset.
	Template string `yaml:"template,omitempty"`

	Look vgrade.Snapshot `yaml:",inline"`

	// Stabilization is the jitter cancellation strength, 0 to 100.
	Stabilization float64 `yaml:"stabilization"`

	// PreviewQuality is the preview scale in (0, 1].
	PreviewQuality float64 `yaml:"preview_quality"`

	Frame  FrameConfig  `yaml:"frame"`
	Scopes ScopesConfig `yaml:"scopes"`
}

// FrameConfig describes the preview frames.
type FrameConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    float64 `yaml:"fps"`
}

// ScopesConfig sizes and colors the scope plots. The vectorscope plane
// is always 280×100.
type ScopesConfig struct {
	WaveformWidth  int    `yaml:"waveform_width"`
	WaveformHeight int    `yaml:"waveform_height"`
	TraceColor     string `yaml:"trace_color"`
}

// Default returns the editor's initial settings.
func Default() *Config {
	return &Config{
		Look: vgrade.Snapshot{
			Mask: vgrade.MaskParams{CenterX: 50, CenterY: 50, Radius: 25},
			Key:  vgrade.KeyParams{ChromaThreshold: 120, SpillReduction: 20, Feather: 5},
		},
		Stabilization:  30,
		PreviewQuality: 1,
		Frame:          FrameConfig{Width: 1280, Height: 720, FPS: 30},
		Scopes:         ScopesConfig{WaveformWidth: 256, WaveformHeight: 100, TraceColor: "#22d3ee"},
	}
}

// Snapshot returns the per-frame parameter snapshot described by the file.
func (c *Config) Snapshot() vgrade.Snapshot {
	return c.Look
}

// Load reads, parses and validates a look file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("failed to read look file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	vgrade.Logger().Info("look loaded",
		"path", path,
		"template", cfg.Template,
		"lut", cfg.Look.Lut.String(),
	)
	return cfg, nil
}

// Parse overlays a YAML document onto Default, applying the template
// first, and validates the result.
func Parse(data []byte) (*Config, error) {
	var probe struct {
		Template string `yaml:"template"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse look file: %w", err)
	}

	cfg := Default()
	if probe.Template != "" {
		look, err := vgrade.ApplyTemplate(probe.Template, cfg.Look)
		if err != nil {
			return nil, &FieldError{Field: "template", Reason: err.Error()}
		}
		cfg.Look = look
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse look file: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid look file: %w", err)
	}
	return cfg, nil
}
