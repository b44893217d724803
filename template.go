package vgrade

import "fmt"

// Template names accepted by ApplyTemplate.
const (
	TemplateCinema     = "cinema"
	TemplateGaming     = "gaming"
	TemplateIntroOutro = "introOutro"
)

// ApplyTemplate returns s with the named look preset applied. Presets
// set individual controls and leave the rest of s alone:
//
//   - cinema: cinematic LUT, contrast 18
//   - gaming: saturation 25
//   - introOutro: title-only preset, the grade is unchanged
//
// Names are matched like LUT names. Unknown names return
// ErrUnknownTemplate and s unchanged.
func ApplyTemplate(name string, s Snapshot) (Snapshot, error) {
	switch foldName(name) {
	case foldName(TemplateCinema):
		s.Lut = LutCinematic
		s.Grade.Contrast = 18
	case foldName(TemplateGaming):
		s.Grade.Saturation = 25
	case foldName(TemplateIntroOutro):
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return s, nil
}
