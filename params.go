package vgrade

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// GradeParams holds the primary and secondary grade controls.
// Contrast, Saturation, Gamma and Gain are percentage offsets from
// neutral; zero leaves the image unchanged. Temperature is a signed
// warm/cool control, not Kelvin.
//
// Lift, Gamma and Gain only act inside the mask.
type GradeParams struct {
	Brightness  float64 `yaml:"brightness"`
	Contrast    float64 `yaml:"contrast"`
	Saturation  float64 `yaml:"saturation"`
	Temperature float64 `yaml:"temperature"`
	Lift        float64 `yaml:"lift"`
	Gamma       float64 `yaml:"gamma"`
	Gain        float64 `yaml:"gain"`
}

// MaskParams defines the circular region for the secondary grade.
// CenterX and CenterY are percentages of the frame width and height;
// Radius is a percentage of the shorter dimension.
type MaskParams struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
}

// KeyParams controls the green-screen keyer.
//
// ChromaThreshold serves two roles: it is the hue-distance gate for
// classifying a pixel as green (scaled by 0.2) and the amount subtracted
// from alpha for classified pixels.
type KeyParams struct {
	ChromaThreshold float64 `yaml:"chroma_threshold"`
	SpillReduction  float64 `yaml:"spill_reduction"`
	Feather         float64 `yaml:"feather"`
}

// Snapshot is the immutable set of parameters for one frame.
// It is passed by value; the pipeline never writes to it.
type Snapshot struct {
	Grade GradeParams `yaml:"grade"`
	Mask  MaskParams  `yaml:"mask"`
	Lut   LutName     `yaml:"lut"`
	Key   KeyParams   `yaml:"key"`
}

// LutName selects one of the built-in tints.
type LutName uint8

const (
	LutNone LutName = iota
	LutCinematic
	LutTealOrange
	LutVintage
)

var lutNames = [...]string{
	LutNone:       "none",
	LutCinematic:  "cinematic",
	LutTealOrange: "tealOrange",
	LutVintage:    "vintage",
}

// String returns the canonical name, e.g. "tealOrange".
func (l LutName) String() string {
	if int(l) < len(lutNames) {
		return lutNames[l]
	}
	return fmt.Sprintf("LutName(%d)", uint8(l))
}

// ParseLutName resolves a LUT name. Matching ignores case and the
// separators '-', '_' and ' ', so "teal-orange" selects LutTealOrange.
// The empty string selects LutNone.
func ParseLutName(s string) (LutName, error) {
	key := foldName(s)
	if key == "" {
		return LutNone, nil
	}
	for i, name := range lutNames {
		if foldName(name) == key {
			return LutName(i), nil
		}
	}
	return LutNone, fmt.Errorf("%w: %q", ErrUnknownLut, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l LutName) MarshalText() ([]byte, error) {
	if int(l) >= len(lutNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLut, uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LutName) UnmarshalText(text []byte) error {
	v, err := ParseLutName(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

var nameSeparators = strings.NewReplacer("-", "", "_", "", " ", "")

func foldName(s string) string {
	return cases.Fold().String(nameSeparators.Replace(strings.TrimSpace(s)))
}
