// Package vgrade implements the per-frame color pipeline of a video
// preview: a color grade with a masked secondary grade, a LUT tint and a
// green-screen key, followed by waveform and vectorscope sampling.
//
// # Quick Start
//
//	import "github.com/gogpu/vgrade"
//
//	frame := vgrade.FromImage(img)
//	snap := vgrade.Snapshot{
//	    Grade: vgrade.GradeParams{Contrast: 18, Temperature: 10},
//	    Mask:  vgrade.MaskParams{CenterX: 50, CenterY: 50, Radius: 25},
//	    Lut:   vgrade.LutCinematic,
//	    Key:   vgrade.KeyParams{ChromaThreshold: 120, SpillReduction: 20, Feather: 5},
//	}
//	if _, err := vgrade.Process(frame, snap); err != nil {
//	    return err
//	}
//	scopes, _ := vgrade.Analyze(frame, 256, 100)
//
// # Stage Order
//
// Process runs the stages in a fixed order on one buffer:
//
//  1. Grade: contrast about mid gray, brightness and temperature,
//     saturation about the pixel average, then lift/gamma/gain inside
//     the mask circle only.
//  2. LUT: one multiplicative tint (none, cinematic, tealOrange, vintage).
//  3. Key: green classification, alpha falloff and spill suppression.
//
// Values stay unclamped floating point between stages and are clamped to
// [0, 255] once, when written back. The standalone Grade, ApplyLut and Key
// functions clamp on their own write and therefore differ from Process
// when an intermediate value overshoots.
//
// # Concurrency
//
// Nothing in the package keeps per-frame state. Distinct buffers may be
// processed from different goroutines. A Pipeline created with WithWorkers
// additionally splits each frame into row bands.
//
// # Scopes
//
// The waveform reads one randomly chosen row per output column, so two
// analyses of the same frame differ. Inject a seeded *rand.Rand through
// NewAnalyzer for reproducible output.
//
// # Sub-packages
//
//   - plot: rasterizes scope samples into images
//   - stream: frame source, display sink and multicam preview loops
//   - config: YAML look files
package vgrade
