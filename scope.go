package vgrade

import (
	"image/color"
	"math/rand/v2"
)

// Vectorscope plane dimensions. The plane is fixed regardless of the
// frame size.
const (
	VectorscopeWidth  = 280
	VectorscopeHeight = 100
)

// WaveformSample is one waveform dot.
type WaveformSample struct {
	Column int     // output column in [0, waveform width)
	Luma   float64 // Rec. 709 luma in [0, 255]
	Y      float64 // plot row: height - luma/255*height
}

// VectorscopeSample is one vectorscope dot.
type VectorscopeSample struct {
	U     float64     // R-G+128 clamped to [0, 279]
	V     float64     // (B-G+128)/2 clamped to [0, 99]
	Color color.NRGBA // source pixel, opaque
}

// Scopes holds the sample sets for one frame.
type Scopes struct {
	Waveform    []WaveformSample
	Vectorscope []VectorscopeSample
}

// Analyzer derives waveform and vectorscope samples from a graded frame.
//
// Each waveform column reads a single pixel from a randomly chosen row.
// This is a cheap approximation of a full-column waveform and its output
// varies between calls on the same frame.
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer returns an Analyzer that picks rows with rng. A nil rng
// uses the global source, which is safe for concurrent use; a non-nil
// rng makes the Analyzer unsafe for concurrent use.
func NewAnalyzer(rng *rand.Rand) *Analyzer {
	return &Analyzer{rng: rng}
}

func (a *Analyzer) row(height int) int {
	if a.rng == nil {
		return rand.IntN(height)
	}
	return a.rng.IntN(height)
}

// Analyze samples buf once per waveform column and returns fresh sample
// sets. Zero plot width or an empty buffer yields empty sets.
func (a *Analyzer) Analyze(buf *PixelBuffer, waveformWidth, waveformHeight int) (Scopes, error) {
	if err := buf.Validate(); err != nil {
		return Scopes{}, err
	}
	if waveformWidth < 0 || waveformHeight < 0 {
		return Scopes{}, ErrInvalidPlotSize
	}
	if waveformWidth == 0 || buf.width == 0 || buf.height == 0 {
		return Scopes{}, nil
	}

	sc := Scopes{
		Waveform:    make([]WaveformSample, waveformWidth),
		Vectorscope: make([]VectorscopeSample, waveformWidth),
	}
	h := float64(waveformHeight)
	for x := range waveformWidth {
		srcX := x * buf.width / waveformWidth
		srcY := a.row(buf.height)
		i := (srcY*buf.width + srcX) * 4
		r, g, b := buf.data[i], buf.data[i+1], buf.data[i+2]

		l := luma(r, g, b)
		sc.Waveform[x] = WaveformSample{Column: x, Luma: l, Y: h - l/255*h}

		u := float64(r) - float64(g) + 128
		v := float64(b) - float64(g) + 128
		sc.Vectorscope[x] = VectorscopeSample{
			U:     clampRange(u, 0, VectorscopeWidth-1),
			V:     clampRange(v/2, 0, VectorscopeHeight-1),
			Color: color.NRGBA{R: r, G: g, B: b, A: 255},
		}
	}
	return sc, nil
}

// Analyze samples buf with the global random source.
// See Analyzer.Analyze.
func Analyze(buf *PixelBuffer, waveformWidth, waveformHeight int) (Scopes, error) {
	return globalAnalyzer.Analyze(buf, waveformWidth, waveformHeight)
}

var globalAnalyzer = NewAnalyzer(nil)

func clampRange(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
