package vgrade

import "math"

// Rec. 709 luma weights, used by the waveform scope.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// midGray is the pivot for contrast adjustments.
const midGray = 128

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// to8 clamps x and rounds half to even, the conversion a clamped
// 8-bit canvas store performs.
func to8(x float64) uint8 {
	if x != x { // NaN
		return 0
	}
	return uint8(math.RoundToEven(clamp255(x)))
}

func luma(r, g, b uint8) float64 {
	return lumR*float64(r) + lumG*float64(g) + lumB*float64(b)
}

// pixel is the unclamped working state of one RGBA sample while it moves
// through the stages.
type pixel struct {
	r, g, b, a float64
}

func loadPixel(d []uint8) pixel {
	return pixel{float64(d[0]), float64(d[1]), float64(d[2]), float64(d[3])}
}

// store writes all four channels back, clamped to [0,255].
func (p *pixel) store(d []uint8) {
	d[0] = to8(p.r)
	d[1] = to8(p.g)
	d[2] = to8(p.b)
	d[3] = to8(p.a)
}
