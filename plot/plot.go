// Package plot rasterizes vgrade scope samples for display.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/vgrade"
)

// DefaultTrace is the waveform dot color.
var DefaultTrace = color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}

var background = image.NewUniform(color.Black)

// ParseTraceColor parses a CSS-style hex color ("#22d3ee" or "#2de").
func ParseTraceColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("plot: trace color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Waveform draws one dot per sample on a black width×height image.
// Dots whose plot row falls outside the image are skipped.
func Waveform(samples []vgrade.WaveformSample, width, height int, trace color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)
	for _, s := range samples {
		dot(img, float64(s.Column), s.Y, trace)
	}
	return img
}

// Vectorscope draws every sample in its own color on the fixed
// 280×100 black plane.
func Vectorscope(samples []vgrade.VectorscopeSample) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, vgrade.VectorscopeWidth, vgrade.VectorscopeHeight))
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)
	for _, s := range samples {
		dot(img, s.U, s.V, s.Color)
	}
	return img
}

func dot(img *image.RGBA, x, y float64, c color.Color) {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if !(image.Point{X: px, Y: py}).In(img.Rect) {
		return
	}
	img.Set(px, py, c)
}
