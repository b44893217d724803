package vgrade

import (
	"image/color"
	"math/rand/v2"
	"strconv"
	"testing"
)

// hugeWidth makes hugeWidth*2*4 wrap to exactly zero in int arithmetic.
const hugeWidth = 1 << (strconv.IntSize - 3)

// onePixel returns a 1x1 buffer holding c.
func onePixel(c color.NRGBA) *PixelBuffer {
	pb := NewPixelBuffer(1, 1)
	pb.SetPixel(0, 0, c)
	return pb
}

// noiseBuffer fills a w×h buffer with deterministic pseudo-random bytes.
func noiseBuffer(w, h int, seed uint64) *PixelBuffer {
	pb := NewPixelBuffer(w, h)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range pb.data {
		pb.data[i] = uint8(r.UintN(256))
	}
	return pb
}

func assertPixel(t *testing.T, pb *PixelBuffer, x, y int, want color.NRGBA) {
	t.Helper()
	if got := pb.Pixel(x, y); got != want {
		t.Errorf("Pixel(%d,%d) = %v, want %v", x, y, got, want)
	}
}

func assertSameData(t *testing.T, got, want *PixelBuffer) {
	t.Helper()
	if len(got.data) != len(want.data) {
		t.Fatalf("length %d, want %d", len(got.data), len(want.data))
	}
	for i := range got.data {
		if got.data[i] != want.data[i] {
			t.Fatalf("byte %d (pixel %d channel %d) = %d, want %d",
				i, i/4, i%4, got.data[i], want.data[i])
		}
	}
}
