package plot

import (
	"image/color"
	"testing"

	"github.com/gogpu/vgrade"
)

func TestParseTraceColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#22d3ee", DefaultTrace},
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTraceColor(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseTraceColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseTraceColor("cyan"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestWaveform(t *testing.T) {
	samples := []vgrade.WaveformSample{
		{Column: 0, Luma: 255, Y: 0},
		{Column: 1, Luma: 127.5, Y: 5.2},
		{Column: 2, Luma: 0, Y: 10}, // bottom edge, off the plot
	}
	img := Waveform(samples, 3, 10, DefaultTrace)

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 10 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	want := color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("dot (0,0) = %v, want %v", got, want)
	}
	if got := img.RGBAAt(1, 5); got != want {
		t.Errorf("dot (1,5) = %v, want %v", got, want)
	}
	black := color.RGBA{A: 0xff}
	for y := range 10 {
		if got := img.RGBAAt(2, y); got != black {
			t.Errorf("column 2 row %d = %v, want background", y, got)
		}
	}
}

func TestVectorscope(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	img := Vectorscope([]vgrade.VectorscopeSample{{U: 279, V: 64, Color: red}})

	if img.Bounds().Dx() != vgrade.VectorscopeWidth || img.Bounds().Dy() != vgrade.VectorscopeHeight {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(279, 64); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("dot = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("background = %v", got)
	}
}

func TestPlotFromAnalyzer(t *testing.T) {
	pb := vgrade.NewPixelBuffer(16, 16)
	pb.Fill(color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	sc, err := vgrade.Analyze(pb, 16, 32)
	if err != nil {
		t.Fatal(err)
	}
	wf := Waveform(sc.Waveform, 16, 32, DefaultTrace)
	vs := Vectorscope(sc.Vectorscope)

	// luma = 0.2126*200 + 0.7152*100 + 0.0722*50 = 117.65, row floor(32-14.76) = 17
	if got := wf.RGBAAt(5, 17); got.A != 255 || got.B != 0xee {
		t.Errorf("waveform dot missing: %v", got)
	}
	// u = 228, v = 78/2 = 39
	if got := vs.RGBAAt(228, 39); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("vectorscope dot = %v", got)
	}
}
