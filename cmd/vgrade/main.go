// Command vgrade grades a still frame and writes the result together
// with its waveform and vectorscope.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/vgrade"
	"github.com/gogpu/vgrade/config"
	"github.com/gogpu/vgrade/plot"
	"github.com/gogpu/vgrade/stream"
)

func main() {
	var (
		lookPath    = flag.String("look", "", "YAML look file (defaults when empty)")
		input       = flag.String("in", "", "input image (png, jpeg, bmp, tiff, webp)")
		output      = flag.String("out", "graded.png", "graded frame output")
		waveform    = flag.String("waveform", "", "waveform PNG output (skipped when empty)")
		vectorscope = flag.String("vectorscope", "", "vectorscope PNG output (skipped when empty)")
		at          = flag.Float64("t", 0, "playback time in seconds, drives stabilization jitter")
		native      = flag.Bool("native", true, "use the input size instead of the look file's frame size")
		workers     = flag.Int("workers", 1, "row-band workers per frame (0 = GOMAXPROCS)")
		seed        = flag.Uint64("seed", 0, "waveform row seed (0 = random)")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		vgrade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *input == "" {
		log.Fatal("missing -in")
	}

	cfg := config.Default()
	if *lookPath != "" {
		var err error
		if cfg, err = config.Load(*lookPath); err != nil {
			log.Fatalf("Failed to load look: %v", err)
		}
	}

	img, err := decode(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if *native {
		cfg.Frame.Width, cfg.Frame.Height = img.Bounds().Dx(), img.Bounds().Dy()
	}

	src, err := stream.NewImageSource([]image.Image{img}, stream.SourceConfig{
		Width:         cfg.Frame.Width,
		Height:        cfg.Frame.Height,
		FPS:           cfg.Frame.FPS,
		StartTime:     *at,
		Quality:       cfg.PreviewQuality,
		Stabilization: cfg.Stabilization,
	})
	if err != nil {
		log.Fatalf("Failed to open source: %v", err)
	}

	trace, err := plot.ParseTraceColor(cfg.Scopes.TraceColor)
	if err != nil {
		log.Fatal(err)
	}

	pl := vgrade.NewPipeline(vgrade.WithWorkers(*workers))
	defer pl.Close()

	var analyzer *vgrade.Analyzer
	if *seed != 0 {
		analyzer = vgrade.NewAnalyzer(rand.New(rand.NewPCG(*seed, *seed)))
	}

	var scopes stream.ScopeSink
	if *waveform != "" || *vectorscope != "" {
		scopes = stream.ScopeFunc(func(_ context.Context, sc vgrade.Scopes) error {
			if *waveform != "" {
				wf := plot.Waveform(sc.Waveform, cfg.Scopes.WaveformWidth, cfg.Scopes.WaveformHeight, trace)
				if err := savePNG(*waveform, wf); err != nil {
					return err
				}
			}
			if *vectorscope != "" {
				return savePNG(*vectorscope, plot.Vectorscope(sc.Vectorscope))
			}
			return nil
		})
	}

	s, err := stream.New(stream.Config{
		Name:   *input,
		Source: src,
		Params: stream.StaticParams(cfg.Snapshot()),
		Display: stream.DisplayFunc(func(_ context.Context, buf *vgrade.PixelBuffer) error {
			return buf.SavePNG(*output)
		}),
		Scopes:         scopes,
		Pipeline:       pl,
		Analyzer:       analyzer,
		WaveformWidth:  cfg.Scopes.WaveformWidth,
		WaveformHeight: cfg.Scopes.WaveformHeight,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(context.Background()); err != nil {
		log.Fatalf("Failed to grade: %v", err)
	}

	log.Printf("Graded frame saved to %s (%dx%d, lut %s)\n",
		*output, cfg.Frame.Width, cfg.Frame.Height, cfg.Look.Lut)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	vgrade.Logger().Debug("input decoded", "format", format, "bounds", img.Bounds().String())
	return img, nil
}

func savePNG(path string, img image.Image) error {
	return vgrade.FromImage(img).SavePNG(path)
}
