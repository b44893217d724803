package stream

import (
	"context"
	"errors"
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/vgrade"
)

// SourceConfig configures an ImageSource.
type SourceConfig struct {
	// Width and Height are the preview frame size.
	Width, Height int

	// FPS converts frame indices into playback timestamps.
	FPS float64

	// StartTime is the timestamp of the first frame, in seconds.
	StartTime float64

	// Quality selects the preview quality in (0, 1]. The top-left
	// floor(Width*Quality)×floor(Height*Quality) region of the source is
	// scaled up to the full frame.
	Quality float64

	// Stabilization is the jitter cancellation strength, 0 to 100.
	Stabilization float64

	// Loop restarts from the first image instead of returning io.EOF.
	Loop bool

	// Pool supplies frame buffers. Nil allocates a new buffer per frame.
	Pool *vgrade.BufferPool
}

// ErrInvalidSource is returned by NewImageSource for unusable settings.
var ErrInvalidSource = errors.New("stream: invalid source config")

// ImageSource is a FrameSource over a fixed sequence of images. It stands
// in for a decoder: each call composes the next image into a fresh
// buffer with preview scaling and stabilization jitter applied.
//
// ImageSource is not safe for concurrent use.
type ImageSource struct {
	frames []image.Image
	cfg    SourceConfig
	next   int // index into frames
	count  int // frames emitted, drives the timestamp
}

// NewImageSource creates a source over frames.
func NewImageSource(frames []image.Image, cfg SourceConfig) (*ImageSource, error) {
	switch {
	case len(frames) == 0:
		return nil, errors.Join(ErrInvalidSource, errors.New("no frames"))
	case cfg.Width <= 0 || cfg.Height <= 0:
		return nil, errors.Join(ErrInvalidSource, errors.New("frame size must be positive"))
	case !(cfg.Quality > 0 && cfg.Quality <= 1):
		return nil, errors.Join(ErrInvalidSource, errors.New("quality must be in (0, 1]"))
	case !(cfg.FPS > 0):
		return nil, errors.Join(ErrInvalidSource, errors.New("fps must be positive"))
	}
	return &ImageSource{frames: frames, cfg: cfg}, nil
}

// NextFrame implements FrameSource.
func (s *ImageSource) NextFrame(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	if s.next >= len(s.frames) {
		if !s.cfg.Loop {
			return Frame{}, io.EOF
		}
		s.next = 0
	}
	// Timestamps keep growing across loops.
	t := s.cfg.StartTime + float64(s.count)/s.cfg.FPS
	src := s.frames[s.next]
	s.next++
	s.count++

	var buf *vgrade.PixelBuffer
	if s.cfg.Pool != nil {
		buf = s.cfg.Pool.Get(s.cfg.Width, s.cfg.Height)
	} else {
		buf = vgrade.NewPixelBuffer(s.cfg.Width, s.cfg.Height)
	}
	dx, dy := vgrade.Jitter(t, s.cfg.Stabilization)
	Compose(buf, src, s.cfg.Quality, dx, dy)
	return Frame{Buffer: buf, Timestamp: t}, nil
}

// Compose clears dst, then draws the top-left quality-sized region of src
// stretched over dst and shifted by (dx, dy) pixels. Areas the shifted
// image does not cover stay transparent.
func Compose(dst *vgrade.PixelBuffer, src image.Image, quality, dx, dy float64) {
	dst.Clear()
	w := math.Floor(float64(dst.Width()) * quality)
	h := math.Floor(float64(dst.Height()) * quality)
	if w < 1 || h < 1 {
		return
	}
	b := src.Bounds()
	sr := image.Rect(b.Min.X, b.Min.Y, b.Min.X+int(w), b.Min.Y+int(h)).Intersect(b)
	if sr.Empty() {
		return
	}

	sx := float64(dst.Width()) / w
	sy := float64(dst.Height()) / h
	s2d := f64.Aff3{
		sx, 0, dx - sx*float64(b.Min.X),
		0, sy, dy - sy*float64(b.Min.Y),
	}
	draw.ApproxBiLinear.Transform(dst.ToImage(), s2d, src, sr, draw.Src, nil)
}
