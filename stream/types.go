package stream

import (
	"context"

	"github.com/gogpu/vgrade"
)

// Frame is one raw frame handed to the pipeline.
type Frame struct {
	Buffer    *vgrade.PixelBuffer
	Timestamp float64 // playback position in seconds
}

// FrameSource supplies frames. NextFrame returns io.EOF when the source
// is exhausted.
type FrameSource interface {
	NextFrame(ctx context.Context) (Frame, error)
}

// ParamProvider supplies the parameter snapshot for the next frame.
type ParamProvider interface {
	Snapshot() vgrade.Snapshot
}

// DisplaySink presents a processed frame.
type DisplaySink interface {
	Present(ctx context.Context, buf *vgrade.PixelBuffer) error
}

// ScopeSink presents the scope samples of a processed frame.
type ScopeSink interface {
	PresentScopes(ctx context.Context, s vgrade.Scopes) error
}

// StaticParams is a ParamProvider that always returns the same snapshot.
type StaticParams vgrade.Snapshot

// Snapshot implements ParamProvider.
func (p StaticParams) Snapshot() vgrade.Snapshot { return vgrade.Snapshot(p) }

// DisplayFunc adapts a function to DisplaySink.
type DisplayFunc func(ctx context.Context, buf *vgrade.PixelBuffer) error

// Present implements DisplaySink.
func (f DisplayFunc) Present(ctx context.Context, buf *vgrade.PixelBuffer) error {
	return f(ctx, buf)
}

// ScopeFunc adapts a function to ScopeSink.
type ScopeFunc func(ctx context.Context, s vgrade.Scopes) error

// PresentScopes implements ScopeSink.
func (f ScopeFunc) PresentScopes(ctx context.Context, s vgrade.Scopes) error {
	return f(ctx, s)
}
