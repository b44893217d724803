package stream

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Multicam runs several independent preview streams concurrently, for
// example one per camera angle. Each stream owns its own buffers and
// analyzer.
type Multicam struct {
	streams []*Stream
}

// NewMulticam groups streams. Nil streams are ignored.
func NewMulticam(streams ...*Stream) *Multicam {
	m := &Multicam{}
	for _, s := range streams {
		if s != nil {
			m.streams = append(m.streams, s)
		}
	}
	return m
}

// Streams returns the grouped streams.
func (m *Multicam) Streams() []*Stream {
	return m.streams
}

// Lookup returns the stream with the given name.
func (m *Multicam) Lookup(name string) (*Stream, bool) {
	for _, s := range m.streams {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Run runs every stream on its own goroutine and waits for all of them.
// The first failure cancels the others and is returned.
func (m *Multicam) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range m.streams {
		g.Go(func() error {
			return s.Run(ctx)
		})
	}
	return g.Wait()
}
