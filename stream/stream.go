package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/vgrade"
)

// Config wires a Stream to its collaborators. Source, Params and Display
// are required.
type Config struct {
	Name    string
	Source  FrameSource
	Params  ParamProvider
	Display DisplaySink

	// Scopes receives waveform and vectorscope samples. Nil skips analysis.
	Scopes ScopeSink

	// Pipeline defaults to a serial pipeline.
	Pipeline *vgrade.Pipeline

	// Analyzer defaults to one backed by the global random source.
	Analyzer *vgrade.Analyzer

	// Pool, when set, takes each buffer back after it has been presented.
	// Use the same pool as the source.
	Pool *vgrade.BufferPool

	// Waveform plot size. Zero width disables waveform samples.
	WaveformWidth, WaveformHeight int
}

// ErrMissingCollaborator is returned by New when a required
// collaborator is nil.
var ErrMissingCollaborator = errors.New("stream: missing collaborator")

// Stream renders frames from one source, one at a time.
//
// A Stream is not safe for concurrent use; run each Stream on a single
// goroutine.
type Stream struct {
	id     uuid.UUID
	cfg    Config
	frames atomic.Int64
	log    *slog.Logger
}

// New creates a stream with a fresh random ID.
func New(cfg Config) (*Stream, error) {
	switch {
	case cfg.Source == nil:
		return nil, fmt.Errorf("%w: source", ErrMissingCollaborator)
	case cfg.Params == nil:
		return nil, fmt.Errorf("%w: params", ErrMissingCollaborator)
	case cfg.Display == nil:
		return nil, fmt.Errorf("%w: display", ErrMissingCollaborator)
	}
	if cfg.Pipeline == nil {
		cfg.Pipeline = vgrade.NewPipeline()
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = vgrade.NewAnalyzer(nil)
	}
	id := uuid.New()
	return &Stream{
		id:  id,
		cfg: cfg,
		log: vgrade.Logger().With(slog.String("stream", id.String()), slog.String("name", cfg.Name)),
	}, nil
}

// ID returns the stream's unique identifier.
func (s *Stream) ID() uuid.UUID { return s.id }

// Name returns the configured display name.
func (s *Stream) Name() string { return s.cfg.Name }

// Frames returns how many frames have been presented.
func (s *Stream) Frames() int64 { return s.frames.Load() }

// RenderFrame pulls one frame, processes it, presents scopes and the
// frame, and recycles the buffer. It returns io.EOF unchanged when the
// source is exhausted.
func (s *Stream) RenderFrame(ctx context.Context) error {
	f, err := s.cfg.Source.NextFrame(ctx)
	if err != nil {
		return err
	}
	if s.cfg.Pool != nil {
		defer s.cfg.Pool.Put(f.Buffer)
	}

	snap := s.cfg.Params.Snapshot()
	if _, err := s.cfg.Pipeline.Process(f.Buffer, snap); err != nil {
		return fmt.Errorf("stream %s: frame at %.3fs: %w", s.id, f.Timestamp, err)
	}

	if s.cfg.Scopes != nil {
		sc, err := s.cfg.Analyzer.Analyze(f.Buffer, s.cfg.WaveformWidth, s.cfg.WaveformHeight)
		if err != nil {
			return fmt.Errorf("stream %s: scopes: %w", s.id, err)
		}
		if err := s.cfg.Scopes.PresentScopes(ctx, sc); err != nil {
			return fmt.Errorf("stream %s: present scopes: %w", s.id, err)
		}
	}

	if err := s.cfg.Display.Present(ctx, f.Buffer); err != nil {
		return fmt.Errorf("stream %s: present: %w", s.id, err)
	}
	n := s.frames.Add(1)
	s.log.Debug("frame presented", slog.Int64("frame", n), slog.Float64("t", f.Timestamp))
	return nil
}

// Run renders frames until the source is exhausted, ctx is done or a
// frame fails. Exhaustion returns nil.
func (s *Stream) Run(ctx context.Context) error {
	s.log.Info("stream started")
	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("stream cancelled", slog.Int64("frames", s.Frames()))
			return err
		}
		err := s.RenderFrame(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			s.log.Info("stream finished", slog.Int64("frames", s.Frames()))
			return nil
		default:
			s.log.Warn("stream stopped", slog.Any("err", err))
			return err
		}
	}
}
