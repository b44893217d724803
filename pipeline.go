package vgrade

import (
	"log/slog"

	"github.com/gogpu/vgrade/internal/parallel"
)

// Pipeline runs the grade, LUT and key stages over a frame in that fixed
// order, with a single clamp at the end.
//
// A Pipeline keeps no per-frame state. One Pipeline may process distinct
// buffers from several goroutines at once; a single buffer must not be
// processed concurrently.
type Pipeline struct {
	pool *parallel.WorkerPool
}

// NewPipeline creates a pipeline. Without options it is serial and
// needs no Close.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pl := &Pipeline{}
	if o.workers != 1 {
		pl.pool = parallel.NewWorkerPool(o.workers)
		Logger().Debug("pipeline workers started", "workers", pl.pool.Workers())
	}
	return pl
}

// Close releases the pipeline's workers. Processing after Close still
// works, on the calling goroutine.
func (pl *Pipeline) Close() {
	if pl.pool != nil {
		pl.pool.Close()
	}
}

// Process grades, tints and keys buf in place and returns buf.
//
// The buffer shape is checked before any pixel is touched; on a shape
// error buf is left unmodified and a *ShapeError is returned. Given the
// same buffer contents and snapshot, the output is byte-identical.
func (pl *Pipeline) Process(buf *PixelBuffer, s Snapshot) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		Logger().Warn("invalid buffer shape", slog.Any("err", err))
		return nil, err
	}

	st := frameStages{
		grade: newGrader(s.Grade, s.Mask, buf.width, buf.height),
		lut:   s.Lut.factors(),
		key:   newKeyer(s.Key),
	}
	if pl.pool == nil || !pl.pool.IsRunning() {
		st.run(buf, 0, buf.height)
	} else {
		pl.pool.Rows(buf.height, func(y0, y1 int) {
			st.run(buf, y0, y1)
		})
	}
	return buf, nil
}

// frameStages holds the resolved constants of all three stages.
type frameStages struct {
	grade grader
	lut   lutFactors
	key   keyer
}

func (st *frameStages) run(buf *PixelBuffer, y0, y1 int) {
	stride := buf.width * 4
	for y := y0; y < y1; y++ {
		row := buf.data[y*stride : (y+1)*stride]
		for x := 0; x < buf.width; x++ {
			d := row[x*4 : x*4+4 : x*4+4]
			p := loadPixel(d)
			st.grade.apply(&p, x, y)
			st.lut.apply(&p)
			st.key.apply(&p)
			p.store(d)
		}
	}
}

var defaultPipeline = NewPipeline()

// Process runs buf through a shared serial pipeline.
// See Pipeline.Process.
func Process(buf *PixelBuffer, s Snapshot) (*PixelBuffer, error) {
	return defaultPipeline.Process(buf, s)
}
