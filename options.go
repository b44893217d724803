package vgrade

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	// Serial pipeline (default)
//	pl := vgrade.NewPipeline()
//
//	// Split each frame into row bands across 4 goroutines
//	pl := vgrade.NewPipeline(vgrade.WithWorkers(4))
//	defer pl.Close()
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	workers int
}

func defaultOptions() pipelineOptions {
	return pipelineOptions{workers: 1}
}

// WithWorkers sets how many goroutines process row bands of one frame.
// Values below 1 select GOMAXPROCS. A value of 1 processes every frame on
// the calling goroutine.
//
// Output is byte-identical for any worker count: each pixel depends only
// on its own value, its coordinates and the snapshot.
func WithWorkers(n int) PipelineOption {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}
