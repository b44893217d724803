package vgrade

import "github.com/gogpu/vgrade/internal/bufpool"

// BufferPool recycles PixelBuffers of a preview stream. A frame source
// takes a buffer with Get and the stream returns it with Put once the
// display sink is done with it.
//
// BufferPool is safe for concurrent use.
type BufferPool struct {
	p *bufpool.Pool
}

// NewBufferPool creates a pool that keeps at most maxPerSize buffers of
// each frame size. Zero means unlimited.
func NewBufferPool(maxPerSize int) *BufferPool {
	return &BufferPool{p: bufpool.New(maxPerSize)}
}

// Get returns a transparent width×height buffer.
func (bp *BufferPool) Get(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{width: width, height: height, data: bp.p.Get(width, height)}
}

// Put hands buf back for reuse. The caller must not touch buf afterwards.
func (bp *BufferPool) Put(buf *PixelBuffer) {
	if buf == nil {
		return
	}
	bp.p.Put(buf.width, buf.height, buf.data)
}
