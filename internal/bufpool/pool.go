// Package bufpool recycles RGBA frame storage between frames.
package bufpool

import "sync"

// Pool is a thread-safe pool of RGBA byte slices grouped by frame size.
//
// Frames of a preview stream keep the same dimensions, so a small bucket
// per size removes nearly all per-frame allocation.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[key][][]uint8
	maxSize int // max slices per bucket, 0 for unlimited
}

type key struct {
	width  int
	height int
}

// New creates a pool that keeps at most maxPerBucket slices per frame size.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[key][][]uint8),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed slice of width*height*4 bytes, reusing a pooled
// one when available. Non-positive dimensions yield an empty slice.
func (p *Pool) Get(width, height int) []uint8 {
	if width <= 0 || height <= 0 {
		return []uint8{}
	}
	k := key{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[k]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[k] = bucket[:n-1]
		p.mu.Unlock()
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]uint8, width*height*4)
}

// Put returns buf to the pool. Slices whose length does not match
// width*height*4, and slices arriving at a full bucket, are dropped.
func (p *Pool) Put(width, height int, buf []uint8) {
	if width <= 0 || height <= 0 || len(buf) != width*height*4 {
		return
	}
	k := key{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[k]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[k] = append(bucket, buf)
}
