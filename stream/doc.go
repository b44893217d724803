// Package stream connects the vgrade pipeline to its collaborators: a
// frame source that supplies raw buffers with playback timestamps, a
// parameter provider, a display sink and an optional scope sink.
//
// A Stream renders one frame at a time: pull, grade, analyze, present,
// recycle. Frames of one stream never overlap. Multicam runs several
// streams side by side; each owns its buffers, so no locking is needed
// between them.
//
// Sinks must not retain a buffer after Present returns. Copy it with
// PixelBuffer.Clone if it is needed later.
package stream
