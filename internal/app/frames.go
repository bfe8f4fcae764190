package app

import "sync"

// FrameBuffer holds the most recent JPEG-encoded frame produced by the
// pipeline. The HTTP stream reads from here instead of the camera, so the
// pipeline stays the only camera reader.
type FrameBuffer struct {
	mu   sync.RWMutex
	jpeg []byte
}

// NewFrameBuffer creates an empty FrameBuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Set replaces the buffered frame with a copy of data.
func (b *FrameBuffer) Set(data []byte) {
	frame := make([]byte, len(data))
	copy(frame, data)

	b.mu.Lock()
	b.jpeg = frame
	b.mu.Unlock()
}

// Latest returns the buffered frame, or nil when no frame has arrived yet.
// The returned slice is never mutated after Set, so callers may keep it.
func (b *FrameBuffer) Latest() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.jpeg
}
