package xdna

// BufferHandle is a client-visible handle to a buffer object.
type BufferHandle uint32

// Buffer is a resolved buffer object: a CPU-addressable region that
// stays valid while pinned.
type Buffer interface {
	Handle() BufferHandle
	// Bytes returns the mapped region. Writes are visible to every
	// holder of the buffer.
	Bytes() []byte
	Size() int
	// Pin keeps the mapping alive until the matching Unpin.
	Pin() error
	Unpin()
}
