// Package buffer manages buffer objects: anonymous shared mappings
// owned by one client and addressed by handle. A buffer stays mapped
// while its handle is open or any job holds a pin on it.
package buffer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/frobware/go-xdna"
)

// MaxSize bounds a single buffer object.
const MaxSize = 64 << 20

// Info describes a buffer object.
type Info struct {
	Handle xdna.BufferHandle `json:"handle"`
	Client xdna.ClientID     `json:"client"`
	Size   int               `json:"size"`
	Pins   int32             `json:"pins"`
}

// Pool allocates and resolves buffer objects for all clients of a
// device. Handles are unique per pool.
type Pool struct {
	logger *slog.Logger

	mu   sync.Mutex
	next xdna.BufferHandle
	bos  map[xdna.BufferHandle]*object
}

// NewPool returns an empty pool.
func NewPool(logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		logger: logger.With("component", "buffer"),
		next:   1,
		bos:    make(map[xdna.BufferHandle]*object),
	}
}

// object is one mapping. refs counts the open handle plus pins; the
// mapping is removed when it drops to zero.
type object struct {
	pool   *Pool
	handle xdna.BufferHandle
	client xdna.ClientID
	size   int
	mem    []byte
	refs   atomic.Int32
	closed atomic.Bool
}

func (o *object) Handle() xdna.BufferHandle { return o.handle }
func (o *object) Bytes() []byte             { return o.mem[:o.size] }
func (o *object) Size() int                 { return o.size }

func (o *object) Pin() error {
	for {
		n := o.refs.Load()
		if n <= 0 {
			return xdna.ErrInvalidBuffer{Handle: o.handle, Reason: "buffer has been freed"}
		}
		if o.refs.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

func (o *object) Unpin() {
	switch n := o.refs.Add(-1); {
	case n == 0:
		o.pool.unmap(o)
	case n < 0:
		panic(fmt.Sprintf("buffer %d: pin count underflow", o.handle))
	}
}

// Create maps a zeroed buffer of size bytes owned by client.
func (p *Pool) Create(client xdna.ClientID, size int) (xdna.BufferHandle, error) {
	if size <= 0 || size > MaxSize {
		return 0, fmt.Errorf("buffer size %d out of range 1..%d", size, MaxSize)
	}
	pageSize := unix.Getpagesize()
	length := (size + pageSize - 1) &^ (pageSize - 1)
	mem, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANONYMOUS)
	if err != nil {
		return 0, fmt.Errorf("mmap %d bytes: %w", length, err)
	}

	p.mu.Lock()
	o := &object{pool: p, handle: p.next, client: client, size: size, mem: mem}
	o.refs.Store(1)
	p.bos[o.handle] = o
	p.next++
	p.mu.Unlock()

	p.logger.Debug("created buffer", "handle", o.handle, "client", client, "size", size)
	return o.handle, nil
}

// lookup returns the open object for handle if client owns it.
func (p *Pool) lookup(client xdna.ClientID, handle xdna.BufferHandle) (*object, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	o, ok := p.bos[handle]
	if !ok || o.closed.Load() {
		return nil, xdna.ErrInvalidBuffer{Handle: handle, Reason: "no such buffer"}
	}
	if o.client != client {
		return nil, xdna.ErrInvalidBuffer{Handle: handle, Reason: "buffer belongs to another client"}
	}
	return o, nil
}

// Resolve returns the buffer for handle with a pin held. The caller
// must Unpin it.
func (p *Pool) Resolve(_ context.Context, client xdna.ClientID, handle xdna.BufferHandle) (xdna.Buffer, error) {
	return p.acquire(client, handle)
}

// acquire looks up handle and pins it so the mapping cannot be removed
// by a concurrent Free while the caller touches it.
func (p *Pool) acquire(client xdna.ClientID, handle xdna.BufferHandle) (*object, error) {
	o, err := p.lookup(client, handle)
	if err != nil {
		return nil, err
	}
	if err := o.Pin(); err != nil {
		return nil, err
	}
	return o, nil
}

// Write copies data into the buffer at offset.
func (p *Pool) Write(client xdna.ClientID, handle xdna.BufferHandle, offset int, data []byte) error {
	o, err := p.acquire(client, handle)
	if err != nil {
		return err
	}
	defer o.Unpin()
	if offset < 0 || offset > o.size || len(data) > o.size-offset {
		return xdna.ErrInvalidBuffer{Handle: handle, Reason: fmt.Sprintf("write of %d bytes at %d exceeds size %d", len(data), offset, o.size)}
	}
	copy(o.mem[offset:], data)
	return nil
}

// Read copies n bytes from offset. n < 0 reads to the end.
func (p *Pool) Read(client xdna.ClientID, handle xdna.BufferHandle, offset, n int) ([]byte, error) {
	o, err := p.acquire(client, handle)
	if err != nil {
		return nil, err
	}
	defer o.Unpin()
	if offset < 0 || offset > o.size {
		return nil, xdna.ErrInvalidBuffer{Handle: handle, Reason: fmt.Sprintf("read at %d exceeds size %d", offset, o.size)}
	}
	if n < 0 {
		n = o.size - offset
	}
	if n > o.size-offset {
		return nil, xdna.ErrInvalidBuffer{Handle: handle, Reason: fmt.Sprintf("read of %d bytes at %d exceeds size %d", n, offset, o.size)}
	}
	return append([]byte(nil), o.mem[offset:offset+n]...), nil
}

// Free closes the handle. The mapping survives until the last pin is
// dropped.
func (p *Pool) Free(client xdna.ClientID, handle xdna.BufferHandle) error {
	o, err := p.lookup(client, handle)
	if err != nil {
		return err
	}
	if o.closed.CompareAndSwap(false, true) {
		o.Unpin()
	}
	return nil
}

// FreeAll closes every handle owned by client and returns how many it
// closed.
func (p *Pool) FreeAll(client xdna.ClientID) int {
	p.mu.Lock()
	var owned []*object
	for _, o := range p.bos {
		if o.client == client && o.closed.CompareAndSwap(false, true) {
			owned = append(owned, o)
		}
	}
	p.mu.Unlock()

	for _, o := range owned {
		o.Unpin()
	}
	return len(owned)
}

// List returns the buffers still mapped for client, including closed
// handles that remain pinned.
func (p *Pool) List(client xdna.ClientID) []Info {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Info
	for _, o := range p.bos {
		if o.client == client {
			out = append(out, Info{Handle: o.handle, Client: o.client, Size: o.size, Pins: o.refs.Load()})
		}
	}
	sortInfos(out)
	return out
}

// Len returns the number of live mappings.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.bos)
}

func (p *Pool) unmap(o *object) {
	p.mu.Lock()
	delete(p.bos, o.handle)
	p.mu.Unlock()

	if err := unix.Munmap(o.mem); err != nil {
		p.logger.Warn("munmap failed", "handle", o.handle, "error", err)
		return
	}
	p.logger.Debug("unmapped buffer", "handle", o.handle, "client", o.client)
}
