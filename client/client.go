// Package client is the programmatic interface to an xdna device.
//
// Use Dial to connect to a running daemon:
//
//	c, err := client.Dial(client.DefaultSocketPath())
//	c, err := client.Dial("localhost:50051")
//
// Use Open to run the device in process, holding the runtime
// directory's lock for the client's lifetime:
//
//	c, err := client.Open(ctx, client.WithRuntimeDir("/tmp/xdna"))
//
// Both return a Client that behaves identically. Each client has its
// own identity; contexts and buffers it creates are invisible to other
// clients and are released by CloseSession.
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// Client provides a transport-agnostic interface to the device.
type Client interface {
	io.Closer

	// ID returns the identity the client presents to the daemon.
	ID() xdna.ClientID

	// Buffer operations
	CreateBuffer(ctx context.Context, size int) (xdna.BufferHandle, error)
	WriteBuffer(ctx context.Context, h xdna.BufferHandle, offset int, data []byte) error
	// ReadBuffer reads n bytes at offset; n < 0 reads to the end.
	ReadBuffer(ctx context.Context, h xdna.BufferHandle, offset, n int) ([]byte, error)
	FreeBuffer(ctx context.Context, h xdna.BufferHandle) error
	ListBuffers(ctx context.Context) ([]buffer.Info, error)

	// Context operations
	CreateContext(ctx context.Context, spec xdna.ContextSpec) (xdna.HWContext, error)
	ConfigContext(ctx context.Context, id xdna.ContextID, cus []xdna.CUConfig) error
	DestroyContext(ctx context.Context, id xdna.ContextID, force bool) error
	GetContext(ctx context.Context, id xdna.ContextID) (xdna.HWContext, error)
	ListContexts(ctx context.Context) ([]xdna.HWContext, error)

	// Command operations
	Submit(ctx context.Context, id xdna.ContextID, cmd xdna.BufferHandle, bufs []xdna.BufferHandle) (uint64, error)
	// Wait returns the terminal state of job seq. A zero timeout
	// polls; job.NoTimeout waits until ctx is done.
	Wait(ctx context.Context, id xdna.ContextID, seq uint64, timeout time.Duration) (command.State, error)
	Cancel(ctx context.Context, id xdna.ContextID, seq uint64) (command.State, error)
	Jobs(ctx context.Context, id xdna.ContextID, history bool) ([]job.Info, error)
	Reclaim(ctx context.Context, id xdna.ContextID, upTo uint64) (uint64, error)

	// Session operations
	Suspend(ctx context.Context) error
	Resume(ctx context.Context) error
	// CloseSession destroys every context of the client and frees its
	// buffers. It returns how many of each it released.
	CloseSession(ctx context.Context) (contexts, buffers int, err error)
}

// Upload writes cmd into a new buffer and returns its handle.
func Upload(ctx context.Context, c Client, cmd command.Command) (xdna.BufferHandle, error) {
	data := cmd.Marshal()
	h, err := c.CreateBuffer(ctx, len(data))
	if err != nil {
		return 0, err
	}
	if err := c.WriteBuffer(ctx, h, 0, data); err != nil {
		_ = c.FreeBuffer(ctx, h)
		return 0, fmt.Errorf("write command: %w", err)
	}
	return h, nil
}
