// Package interpreter defines the collaborators the manager drives:
// the dispatcher that runs jobs, the firmware that owns context state,
// buffer resolution and the persistent store. It also executes the
// actions the manager computes.
package interpreter

import (
	"context"
	"io"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/job"
)

// Dispatcher hands jobs to hardware and reports completion through
// job.Complete. Each dispatched job carries one reference owned by the
// dispatcher, which Complete drops.
type Dispatcher interface {
	// Dispatch queues j on its context. It must not block: it is
	// called with the context lock held.
	Dispatch(ctx context.Context, j *job.Job) error
	// Suspend parks the context's queue. Jobs already running are
	// requeued when the context resumes.
	Suspend(ctx context.Context, id xdna.ContextID) error
	Resume(ctx context.Context, id xdna.ContextID) error
	// Stop discards the context's queue. Every job still held by the
	// dispatcher is completed with ABORT before Stop returns.
	Stop(ctx context.Context, id xdna.ContextID) error
}

// Firmware owns the device-side state of a context.
type Firmware interface {
	// CreateContext registers hw with firmware and returns its
	// firmware context id.
	CreateContext(ctx context.Context, hw xdna.HWContext) (uint32, error)
	ConfigCU(ctx context.Context, fwCtxID uint32, cus []xdna.CUConfig) error
	DestroyContext(ctx context.Context, fwCtxID uint32) error
}

// BufferResolver turns a client's buffer handle into a pinned buffer.
type BufferResolver interface {
	Resolve(ctx context.Context, client xdna.ClientID, handle xdna.BufferHandle) (xdna.Buffer, error)
}

// ColumnReleaser returns a context's columns to the resource table.
type ColumnReleaser interface {
	Release(id xdna.ContextID)
}

// ContextStore persists hardware contexts. GetContext returns
// store.ErrNotFound for unknown ids.
type ContextStore interface {
	SaveContext(ctx context.Context, hw xdna.HWContext) error
	GetContext(ctx context.Context, id xdna.ContextID) (xdna.HWContext, error)
	ListContexts(ctx context.Context, client xdna.ClientID) ([]xdna.HWContext, error)
	// DeleteContext removes the context and its job history.
	DeleteContext(ctx context.Context, id xdna.ContextID) error
}

// JobStore persists job history.
type JobStore interface {
	SaveJob(ctx context.Context, info job.Info) error
	ListJobs(ctx context.Context, id xdna.ContextID) ([]job.Info, error)
}

// Store combines the context and job stores.
type Store interface {
	io.Closer
	ContextStore
	JobStore
	Transactional
}

// Transactional runs fn against a Store bound to one transaction. fn
// returning nil commits; an error rolls back.
type Transactional interface {
	RunInTransaction(ctx context.Context, fn func(Store) error) error
}
