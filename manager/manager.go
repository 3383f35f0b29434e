// Package manager owns the hardware contexts of each client and
// mediates every operation on them.
//
// A Device is shared by all clients of one accelerator. It holds the
// column table, the firmware, the dispatcher, buffer resolution and
// the store. Each client gets a Manager from Device.Manager; a Manager
// only ever sees the contexts its client created.
//
// # Locking
//
// Manager.mu guards the client's context map. Each context has its own
// mutex serialising create/config/destroy/submit/suspend on it; waits
// never take it, so a blocked waiter cannot stall teardown. The column
// table has its own lock and is the only state shared across clients.
//
// # Teardown
//
// Destroy is computed as a list of actions and run by the interpreter
// executor: abort the tracker's jobs, stop the dispatcher queue,
// destroy the firmware context, release the columns, drop the stored
// record. Steps run best-effort so one failure does not leak the rest.
package manager

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/compute"
	"github.com/frobware/go-xdna/job"
)

// Manager is one client's view of a Device.
type Manager struct {
	dev    *Device
	client xdna.ClientID
	logger *slog.Logger

	mu       sync.Mutex
	contexts map[xdna.ContextID]*hwctx
}

// hwctx is a live hardware context.
type hwctx struct {
	mu      sync.Mutex
	info    xdna.HWContext
	tracker *job.Tracker
	gone    bool
}

// Client returns the client this manager serves.
func (m *Manager) Client() xdna.ClientID { return m.client }

// lookup returns the live context id owned by this client.
func (m *Manager) lookup(id xdna.ContextID) (*hwctx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hc, ok := m.contexts[id]
	if !ok {
		return nil, xdna.ErrInvalidContext{ID: id}
	}
	return hc, nil
}

// lockLive locks the context and checks it has not been destroyed
// while the caller waited for the lock.
func (m *Manager) lockLive(id xdna.ContextID) (*hwctx, error) {
	hc, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	hc.mu.Lock()
	if hc.gone {
		hc.mu.Unlock()
		return nil, xdna.ErrInvalidContext{ID: id}
	}
	return hc, nil
}

// CreateContext reserves columns, registers the context with firmware,
// applies the CU configuration and returns the READY context. Any
// failure undoes the completed steps.
func (m *Manager) CreateContext(ctx context.Context, spec xdna.ContextSpec) (xdna.HWContext, error) {
	ctx = m.dev.beginOp(ctx)
	id := xdna.ContextID(m.dev.nextID.Add(1))
	var undo undoStack

	fail := func(err error) (xdna.HWContext, error) {
		if rbErr := undo.rollback(ctx, m.logger); rbErr != nil {
			return xdna.HWContext{}, fmt.Errorf("%w (rollback: %w)", err, rbErr)
		}
		return xdna.HWContext{}, err
	}

	if err := m.validateCUBuffers(ctx, spec.CUs); err != nil {
		return xdna.HWContext{}, err
	}

	entry, err := m.dev.table.Allocate(id, spec)
	if err != nil {
		return xdna.HWContext{}, err
	}
	undo.push("release columns", func() error { m.dev.table.Release(id); return nil })

	info := xdna.HWContext{
		ID:        id,
		Client:    m.client,
		Name:      spec.Name,
		StartCol:  entry.StartCol,
		NumCol:    entry.NumCol,
		NumTiles:  entry.NumTiles,
		MemSize:   entry.MemSize,
		MaxOpc:    entry.MaxOpc,
		QoS:       entry.QoS,
		CUs:       entry.CUs,
		Status:    xdna.StatusInit,
		OldStatus: xdna.StatusInit,
		CreatedAt: time.Now(),
	}

	fwID, err := m.dev.firmware.CreateContext(ctx, info)
	if err != nil {
		return fail(fmt.Errorf("firmware create context %d: %w", id, err))
	}
	info.FWContextID = fwID
	undo.push("destroy firmware context", func() error {
		return m.dev.firmware.DestroyContext(context.WithoutCancel(ctx), fwID)
	})

	if len(spec.CUs) > 0 {
		if err := m.dev.firmware.ConfigCU(ctx, fwID, spec.CUs); err != nil {
			return fail(fmt.Errorf("firmware config cu of context %d: %w", id, err))
		}
	}

	info.Status = xdna.StatusReady
	if err := m.dev.store.SaveContext(ctx, info); err != nil {
		return fail(fmt.Errorf("persist context %d: %w", id, err))
	}

	hc := &hwctx{
		info: info,
		tracker: job.NewTracker(id, job.TrackerOptions{
			Retain: m.dev.retain,
			Hooks:  m.dev.trackerHooks(),
			Logger: m.dev.logger.With("client", m.client),
		}),
	}
	m.mu.Lock()
	m.contexts[id] = hc
	m.mu.Unlock()
	m.dev.contextAdded()

	m.logger.InfoContext(ctx, "created context", "context", id, "fw_ctx_id", fwID,
		"start_col", info.StartCol, "num_col", info.NumCol, "cus", len(info.CUs))
	return info, nil
}

// ConfigContext replaces the CU table of a READY context.
func (m *Manager) ConfigContext(ctx context.Context, id xdna.ContextID, cus []xdna.CUConfig) error {
	ctx = m.dev.beginOp(ctx)
	hc, err := m.lockLive(id)
	if err != nil {
		return err
	}
	defer hc.mu.Unlock()

	if hc.info.Status != xdna.StatusReady {
		return xdna.ErrInvalidContext{ID: id, Status: hc.info.Status, Exists: true}
	}
	if err := m.validateCUBuffers(ctx, cus); err != nil {
		return err
	}
	if err := m.dev.firmware.ConfigCU(ctx, hc.info.FWContextID, cus); err != nil {
		return fmt.Errorf("firmware config cu of context %d: %w", id, err)
	}
	if err := m.dev.table.Configure(id, cus); err != nil {
		return err
	}
	hc.info.CUs = slices.Clone(cus)
	if err := m.dev.store.SaveContext(ctx, hc.info); err != nil {
		m.logger.WarnContext(ctx, "cannot persist context", "context", id, "error", err)
	}
	m.logger.InfoContext(ctx, "configured context", "context", id, "cus", len(cus))
	return nil
}

// validateCUBuffers checks that every CU's PDI buffer belongs to the
// client.
func (m *Manager) validateCUBuffers(ctx context.Context, cus []xdna.CUConfig) error {
	for _, cu := range cus {
		b, err := m.dev.buffers.Resolve(ctx, m.client, cu.BO)
		if err != nil {
			return err
		}
		b.Unpin()
	}
	return nil
}

// DestroyContext tears down a context. Without force it fails with
// ErrContextBusy while jobs are QUEUED, SUBMITTED or RUNNING; with
// force those jobs are aborted first.
func (m *Manager) DestroyContext(ctx context.Context, id xdna.ContextID, force bool) error {
	ctx = m.dev.beginOp(ctx)
	hc, err := m.lockLive(id)
	if err != nil {
		return err
	}
	defer hc.mu.Unlock()

	if n := hc.tracker.Active(); n > 0 && !force {
		return xdna.ErrContextBusy{ID: id, Active: n}
	}
	return m.teardownLocked(ctx, hc)
}

// teardownLocked destroys hc. The caller holds hc.mu.
func (m *Manager) teardownLocked(ctx context.Context, hc *hwctx) error {
	id := hc.info.ID
	hc.gone = true
	m.mu.Lock()
	delete(m.contexts, id)
	m.mu.Unlock()

	aborted := hc.tracker.AbortAll()
	err := m.dev.executor.Execute(context.WithoutCancel(ctx), compute.Teardown(hc.info))
	m.dev.contextRemoved()

	if err != nil {
		m.logger.ErrorContext(ctx, "context teardown incomplete", "context", id, "error", err)
		return fmt.Errorf("destroy context %d: %w", id, err)
	}
	m.logger.InfoContext(ctx, "destroyed context", "context", id, "aborted", aborted)
	return nil
}

// ListContexts returns snapshots of the client's contexts in id order.
func (m *Manager) ListContexts() []xdna.HWContext {
	m.mu.Lock()
	hcs := make([]*hwctx, 0, len(m.contexts))
	for _, hc := range m.contexts {
		hcs = append(hcs, hc)
	}
	m.mu.Unlock()

	out := make([]xdna.HWContext, 0, len(hcs))
	for _, hc := range hcs {
		hc.mu.Lock()
		if !hc.gone {
			out = append(out, cloneContext(hc.info))
		}
		hc.mu.Unlock()
	}
	slices.SortFunc(out, func(a, b xdna.HWContext) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// GetContext returns a snapshot of one context.
func (m *Manager) GetContext(id xdna.ContextID) (xdna.HWContext, error) {
	hc, err := m.lockLive(id)
	if err != nil {
		return xdna.HWContext{}, err
	}
	defer hc.mu.Unlock()
	return cloneContext(hc.info), nil
}

func cloneContext(info xdna.HWContext) xdna.HWContext {
	info.CUs = slices.Clone(info.CUs)
	return info
}
