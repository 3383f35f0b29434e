package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/action"
	"github.com/frobware/go-xdna/compute"
	"github.com/frobware/go-xdna/interpreter"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/metrics"
	"github.com/frobware/go-xdna/resource"
)

// DeviceConfig wires a Device to its collaborators. Table, Firmware,
// Dispatcher and Buffers are required; Store and Metrics are optional.
type DeviceConfig struct {
	Table      *resource.Table
	Firmware   interpreter.Firmware
	Dispatcher interpreter.Dispatcher
	Buffers    interpreter.BufferResolver
	Store      interpreter.Store
	Metrics    *metrics.Metrics
	// Retain is passed to each context's job tracker.
	Retain int
	Logger *slog.Logger
}

// Device is the state every client of one accelerator shares: the
// column table, context id allocation and the collaborators. Clients
// get their own Manager from NewManager.
type Device struct {
	table      *resource.Table
	firmware   interpreter.Firmware
	dispatcher interpreter.Dispatcher
	buffers    interpreter.BufferResolver
	store      interpreter.Store
	metrics    *metrics.Metrics
	executor   interpreter.ActionExecutor
	retain     int
	logger     *slog.Logger

	nextID atomic.Uint32
	opSeq  atomic.Uint64

	mu       sync.Mutex
	managers map[xdna.ClientID]*Manager
	active   int
}

// NewDevice validates cfg and returns a device with no contexts.
func NewDevice(cfg DeviceConfig) (*Device, error) {
	switch {
	case cfg.Table == nil:
		return nil, errors.New("device needs a resource table")
	case cfg.Firmware == nil:
		return nil, errors.New("device needs a firmware")
	case cfg.Dispatcher == nil:
		return nil, errors.New("device needs a dispatcher")
	case cfg.Buffers == nil:
		return nil, errors.New("device needs a buffer resolver")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := cfg.Store
	if store == nil {
		store = nopStore{}
	}
	return &Device{
		table:      cfg.Table,
		firmware:   cfg.Firmware,
		dispatcher: cfg.Dispatcher,
		buffers:    cfg.Buffers,
		store:      store,
		metrics:    cfg.Metrics,
		executor:   interpreter.NewExecutor(store, cfg.Firmware, cfg.Dispatcher, cfg.Table),
		retain:     cfg.Retain,
		logger:     WithOpIDHandler(logger).With("component", "manager"),
		managers:   make(map[xdna.ClientID]*Manager),
	}, nil
}

// Table returns the device's column table.
func (d *Device) Table() *resource.Table { return d.table }

// Manager returns the manager for client, creating it on first use.
func (d *Device) Manager(client xdna.ClientID) *Manager {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.managers[client]
	if !ok {
		m = &Manager{
			dev:      d,
			client:   client,
			logger:   d.logger.With("client", client),
			contexts: make(map[xdna.ContextID]*hwctx),
		}
		d.managers[client] = m
	}
	return m
}

// CloseClient removes every context client owns and forgets its
// manager. It is the session teardown path.
func (d *Device) CloseClient(ctx context.Context, client xdna.ClientID) error {
	d.mu.Lock()
	m, ok := d.managers[client]
	delete(d.managers, client)
	d.mu.Unlock()
	if !ok {
		return nil
	}
	_, err := m.RemoveAll(ctx)
	return err
}

// Clients returns the ids of clients with a manager.
func (d *Device) Clients() []xdna.ClientID {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]xdna.ClientID, 0, len(d.managers))
	for c := range d.managers {
		out = append(out, c)
	}
	return out
}

// GC removes context records left in the store by a previous daemon.
// Hardware state does not survive a restart, so any persisted context
// that is not live in this process is stale.
func (d *Device) GC(ctx context.Context) (int, error) {
	stored, err := d.store.ListContexts(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("list stored contexts: %w", err)
	}
	plan := compute.ReconcileActions(stored, func(id xdna.ContextID) bool {
		_, live := d.table.Lookup(id)
		return live
	})
	err = d.store.RunInTransaction(ctx, func(tx interpreter.Store) error {
		return interpreter.NewExecutor(tx, d.firmware, d.dispatcher, d.table).Execute(ctx, plan)
	})
	if err != nil {
		return 0, fmt.Errorf("gc: %w", err)
	}
	// Keep fresh ids above anything a previous run handed out.
	highest := uint32(compute.HighestContextID(stored))
	for {
		cur := d.nextID.Load()
		if highest <= cur || d.nextID.CompareAndSwap(cur, highest) {
			break
		}
	}
	if n := len(plan.Actions); n > 0 {
		d.logger.InfoContext(ctx, "removed stale contexts", "count", n)
	}
	return len(plan.Actions), nil
}

func (d *Device) beginOp(ctx context.Context) context.Context {
	if OpIDFromContext(ctx) != 0 {
		return ctx
	}
	return ContextWithOpID(ctx, d.opSeq.Add(1))
}

func (d *Device) contextAdded() {
	d.mu.Lock()
	d.active++
	n := d.active
	d.mu.Unlock()
	if d.metrics != nil {
		d.metrics.ContextsCreated.Inc()
		d.metrics.ContextsActive.Set(float64(n))
		d.metrics.ColumnsInUse.Set(float64(bits.OnesCount64(d.table.Used())))
	}
}

func (d *Device) contextRemoved() {
	d.mu.Lock()
	d.active--
	n := d.active
	d.mu.Unlock()
	if d.metrics != nil {
		d.metrics.ContextsActive.Set(float64(n))
		d.metrics.ColumnsInUse.Set(float64(bits.OnesCount64(d.table.Used())))
	}
}

// trackerHooks persists job snapshots and feeds the metrics.
func (d *Device) trackerHooks() job.Hooks {
	save := func(info job.Info) {
		if err := d.executor.Execute(context.Background(), action.SaveJob{Job: info}); err != nil {
			d.logger.Debug("cannot record job", "context", info.Context, "seq", info.Seq, "error", err)
		}
	}
	hooks := job.Hooks{Admitted: save, Finished: save}
	if d.metrics != nil {
		hooks = d.metrics.JobHooks(hooks)
	}
	return hooks
}
