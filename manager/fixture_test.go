package manager_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/interpreter"
	"github.com/frobware/go-xdna/interpreter/sim"
	"github.com/frobware/go-xdna/interpreter/store/sqlite"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/logging"
	"github.com/frobware/go-xdna/manager"
	"github.com/frobware/go-xdna/resource"
)

const (
	alice xdna.ClientID = "alice"
	bob   xdna.ClientID = "bob"
)

// fakeDispatcher holds dispatched jobs until the test completes them.
type fakeDispatcher struct {
	mu       sync.Mutex
	jobs     map[xdna.ContextID][]*job.Job
	suspends map[xdna.ContextID]int
	resumes  map[xdna.ContextID]int
	stops    map[xdna.ContextID]int
	failNext error
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		jobs:     make(map[xdna.ContextID][]*job.Job),
		suspends: make(map[xdna.ContextID]int),
		resumes:  make(map[xdna.ContextID]int),
		stops:    make(map[xdna.ContextID]int),
	}
}

func (d *fakeDispatcher) Dispatch(_ context.Context, j *job.Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failNext; err != nil {
		d.failNext = nil
		return err
	}
	d.jobs[j.Context()] = append(d.jobs[j.Context()], j)
	return nil
}

func (d *fakeDispatcher) Suspend(_ context.Context, id xdna.ContextID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suspends[id]++
	return nil
}

func (d *fakeDispatcher) Resume(_ context.Context, id xdna.ContextID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resumes[id]++
	return nil
}

// Stop completes every held job of the context with ABORT.
func (d *fakeDispatcher) Stop(_ context.Context, id xdna.ContextID) error {
	d.mu.Lock()
	jobs := d.jobs[id]
	delete(d.jobs, id)
	d.stops[id]++
	d.mu.Unlock()
	for _, j := range jobs {
		j.Complete(command.StateAbort)
	}
	return nil
}

// job returns the held job seq of context id.
func (d *fakeDispatcher) job(id xdna.ContextID, seq uint64) *job.Job {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, j := range d.jobs[id] {
		if j.Seq() == seq {
			return j
		}
	}
	return nil
}

// complete delivers the hardware completion of job seq.
func (d *fakeDispatcher) complete(id xdna.ContextID, seq uint64, state command.State) bool {
	d.mu.Lock()
	var found *job.Job
	kept := d.jobs[id][:0]
	for _, j := range d.jobs[id] {
		if j.Seq() == seq {
			found = j
			continue
		}
		kept = append(kept, j)
	}
	d.jobs[id] = kept
	d.mu.Unlock()
	if found == nil {
		return false
	}
	return found.Complete(state)
}

func (d *fakeDispatcher) held(id xdna.ContextID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs[id])
}

func (d *fakeDispatcher) counts(id xdna.ContextID) (suspends, resumes, stops int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suspends[id], d.resumes[id], d.stops[id]
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	dev   *manager.Device
	table *resource.Table
	fw    *sim.Firmware
	disp  *fakeDispatcher
	pool  *buffer.Pool
	store interpreter.Store
}

// newFixture builds a device with columns columns, a fake dispatcher,
// the simulated firmware and an in-memory store.
func newFixture(t *testing.T, columns uint32) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := logging.Discard()

	table, err := resource.NewTable(columns, logger)
	require.NoError(t, err)
	store, err := sqlite.NewInMemory(ctx, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	f := &fixture{
		t:     t,
		ctx:   ctx,
		table: table,
		fw:    sim.NewFirmware(logger),
		disp:  newFakeDispatcher(),
		pool:  buffer.NewPool(logger),
		store: store,
	}
	f.dev, err = manager.NewDevice(manager.DeviceConfig{
		Table:      table,
		Firmware:   f.fw,
		Dispatcher: f.disp,
		Buffers:    f.pool,
		Store:      store,
		Logger:     logger,
	})
	require.NoError(t, err)
	return f
}

// create makes a context of cols columns for m.
func (f *fixture) create(m *manager.Manager, cols uint32) xdna.HWContext {
	f.t.Helper()
	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: cols})
	require.NoError(f.t, err)
	return hw
}

// upload writes data into a new buffer owned by client.
func (f *fixture) upload(client xdna.ClientID, data []byte) xdna.BufferHandle {
	f.t.Helper()
	h, err := f.pool.Create(client, len(data))
	require.NoError(f.t, err)
	require.NoError(f.t, f.pool.Write(client, h, 0, data))
	return h
}

// startCU uploads a START_CU command targeting cu.
func (f *fixture) startCU(client xdna.ClientID, cu int) xdna.BufferHandle {
	f.t.Helper()
	cmd, err := command.New(command.CUMask(cu), command.StartCU{Args: []uint32{1, 2}})
	require.NoError(f.t, err)
	return f.upload(client, cmd.Marshal())
}

// submit submits a START_CU command for CU 0 and returns its sequence
// number.
func (f *fixture) submit(m *manager.Manager, id xdna.ContextID) uint64 {
	f.t.Helper()
	seq, err := m.Submit(f.ctx, id, f.startCU(m.Client(), 0), nil)
	require.NoError(f.t, err)
	return seq
}

// pins returns the reference count the pool holds on handle: one for
// the open handle plus one per pin.
func (f *fixture) pins(client xdna.ClientID, handle xdna.BufferHandle) int32 {
	f.t.Helper()
	for _, info := range f.pool.List(client) {
		if info.Handle == handle {
			return info.Pins
		}
	}
	return 0
}

func requireErrorAs[T error](t *testing.T, err error) T {
	t.Helper()
	var target T
	require.Error(t, err)
	require.True(t, errors.As(err, &target), "expected %T, got %v", target, err)
	return target
}
