package sim_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/interpreter/sim"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/logging"
)

const client xdna.ClientID = "c1"

type fixture struct {
	t       *testing.T
	pool    *buffer.Pool
	tracker *job.Tracker
	backend *sim.Backend
}

func newFixture(t *testing.T, opts sim.Options) *fixture {
	t.Helper()
	opts.Logger = logging.Discard()
	b := sim.NewBackend(opts)
	t.Cleanup(func() { b.Close() })
	return &fixture{
		t:       t,
		pool:    buffer.NewPool(logging.Discard()),
		tracker: job.NewTracker(1, job.TrackerOptions{Logger: logging.Discard()}),
		backend: b,
	}
}

// upload writes cmd into a new buffer and returns it pinned.
func (f *fixture) upload(cmd command.Command) xdna.Buffer {
	f.t.Helper()
	data := cmd.Marshal()
	h, err := f.pool.Create(client, len(data))
	require.NoError(f.t, err)
	require.NoError(f.t, f.pool.Write(client, h, 0, data))
	b, err := f.pool.Resolve(context.Background(), client, h)
	require.NoError(f.t, err)
	return b
}

func (f *fixture) startCU(args ...uint32) command.Command {
	f.t.Helper()
	cmd, err := command.New(command.CUMask(0), command.StartCU{Args: args})
	require.NoError(f.t, err)
	return cmd
}

func (f *fixture) dispatch(p job.Params) *job.Job {
	f.t.Helper()
	p.Client = client
	j := f.tracker.Add(p)
	require.True(f.t, j.Submitted())
	require.NoError(f.t, f.backend.Dispatch(context.Background(), j))
	return j
}

func (f *fixture) dispatchCU(args ...uint32) *job.Job {
	cmd := f.startCU(args...)
	return f.dispatch(job.Params{Command: f.upload(cmd), Header: cmd.Header, CUIndex: 0})
}

func (f *fixture) wait(j *job.Job) command.State {
	f.t.Helper()
	st, err := f.tracker.Wait(context.Background(), j.Seq(), 5*time.Second)
	require.NoError(f.t, err)
	return st
}

func TestExecutesInOrder(t *testing.T) {
	f := newFixture(t, sim.Options{Latency: time.Millisecond})
	a := f.dispatchCU(1)
	b := f.dispatchCU(sim.FaultWord)
	c := f.dispatchCU()

	assert.Equal(t, command.StateCompleted, f.wait(a))
	assert.Equal(t, command.StateError, f.wait(b))
	assert.Equal(t, command.StateCompleted, f.wait(c))

	st, err := command.GetState(a.Command().Bytes())
	require.NoError(t, err)
	assert.Equal(t, command.StateCompleted, st)
}

// TestChainRecordsErrorIndex verifies that a failing sub-command fails
// the chain and its position is written into the chain payload.
func TestChainRecordsErrorIndex(t *testing.T) {
	f := newFixture(t, sim.Options{})
	subs := []xdna.Buffer{
		f.upload(f.startCU(1)),
		f.upload(f.startCU(sim.FaultWord)),
		f.upload(f.startCU(3)),
	}
	refs := []uint64{uint64(subs[0].Handle()), uint64(subs[1].Handle()), uint64(subs[2].Handle())}
	chain, err := command.NewChain(0, refs)
	require.NoError(t, err)

	j := f.dispatch(job.Params{Command: f.upload(chain), Header: chain.Header, CUIndex: -1, Chain: subs})
	assert.Equal(t, command.StateError, f.wait(j))

	cmd, err := command.Parse(j.Command().Bytes())
	require.NoError(t, err)
	p, err := cmd.DecodePayload()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p.(command.Chain).ErrorIndex)
}

func TestHangReportsNoResponse(t *testing.T) {
	f := newFixture(t, sim.Options{HangAfter: 20 * time.Millisecond})
	j := f.dispatchCU(sim.HangWord)
	assert.Equal(t, command.StateNoResponse, f.wait(j))
}

func TestStopAbortsRunningAndQueued(t *testing.T) {
	f := newFixture(t, sim.Options{})
	hung := f.dispatchCU(sim.HangWord)
	queued := f.dispatchCU(1)
	require.Eventually(t, func() bool { return hung.State() == command.StateRunning }, time.Second, time.Millisecond)

	require.NoError(t, f.backend.Stop(context.Background(), 1))

	assert.Equal(t, command.StateAbort, hung.State())
	assert.Equal(t, command.StateAbort, queued.State())
	assert.Equal(t, 0, f.backend.Pending(1))

	cmd := f.startCU()
	j := f.tracker.Add(job.Params{Command: f.upload(cmd), Header: cmd.Header})
	j.Submitted()
	require.NoError(t, f.backend.Dispatch(context.Background(), j), "a stopped context id starts a fresh queue")
	assert.Equal(t, command.StateCompleted, f.wait(j))
}

// TestSuspendRequeuesRunningJob verifies that suspending a context
// preempts its running job back to SUBMITTED, and resuming runs it
// again.
func TestSuspendRequeuesRunningJob(t *testing.T) {
	f := newFixture(t, sim.Options{Latency: 200 * time.Millisecond})
	j := f.dispatchCU(1)
	require.Eventually(t, func() bool { return j.State() == command.StateRunning }, time.Second, time.Millisecond)

	require.NoError(t, f.backend.Suspend(context.Background(), 1))
	require.Eventually(t, func() bool { return j.State() == command.StateSubmitted }, time.Second, time.Millisecond)
	require.NoError(t, f.backend.Suspend(context.Background(), 1), "suspend is idempotent")
	require.Eventually(t, func() bool { return f.backend.Pending(1) == 1 }, time.Second, time.Millisecond)

	require.NoError(t, f.backend.Resume(context.Background(), 1))
	assert.Equal(t, command.StateCompleted, f.wait(j))
}

func TestSuspendedContextHoldsNewJobs(t *testing.T) {
	f := newFixture(t, sim.Options{})
	require.NoError(t, f.backend.Suspend(context.Background(), 1))
	j := f.dispatchCU()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, command.StateSubmitted, j.State())

	require.NoError(t, f.backend.Resume(context.Background(), 1))
	assert.Equal(t, command.StateCompleted, f.wait(j))
}

func TestClosedBackendRejectsDispatch(t *testing.T) {
	f := newFixture(t, sim.Options{})
	require.NoError(t, f.backend.Close())
	cmd := f.startCU()
	j := f.tracker.Add(job.Params{Command: f.upload(cmd), Header: cmd.Header})
	j.Submitted()
	assert.Error(t, f.backend.Dispatch(context.Background(), j))
}

func TestFirmware(t *testing.T) {
	fw := sim.NewFirmware(logging.Discard())
	ctx := context.Background()

	id, err := fw.CreateContext(ctx, xdna.HWContext{ID: 1, NumCol: 2})
	require.NoError(t, err)
	require.NoError(t, fw.ConfigCU(ctx, id, []xdna.CUConfig{{BO: 3, Function: 1}}))
	assert.Equal(t, []xdna.CUConfig{{BO: 3, Function: 1}}, fw.CUs(id))
	assert.Equal(t, 1, fw.Contexts())

	boom := errors.New("firmware busy")
	fw.FailNextCreate(boom)
	_, err = fw.CreateContext(ctx, xdna.HWContext{ID: 2})
	require.ErrorIs(t, err, boom)

	require.NoError(t, fw.DestroyContext(ctx, id))
	assert.Error(t, fw.DestroyContext(ctx, id))
	assert.Error(t, fw.ConfigCU(ctx, id, nil))
	assert.Equal(t, 0, fw.Contexts())
}
