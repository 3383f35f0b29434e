package manager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/interpreter/store"
	"github.com/frobware/go-xdna/job"
)

func TestCreateContext_ReadyAfterFirmwareHandshake(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)

	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{Name: "infer", Columns: 4, QoS: xdna.QoS{Priority: 2}})
	require.NoError(t, err)

	assert.Equal(t, xdna.StatusReady, hw.Status)
	assert.Equal(t, alice, hw.Client)
	assert.Equal(t, uint32(4), hw.NumCol)
	assert.NotZero(t, hw.FWContextID)
	assert.Equal(t, 1, f.fw.Contexts())
	assert.Equal(t, uint64(0xf), f.table.Used())

	saved, err := f.store.GetContext(f.ctx, hw.ID)
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusReady, saved.Status)
	assert.Equal(t, "infer", saved.Name)
	assert.Equal(t, uint32(2), saved.QoS.Priority)
}

// TestCreateContext_ExhaustedThenFreed verifies that column exhaustion
// is reported and that destroying a context makes its columns
// available again.
//
// Given a device with 8 columns and a 6-column context,
// When a 4-column context is requested,
// Then ResourceExhausted is returned,
// And after destroying the first context the request succeeds.
func TestCreateContext_ExhaustedThenFreed(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	big := f.create(m, 6)

	_, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 4})
	exhausted := requireErrorAs[xdna.ErrResourceExhausted](t, err)
	assert.Equal(t, uint32(4), exhausted.Requested)
	assert.Equal(t, uint32(2), exhausted.Free)
	assert.Equal(t, 1, f.fw.Contexts(), "failed create must not reach firmware")

	require.NoError(t, m.DestroyContext(f.ctx, big.ID, false))
	assert.Zero(t, f.table.Used())

	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 4})
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusReady, hw.Status)
}

func TestCreateContext_FirmwareFailureRollsBack(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	f.fw.FailNextCreate(errors.New("firmware busy"))

	_, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 2})
	require.ErrorContains(t, err, "firmware busy")

	assert.Zero(t, f.table.Used(), "columns must be released")
	assert.Empty(t, m.ListContexts())
	stored, err := f.store.ListContexts(f.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateContext_ConfiguresCUs(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	pdi := f.upload(alice, make([]byte, 64))

	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{
		Columns: 1,
		CUs:     []xdna.CUConfig{{BO: pdi, Function: 0}, {BO: pdi, Function: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, hw.CUs, 2)
	assert.Len(t, f.fw.CUs(hw.FWContextID), 2)
	assert.Equal(t, int32(1), f.pins(alice, pdi), "validation must not leave pins behind")
}

func TestCreateContext_RejectsForeignCUBuffer(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	pdi := f.upload(bob, make([]byte, 64))

	_, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 1, CUs: []xdna.CUConfig{{BO: pdi}}})
	requireErrorAs[xdna.ErrInvalidBuffer](t, err)
	assert.Zero(t, f.table.Used())
	assert.Zero(t, f.fw.Contexts())
}

func TestConfigContext(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 2)
	pdi := f.upload(alice, make([]byte, 16))

	require.NoError(t, m.ConfigContext(f.ctx, hw.ID, []xdna.CUConfig{{BO: pdi, Function: 3}}))

	got, err := m.GetContext(hw.ID)
	require.NoError(t, err)
	assert.Equal(t, []xdna.CUConfig{{BO: pdi, Function: 3}}, got.CUs)
	entry, ok := f.table.Lookup(hw.ID)
	require.True(t, ok)
	assert.Equal(t, got.CUs, entry.CUs)
}

func TestContextsAreScopedToClient(t *testing.T) {
	f := newFixture(t, 8)
	hw := f.create(f.dev.Manager(alice), 2)
	other := f.dev.Manager(bob)

	_, err := other.GetContext(hw.ID)
	invalid := requireErrorAs[xdna.ErrInvalidContext](t, err)
	assert.False(t, invalid.Exists)

	err = other.DestroyContext(f.ctx, hw.ID, true)
	requireErrorAs[xdna.ErrInvalidContext](t, err)
	assert.Empty(t, other.ListContexts())
	assert.Len(t, f.dev.Manager(alice).ListContexts(), 1)
}

func TestSubmit_SequenceNumbersAreGapFree(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)

	var seqs []uint64
	for range 3 {
		seqs = append(seqs, f.submit(m, hw.ID))
	}
	// Rejected submissions do not consume a sequence number.
	_, err := m.Submit(f.ctx, hw.ID, 9999, nil)
	require.Error(t, err)
	seqs = append(seqs, f.submit(m, hw.ID))

	assert.Equal(t, []uint64{0, 1, 2, 3}, seqs)
	assert.Equal(t, 4, f.disp.held(hw.ID))

	j := f.disp.job(hw.ID, 0)
	require.NotNil(t, j)
	assert.Equal(t, command.StateSubmitted, j.State())
	state, err := command.GetState(j.Command().Bytes())
	require.NoError(t, err)
	assert.Equal(t, command.StateSubmitted, state, "state is latched into the command buffer")
}

func TestSubmit_Rejections(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	pdi := f.upload(alice, make([]byte, 16))
	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 1, CUs: []xdna.CUConfig{{BO: pdi}}})
	require.NoError(t, err)

	noCU, err := command.New([]uint32{0}, command.StartCU{Args: []uint32{1}})
	require.NoError(t, err)
	shortDPU := command.Command{
		Header: command.Header{Opcode: command.OpStartDPU},
		Data:   []uint32{0x1, 0x1000, 0},
	}
	chainedDPU, err := command.New(command.CUMask(0), command.StartDPU{InstructionBuffer: 0x1000, InstructionBufferSize: 64, Chained: 1})
	require.NoError(t, err)
	unknownOp := command.Command{
		Header: command.Header{Opcode: 5},
		Data:   []uint32{0x1, 7},
	}

	tests := []struct {
		name  string
		id    xdna.ContextID
		cmd   xdna.BufferHandle
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown context",
			id:   hw.ID + 100,
			cmd:  f.startCU(alice, 0),
			check: func(t *testing.T, err error) {
				requireErrorAs[xdna.ErrInvalidContext](t, err)
			},
		},
		{
			name: "unknown buffer",
			id:   hw.ID,
			cmd:  12345,
			check: func(t *testing.T, err error) {
				requireErrorAs[xdna.ErrInvalidBuffer](t, err)
			},
		},
		{
			name: "foreign buffer",
			id:   hw.ID,
			cmd:  f.startCU(bob, 0),
			check: func(t *testing.T, err error) {
				requireErrorAs[xdna.ErrInvalidBuffer](t, err)
			},
		},
		{
			name: "truncated packet",
			id:   hw.ID,
			cmd:  f.upload(alice, []byte{0x01, 0x00}),
			check: func(t *testing.T, err error) {
				requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				requireErrorAs[xdna.ErrMalformedHeader](t, err)
			},
		},
		{
			name: "no CU selected",
			id:   hw.ID,
			cmd:  f.upload(alice, noCU.Marshal()),
			check: func(t *testing.T, err error) {
				ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				assert.Contains(t, ib.Reason, "no compute unit")
			},
		},
		{
			name: "CU outside configured table",
			id:   hw.ID,
			cmd:  f.startCU(alice, 5),
			check: func(t *testing.T, err error) {
				ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				assert.Contains(t, ib.Reason, "not configured")
			},
		},
		{
			name: "START_DPU shorter than its prefix",
			id:   hw.ID,
			cmd:  f.upload(alice, shortDPU.Marshal()),
			check: func(t *testing.T, err error) {
				ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				assert.Equal(t, "malformed payload", ib.Reason)
				requireErrorAs[xdna.ErrMalformedHeader](t, err)
			},
		},
		{
			name: "START_DPU with chained set",
			id:   hw.ID,
			cmd:  f.upload(alice, chainedDPU.Marshal()),
			check: func(t *testing.T, err error) {
				ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				assert.Equal(t, "malformed payload", ib.Reason)
			},
		},
		{
			name: "unsupported opcode",
			id:   hw.ID,
			cmd:  f.upload(alice, unknownOp.Marshal()),
			check: func(t *testing.T, err error) {
				ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
				assert.Equal(t, "malformed payload", ib.Reason)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Submit(f.ctx, tt.id, tt.cmd, nil)
			tt.check(t, err)
		})
	}

	aux := f.upload(alice, make([]byte, 8))
	_, err = m.Submit(f.ctx, hw.ID, f.startCU(alice, 0), []xdna.BufferHandle{aux, 777})
	requireErrorAs[xdna.ErrInvalidBuffer](t, err)
	assert.Equal(t, int32(1), f.pins(alice, aux), "rejected submit must unpin what it resolved")

	assert.Zero(t, f.disp.held(hw.ID))
	jobs, err := m.Jobs(hw.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSubmit_CUIndexFromFirstNonZeroMaskWord(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	cus := []xdna.CUConfig{{BO: f.upload(alice, make([]byte, 16))}, {BO: f.upload(alice, make([]byte, 16))}}
	hw, err := m.CreateContext(f.ctx, xdna.ContextSpec{Columns: 1, CUs: cus})
	require.NoError(t, err)

	// The second mask word selects bit 1, which is CU 1 of this context.
	cmd := command.Command{
		Header: command.Header{Opcode: command.OpStartCU, ExtraCUMasks: 1},
		Data:   []uint32{0, 0x2, 42},
	}
	seq, err := m.Submit(f.ctx, hw.ID, f.upload(alice, cmd.Marshal()), nil)
	require.NoError(t, err)

	j := f.disp.job(hw.ID, seq)
	require.NotNil(t, j)
	assert.Equal(t, 1, j.CUIndex())
}

func TestSubmit_PinsBuffersUntilRelease(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	cmd := f.startCU(alice, 0)
	aux := f.upload(alice, make([]byte, 32))

	seq, err := m.Submit(f.ctx, hw.ID, cmd, []xdna.BufferHandle{aux})
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.pins(alice, cmd))
	assert.Equal(t, int32(2), f.pins(alice, aux))

	require.True(t, f.disp.complete(hw.ID, seq, command.StateCompleted))
	state, err := m.Wait(f.ctx, hw.ID, seq, time.Second)
	require.NoError(t, err)
	assert.Equal(t, command.StateCompleted, state)
	assert.Equal(t, int32(1), f.pins(alice, cmd))
	assert.Equal(t, int32(1), f.pins(alice, aux))
}

func TestSubmit_ChainResolvesSubCommands(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	subs := []xdna.BufferHandle{f.startCU(alice, 0), f.startCU(alice, 0), f.startCU(alice, 0)}
	chain, err := command.NewChain(0, []uint64{uint64(subs[0]), uint64(subs[1]), uint64(subs[2])})
	require.NoError(t, err)

	seq, err := m.Submit(f.ctx, hw.ID, f.upload(alice, chain.Marshal()), nil)
	require.NoError(t, err)

	j := f.disp.job(hw.ID, seq)
	require.NotNil(t, j)
	assert.Equal(t, -1, j.CUIndex())
	require.Len(t, j.Chain(), 3)
	for i, b := range j.Chain() {
		assert.Equal(t, subs[i], b.Handle())
		assert.Equal(t, int32(2), f.pins(alice, subs[i]))
	}

	require.NoError(t, j.SetChainErrorIndex(1))
	f.disp.complete(hw.ID, seq, command.StateError)
	for _, h := range subs {
		assert.Equal(t, int32(1), f.pins(alice, h))
	}
}

func TestSubmit_ChainRejectsUnresolvableReference(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	good := f.startCU(alice, 0)
	chain, err := command.NewChain(0, []uint64{uint64(good), 4242})
	require.NoError(t, err)

	_, err = m.Submit(f.ctx, hw.ID, f.upload(alice, chain.Marshal()), nil)
	ib := requireErrorAs[xdna.ErrInvalidBuffer](t, err)
	assert.Equal(t, xdna.BufferHandle(4242), ib.Handle)
	assert.Equal(t, int32(1), f.pins(alice, good))
}

func TestSubmit_DispatchFailureBecomesErrorState(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	f.disp.failNext = errors.New("queue full")

	seq, err := m.Submit(f.ctx, hw.ID, f.startCU(alice, 0), nil)
	require.NoError(t, err, "failures after admission are reported by wait")

	state, err := m.Wait(f.ctx, hw.ID, seq, time.Second)
	require.NoError(t, err)
	assert.Equal(t, command.StateError, state)
}

// TestWait_TimeoutZeroWhileRunningIgnoresLateCompletion verifies that a
// polling wait latches TIMEOUT and that the hardware completion which
// arrives afterwards does not change it.
//
// Given a RUNNING job,
// When wait is called with a zero timeout,
// Then TIMEOUT is returned,
// And a later COMPLETED callback leaves the job in TIMEOUT.
func TestWait_TimeoutZeroWhileRunningIgnoresLateCompletion(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	seq := f.submit(m, hw.ID)
	j := f.disp.job(hw.ID, seq)
	require.True(t, j.Start())

	state, err := m.Wait(f.ctx, hw.ID, seq, 0)
	require.NoError(t, err)
	assert.Equal(t, command.StateTimeout, state)

	assert.True(t, f.disp.complete(hw.ID, seq, command.StateCompleted))
	state, err = m.Wait(f.ctx, hw.ID, seq, time.Second)
	require.NoError(t, err)
	assert.Equal(t, command.StateTimeout, state)
	assert.Zero(t, j.Refs())
}

func TestWait_UnknownSequence(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	seq := f.submit(m, hw.ID)

	_, err := m.Wait(f.ctx, hw.ID, seq+1, time.Second)
	unknown := requireErrorAs[xdna.ErrUnknownSequence](t, err)
	assert.False(t, unknown.Reclaimed)

	f.disp.complete(hw.ID, seq, command.StateCompleted)
	low, err := m.Reclaim(hw.ID, seq+1)
	require.NoError(t, err)
	assert.Equal(t, seq+1, low)

	_, err = m.Wait(f.ctx, hw.ID, seq, time.Second)
	unknown = requireErrorAs[xdna.ErrUnknownSequence](t, err)
	assert.True(t, unknown.Reclaimed)
}

func TestCancel(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	seq := f.submit(m, hw.ID)

	state, err := m.Cancel(f.ctx, hw.ID, seq)
	require.NoError(t, err)
	assert.Equal(t, command.StateAbort, state)

	// The dispatcher's completion arrives after the abort.
	f.disp.complete(hw.ID, seq, command.StateCompleted)
	state, err = m.Cancel(f.ctx, hw.ID, seq)
	require.NoError(t, err)
	assert.Equal(t, command.StateAbort, state)
}

func TestDestroyContext_RefusesLiveJobsWithoutForce(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 2)
	seq := f.submit(m, hw.ID)

	err := m.DestroyContext(f.ctx, hw.ID, false)
	busy := requireErrorAs[xdna.ErrContextBusy](t, err)
	assert.Equal(t, 1, busy.Active)
	_, err = m.GetContext(hw.ID)
	require.NoError(t, err, "refused destroy leaves the context intact")

	require.NoError(t, m.DestroyContext(f.ctx, hw.ID, true))
	assert.Zero(t, f.table.Used())
	assert.Zero(t, f.fw.Contexts())
	_, _, stops := f.disp.counts(hw.ID)
	assert.Equal(t, 1, stops)

	_, err = f.store.GetContext(f.ctx, hw.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = m.Wait(f.ctx, hw.ID, seq, 0)
	requireErrorAs[xdna.ErrInvalidContext](t, err)
}

// TestSuspendResume verifies that suspend is idempotent and that resume
// restores the pre-suspend status.
//
// Given a READY context with no jobs,
// When the client is suspended twice,
// Then the dispatcher sees one suspend and the status is STOP,
// And submissions are rejected until resume restores READY.
func TestSuspendResume(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)

	require.NoError(t, m.Suspend(f.ctx))
	require.NoError(t, m.Suspend(f.ctx))

	got, err := m.GetContext(hw.ID)
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusStop, got.Status)
	assert.Equal(t, xdna.StatusReady, got.OldStatus)
	suspends, _, _ := f.disp.counts(hw.ID)
	assert.Equal(t, 1, suspends)

	_, err = m.Submit(f.ctx, hw.ID, f.startCU(alice, 0), nil)
	invalid := requireErrorAs[xdna.ErrInvalidContext](t, err)
	assert.True(t, invalid.Exists)
	assert.Equal(t, xdna.StatusStop, invalid.Status)

	require.NoError(t, m.Resume(f.ctx))
	require.NoError(t, m.Resume(f.ctx))
	got, err = m.GetContext(hw.ID)
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusReady, got.Status)
	_, resumes, _ := f.disp.counts(hw.ID)
	assert.Equal(t, 1, resumes)

	saved, err := f.store.GetContext(f.ctx, hw.ID)
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusReady, saved.Status)

	f.submit(m, hw.ID)
}

func TestSuspend_LeavesRunningJobsAlone(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	seq := f.submit(m, hw.ID)
	j := f.disp.job(hw.ID, seq)
	require.True(t, j.Start())

	require.NoError(t, m.Suspend(f.ctx))
	assert.Equal(t, command.StateRunning, j.State())

	require.NoError(t, m.Resume(f.ctx))
	f.disp.complete(hw.ID, seq, command.StateCompleted)
	state, err := m.Wait(f.ctx, hw.ID, seq, time.Second)
	require.NoError(t, err)
	assert.Equal(t, command.StateCompleted, state)
}

// TestRemoveAll_AbortsRunningJobAndFreesColumns verifies client
// teardown.
//
// Given a client with two contexts, one holding a RUNNING job with a
// waiter blocked on it,
// When RemoveAll runs,
// Then the waiter observes ABORT,
// And both contexts' columns are free and the buffers are unpinned.
func TestRemoveAll_AbortsRunningJobAndFreesColumns(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	busy := f.create(m, 2)
	idle := f.create(m, 3)
	require.Equal(t, uint64(0x1f), f.table.Used())

	cmd := f.startCU(alice, 0)
	seq, err := m.Submit(f.ctx, busy.ID, cmd, nil)
	require.NoError(t, err)
	j := f.disp.job(busy.ID, seq)
	require.True(t, j.Start())

	type result struct {
		state command.State
		err   error
	}
	waited := make(chan result, 1)
	go func() {
		state, err := m.Wait(f.ctx, busy.ID, seq, job.NoTimeout)
		waited <- result{state, err}
	}()
	// Tracker, dispatcher and waiter each hold a reference.
	require.Eventually(t, func() bool { return j.Refs() == 3 }, time.Second, time.Millisecond)

	n, err := m.RemoveAll(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	select {
	case r := <-waited:
		require.NoError(t, r.err)
		assert.Equal(t, command.StateAbort, r.state)
	case <-time.After(5 * time.Second):
		t.Fatal("waiter was not released")
	}

	assert.Zero(t, f.table.Used())
	assert.Zero(t, f.fw.Contexts())
	assert.Empty(t, m.ListContexts())
	assert.Zero(t, j.Refs())
	assert.Equal(t, int32(1), f.pins(alice, cmd))
	_, _, stops := f.disp.counts(idle.ID)
	assert.Equal(t, 1, stops)
}

func TestCloseClient(t *testing.T) {
	f := newFixture(t, 8)
	f.create(f.dev.Manager(alice), 2)
	f.create(f.dev.Manager(bob), 2)

	require.NoError(t, f.dev.CloseClient(f.ctx, alice))
	assert.Equal(t, []xdna.ClientID{bob}, f.dev.Clients())
	assert.Equal(t, uint64(0xc), f.table.Used())
	require.NoError(t, f.dev.CloseClient(f.ctx, alice), "closing twice is harmless")
}

func TestHistoryOutlivesReclaim(t *testing.T) {
	f := newFixture(t, 8)
	m := f.dev.Manager(alice)
	hw := f.create(m, 1)
	for range 3 {
		seq := f.submit(m, hw.ID)
		f.disp.complete(hw.ID, seq, command.StateCompleted)
	}
	_, err := m.Reclaim(hw.ID, 3)
	require.NoError(t, err)

	jobs, err := m.Jobs(hw.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	history, err := m.History(f.ctx, hw.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, info := range history {
		assert.Equal(t, uint64(i), info.Seq)
		assert.Equal(t, command.StateCompleted, info.State)
	}
}

func TestGCRemovesStaleContexts(t *testing.T) {
	f := newFixture(t, 8)
	stale := xdna.HWContext{ID: 41, Client: "gone", Status: xdna.StatusReady, CreatedAt: time.Now()}
	require.NoError(t, f.store.SaveContext(f.ctx, stale))
	live := f.create(f.dev.Manager(alice), 1)

	removed, err := f.dev.GC(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.store.GetContext(f.ctx, stale.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = f.store.GetContext(f.ctx, live.ID)
	require.NoError(t, err)

	next := f.create(f.dev.Manager(alice), 1)
	assert.Greater(t, next.ID, stale.ID, "fresh ids stay above persisted ones")
}
