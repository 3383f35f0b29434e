package job_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

func TestAddAssignsGapFreeSequenceNumbers(t *testing.T) {
	f := newFixture(t, 0)
	for want := uint64(0); want < 5; want++ {
		j, buf := f.submit(xdna.BufferHandle(want + 1))
		assert.Equal(t, want, j.Seq())
		assert.Equal(t, command.StateQueued, j.State())

		st, err := command.GetState(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, command.StateQueued, st, "state is latched into the command buffer")
	}
	assert.Equal(t, uint64(5), f.tracker.Next())
	assert.Equal(t, 5, f.tracker.Active())
	assert.Len(t, f.rec.admitted, 5)
}

// TestCompleteReleasesBuffers verifies that a job whose hardware
// completes normally drops both initial references and unpins its
// buffers exactly once.
func TestCompleteReleasesBuffers(t *testing.T) {
	f := newFixture(t, 0)
	j, buf := f.submit(1)
	require.True(t, j.Submitted())
	require.True(t, j.Start())
	assert.Equal(t, int32(2), j.Refs())

	require.True(t, j.Complete(command.StateCompleted))

	assert.Equal(t, command.StateCompleted, j.State())
	assert.Equal(t, int32(0), j.Refs())
	assert.Equal(t, int32(0), buf.pins.Load())
	assert.Equal(t, 0, f.tracker.Active())
	assert.Equal(t, []command.State{command.StateCompleted}, f.rec.finishedStates())

	st, err := f.tracker.Wait(context.Background(), 0, time.Second)
	require.NoError(t, err)
	assert.Equal(t, command.StateCompleted, st, "released jobs still report their latched state")
}

func TestDuplicateCompletionIgnored(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)
	j.Submitted()

	assert.True(t, j.Complete(command.StateError))
	assert.False(t, j.Complete(command.StateCompleted))
	assert.Equal(t, command.StateError, j.State())
}

func TestCompleteWithNonTerminalStateReportsError(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)
	j.Submitted()
	j.Complete(command.StateRunning)
	assert.Equal(t, command.StateError, j.State())
}

// TestLateCompletionAfterTimeout verifies that once a waiter latches
// TIMEOUT, the backend's later completion neither changes the state nor
// releases the buffers early.
func TestLateCompletionAfterTimeout(t *testing.T) {
	f := newFixture(t, 0)
	j, buf := f.submit(1)
	j.Submitted()
	j.Start()

	st, err := f.tracker.Wait(context.Background(), j.Seq(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, command.StateTimeout, st)

	// Backend still holds its reference.
	assert.Equal(t, int32(1), j.Refs())
	assert.Equal(t, int32(1), buf.pins.Load())

	j.Complete(command.StateCompleted)

	assert.Equal(t, command.StateTimeout, j.State())
	got, err := command.GetState(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, command.StateTimeout, got)
	assert.Equal(t, int32(0), buf.pins.Load())
	assert.Equal(t, []command.State{command.StateTimeout}, f.rec.finishedStates())
}

func TestWaitZeroTimeoutPolls(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)

	st, err := f.tracker.Wait(context.Background(), j.Seq(), 0)
	require.NoError(t, err)
	assert.Equal(t, command.StateTimeout, st, "QUEUED jobs time out on a poll")
}

func TestWaitReturnsOnCompletion(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)
	j.Submitted()

	go func() {
		time.Sleep(10 * time.Millisecond)
		j.Complete(command.StateCompleted)
	}()
	st, err := f.tracker.Wait(context.Background(), j.Seq(), job.NoTimeout)
	require.NoError(t, err)
	assert.Equal(t, command.StateCompleted, st)
}

func TestWaitContextCancelDoesNotLatch(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)
	j.Submitted()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.tracker.Wait(ctx, j.Seq(), job.NoTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, command.StateSubmitted, j.State())
	assert.Equal(t, int32(2), j.Refs(), "waiter reference dropped")
}

func TestWaitUnknownSequence(t *testing.T) {
	f := newFixture(t, -1)

	_, err := f.tracker.Wait(context.Background(), 0, 0)
	var unknown xdna.ErrUnknownSequence
	require.ErrorAs(t, err, &unknown)
	assert.False(t, unknown.Reclaimed)

	j, _ := f.submit(1)
	j.Submitted()
	j.Complete(command.StateCompleted)
	assert.Equal(t, uint64(1), f.tracker.Reclaim(0), "reclaiming nothing reports the low-water mark")

	_, err = f.tracker.Wait(context.Background(), 0, 0)
	require.ErrorAs(t, err, &unknown)
	assert.True(t, unknown.Reclaimed)

	_, err = f.tracker.Wait(context.Background(), 1, 0)
	require.ErrorAs(t, err, &unknown)
	assert.False(t, unknown.Reclaimed)
}

// TestReclaimStopsAtFirstUnfinishedJob verifies that reclaim only
// drops the contiguous finished prefix.
func TestReclaimStopsAtFirstUnfinishedJob(t *testing.T) {
	f := newFixture(t, 0)
	var jobs []*job.Job
	for i := range 4 {
		j, _ := f.submit(xdna.BufferHandle(i + 1))
		j.Submitted()
		jobs = append(jobs, j)
	}
	jobs[0].Complete(command.StateCompleted)
	jobs[1].Complete(command.StateError)
	jobs[3].Complete(command.StateCompleted)

	assert.Equal(t, uint64(2), f.tracker.Reclaim(f.tracker.Next()))
	assert.Len(t, f.tracker.Jobs(), 2)

	jobs[2].Complete(command.StateCompleted)
	assert.Equal(t, uint64(4), f.tracker.Reclaim(f.tracker.Next()))
	assert.Empty(t, f.tracker.Jobs())
}

func TestAbortAll(t *testing.T) {
	f := newFixture(t, 0)
	queued, qbuf := f.submit(1)
	running, rbuf := f.submit(2)
	running.Submitted()
	running.Start()
	done, _ := f.submit(3)
	done.Submitted()
	done.Complete(command.StateCompleted)

	assert.Equal(t, 2, f.tracker.AbortAll())
	assert.Equal(t, command.StateAbort, queued.State())
	assert.Equal(t, command.StateAbort, running.State())
	assert.Equal(t, command.StateCompleted, done.State())
	assert.Equal(t, 0, f.tracker.Active())

	// Backend references are still outstanding until it completes.
	assert.Equal(t, int32(1), qbuf.pins.Load())
	queued.Complete(command.StateAbort)
	running.Complete(command.StateCompleted)
	assert.Equal(t, int32(0), qbuf.pins.Load())
	assert.Equal(t, int32(0), rbuf.pins.Load())
	assert.Equal(t, command.StateAbort, running.State())
}

func TestRequeue(t *testing.T) {
	f := newFixture(t, 0)
	j, _ := f.submit(1)
	require.False(t, j.Start(), "QUEUED cannot go straight to RUNNING")
	require.True(t, j.Submitted())
	require.True(t, j.Start())
	require.True(t, j.Requeue())
	assert.Equal(t, command.StateSubmitted, j.State())
}

func TestJobsListsSnapshotsInOrder(t *testing.T) {
	f := newFixture(t, 0)
	a, _ := f.submit(1)
	f.submit(2)
	a.Submitted()
	a.Complete(command.StateCompleted)

	infos := f.tracker.Jobs()
	require.Len(t, infos, 2)
	assert.Equal(t, uint64(0), infos[0].Seq)
	assert.Equal(t, command.StateCompleted, infos[0].State)
	assert.Equal(t, uint64(1), infos[1].Seq)
	assert.Equal(t, command.StateQueued, infos[1].State)
	assert.Equal(t, command.OpStartCU, infos[1].Opcode)
}

// TestConcurrentWaitAndComplete races waiters with short timeouts
// against backend completions. Every job must end in exactly one
// terminal state and have its buffer released exactly once.
func TestConcurrentWaitAndComplete(t *testing.T) {
	f := newFixture(t, -1)
	const n = 200

	type pair struct {
		j   *job.Job
		buf *fakeBuffer
	}
	var pairs []pair
	for i := range n {
		j, buf := f.submit(xdna.BufferHandle(i + 1))
		j.Submitted()
		pairs = append(pairs, pair{j, buf})
	}

	var wg sync.WaitGroup
	for i, p := range pairs {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = f.tracker.Wait(context.Background(), p.j.Seq(), time.Duration(i%3)*time.Microsecond)
		}()
		go func() {
			defer wg.Done()
			_, _ = f.tracker.Wait(context.Background(), p.j.Seq(), job.NoTimeout)
		}()
		go func() {
			defer wg.Done()
			p.j.Complete(command.StateCompleted)
		}()
	}
	wg.Wait()

	for _, p := range pairs {
		assert.True(t, p.j.State().Terminal())
		assert.Equal(t, int32(0), p.j.Refs())
		assert.Equal(t, int32(0), p.buf.pins.Load())
	}
	assert.Len(t, f.rec.finishedStates(), n)
	assert.Equal(t, 0, f.tracker.Active())
}
