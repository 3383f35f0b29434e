package job_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/logging"
)

// fakeBuffer is an in-memory buffer that counts pins.
type fakeBuffer struct {
	handle xdna.BufferHandle
	mu     sync.Mutex
	data   []byte
	pins   atomic.Int32
}

func newFakeBuffer(handle xdna.BufferHandle, data []byte) *fakeBuffer {
	b := &fakeBuffer{handle: handle, data: data}
	b.pins.Store(1)
	return b
}

func (b *fakeBuffer) Handle() xdna.BufferHandle { return b.handle }
func (b *fakeBuffer) Bytes() []byte             { return b.data }
func (b *fakeBuffer) Size() int                 { return len(b.data) }
func (b *fakeBuffer) Pin() error                { b.pins.Add(1); return nil }
func (b *fakeBuffer) Unpin()                    { b.pins.Add(-1) }

// startCU builds a pinned START_CU command buffer for CU 0.
func startCU(t *testing.T, handle xdna.BufferHandle) *fakeBuffer {
	t.Helper()
	cmd, err := command.New(command.CUMask(0), command.StartCU{Args: []uint32{0xabcd}})
	require.NoError(t, err)
	return newFakeBuffer(handle, cmd.Marshal())
}

type recorder struct {
	mu       sync.Mutex
	admitted []job.Info
	finished []job.Info
}

func (r *recorder) hooks() job.Hooks {
	return job.Hooks{
		Admitted: func(i job.Info) { r.mu.Lock(); r.admitted = append(r.admitted, i); r.mu.Unlock() },
		Finished: func(i job.Info) { r.mu.Lock(); r.finished = append(r.finished, i); r.mu.Unlock() },
	}
}

func (r *recorder) finishedStates() []command.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []command.State
	for _, i := range r.finished {
		out = append(out, i.State)
	}
	return out
}

type fixture struct {
	t       *testing.T
	tracker *job.Tracker
	rec     *recorder
}

func newFixture(t *testing.T, retain int) *fixture {
	t.Helper()
	rec := &recorder{}
	return &fixture{
		t:       t,
		rec:     rec,
		tracker: job.NewTracker(7, job.TrackerOptions{Retain: retain, Hooks: rec.hooks(), Logger: logging.Discard()}),
	}
}

// submit admits a START_CU job and returns it with its command buffer.
func (f *fixture) submit(handle xdna.BufferHandle) (*job.Job, *fakeBuffer) {
	f.t.Helper()
	buf := startCU(f.t, handle)
	hdr, err := command.DecodeHeader(buf.Bytes())
	require.NoError(f.t, err)
	j := f.tracker.Add(job.Params{Client: "c1", Command: buf, Header: hdr, CUIndex: 0})
	return j, buf
}
