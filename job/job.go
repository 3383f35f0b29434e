// Package job couples one submitted command buffer to a schedulable
// unit of work, its completion fences and its sequence number.
//
// A Job starts with two references: one held by the context's Tracker
// and one handed to the dispatcher. The tracker drops its reference
// when the job reaches a terminal state; the dispatcher drops its
// reference in Complete. Waiters take a temporary reference for the
// duration of the wait. Buffers are unpinned exactly when the count
// reaches zero, so a late hardware completion racing a wait timeout
// never touches released memory.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/logging"
)

// Params describes a validated submission.
type Params struct {
	Client  xdna.ClientID
	Command xdna.Buffer
	Header  command.Header
	// CUIndex is the CU the command targets, -1 for chains.
	CUIndex int
	// Chain holds the resolved sub-command buffers of a CMD_CHAIN in
	// execution order.
	Chain []xdna.Buffer
	// Buffers holds the auxiliary buffers the command references.
	Buffers []xdna.Buffer
}

// Info is a snapshot of a job for listing and persistence.
type Info struct {
	Context     xdna.ContextID `json:"context"`
	Seq         uint64         `json:"seq"`
	Opcode      command.Opcode `json:"opcode"`
	CUIndex     int            `json:"cu_index"`
	State       command.State  `json:"state"`
	SubmittedAt time.Time      `json:"submitted_at"`
	FinishedAt  time.Time      `json:"finished_at,omitempty"`
}

// Job is one admitted command.
type Job struct {
	seq     uint64
	ctxID   xdna.ContextID
	client  xdna.ClientID
	cmd     xdna.Buffer
	header  command.Header
	cuIndex int
	chain   []xdna.Buffer
	bos     []xdna.Buffer

	refs  atomic.Int32
	state atomic.Uint32

	// mu serialises transitions with the write of the state field
	// into the command buffer.
	mu          sync.Mutex
	submittedAt time.Time
	finishedAt  time.Time

	hwDone       chan struct{}
	done         chan struct{}
	completeOnce sync.Once

	onTerminal func(*Job, command.State)
	onRelease  func(*Job)
	logger     *slog.Logger
}

func newJob(ctxID xdna.ContextID, seq uint64, p Params, logger *slog.Logger) *Job {
	j := &Job{
		seq:         seq,
		ctxID:       ctxID,
		client:      p.Client,
		cmd:         p.Command,
		header:      p.Header,
		cuIndex:     p.CUIndex,
		chain:       p.Chain,
		bos:         p.Buffers,
		submittedAt: time.Now(),
		hwDone:      make(chan struct{}),
		done:        make(chan struct{}),
		logger:      logger,
	}
	j.refs.Store(2)
	j.state.Store(uint32(command.StateNew))
	return j
}

func (j *Job) Seq() uint64                   { return j.seq }
func (j *Job) Context() xdna.ContextID       { return j.ctxID }
func (j *Job) Client() xdna.ClientID         { return j.client }
func (j *Job) Command() xdna.Buffer          { return j.cmd }
func (j *Job) Header() command.Header        { return j.header }
func (j *Job) Opcode() command.Opcode        { return j.header.Opcode }
func (j *Job) CUIndex() int                  { return j.cuIndex }
func (j *Job) Chain() []xdna.Buffer          { return j.chain }
func (j *Job) Buffers() []xdna.Buffer        { return j.bos }
func (j *Job) State() command.State          { return command.State(j.state.Load()) }
func (j *Job) Done() <-chan struct{}         { return j.done }
func (j *Job) HardwareDone() <-chan struct{} { return j.hwDone }

func (j *Job) String() string {
	return fmt.Sprintf("job %d/%d (%s)", j.ctxID, j.seq, j.header.Opcode)
}

// Info returns a snapshot of the job.
func (j *Job) Info() Info {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Info{
		Context:     j.ctxID,
		Seq:         j.seq,
		Opcode:      j.header.Opcode,
		CUIndex:     j.cuIndex,
		State:       j.State(),
		SubmittedAt: j.submittedAt,
		FinishedAt:  j.finishedAt,
	}
}

// transition moves the job to state to when the state machine permits
// it, latching the new state into the command buffer. It returns false
// when the transition is not allowed, which includes any transition out
// of a terminal state.
func (j *Job) transition(to command.State) bool {
	j.mu.Lock()
	from := j.State()
	if !command.CanTransition(from, to) {
		j.mu.Unlock()
		return false
	}
	j.state.Store(uint32(to))
	if err := command.SetState(j.cmd.Bytes(), to); err != nil {
		j.logger.Warn("cannot latch state into command buffer", "job", j.String(), "error", err)
	}
	terminal := to.Terminal()
	if terminal {
		j.finishedAt = time.Now()
		close(j.done)
	}
	j.mu.Unlock()

	j.logger.Log(context.Background(), logging.LevelTrace.ToSlog(), "job transition", "context", j.ctxID, "seq", j.seq, "from", from, "to", to)

	if terminal && j.onTerminal != nil {
		j.onTerminal(j, to)
	}
	return true
}

// Submitted records the hand-off to the dispatcher.
func (j *Job) Submitted() bool { return j.transition(command.StateSubmitted) }

// Start records that hardware has begun executing the job.
func (j *Job) Start() bool { return j.transition(command.StateRunning) }

// Requeue moves a running job back to SUBMITTED so the dispatcher can
// replay it, typically after a suspend/resume cycle.
func (j *Job) Requeue() bool { return j.transition(command.StateSubmitted) }

// Abort latches ABORT. It is a no-op once the job is terminal.
func (j *Job) Abort() bool { return j.transition(command.StateAbort) }

// Timeout latches TIMEOUT. It is a no-op once the job is terminal.
func (j *Job) Timeout() bool { return j.transition(command.StateTimeout) }

// SetChainErrorIndex records which sub-command of a chain failed.
func (j *Job) SetChainErrorIndex(idx uint32) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return command.SetChainErrorIndex(j.cmd.Bytes(), idx)
}

// Complete is the dispatcher's completion callback. It signals the
// hardware fence, latches state unless the job already reached a
// terminal state (a late completion after TIMEOUT or ABORT is a no-op),
// and drops the dispatcher's reference. Only the first call has any
// effect; it reports whether this call was that one.
func (j *Job) Complete(state command.State) bool {
	first := false
	j.completeOnce.Do(func() {
		first = true
		if !state.Terminal() {
			j.logger.Warn("completion with non-terminal state, reporting error", "job", j.String(), "state", state)
			state = command.StateError
		}
		close(j.hwDone)
		if !j.transition(state) {
			j.logger.Debug("late completion ignored", "job", j.String(), "state", state, "latched", j.State())
		}
		j.Put()
	})
	if !first {
		j.logger.Warn("duplicate completion ignored", "job", j.String(), "state", state)
	}
	return first
}

// TryGet takes a reference unless the job has already been released.
func (j *Job) TryGet() bool {
	for {
		n := j.refs.Load()
		if n <= 0 {
			return false
		}
		if j.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Put drops a reference, releasing the job's buffers at zero.
func (j *Job) Put() {
	n := j.refs.Add(-1)
	switch {
	case n > 0:
		return
	case n < 0:
		panic(fmt.Sprintf("%s: reference count underflow", j))
	}
	j.release()
}

// Refs returns the current reference count.
func (j *Job) Refs() int32 {
	return j.refs.Load()
}

func (j *Job) release() {
	j.cmd.Unpin()
	for _, b := range j.chain {
		b.Unpin()
	}
	for _, b := range j.bos {
		b.Unpin()
	}
	if j.onRelease != nil {
		j.onRelease(j)
	}
	j.logger.Debug("job released", "context", j.ctxID, "seq", j.seq, "state", j.State())
}
