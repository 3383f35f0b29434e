package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// Control words recognised in the first argument of START_CU and
// START_DPU payloads.
const (
	// FaultWord makes the command complete with ERROR.
	FaultWord uint32 = 0xdeadbeef
	// HangWord makes the command never complete on its own.
	HangWord uint32 = 0x0badf00d
)

// Options configures a Backend.
type Options struct {
	// Latency is how long each command takes to execute.
	Latency time.Duration
	// HangAfter completes a command that has run this long with
	// NORESPONSE. Zero leaves hung commands running until stopped.
	HangAfter time.Duration
	Logger    *slog.Logger
}

// Backend executes jobs in submission order per context. It implements
// interpreter.Dispatcher.
type Backend struct {
	opts   Options
	logger *slog.Logger

	mu     sync.Mutex
	queues map[xdna.ContextID]*queue
	closed bool
}

func NewBackend(opts Options) *Backend {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		opts:   opts,
		logger: logger.With("component", "backend"),
		queues: make(map[xdna.ContextID]*queue),
	}
}

// queue is one context's FIFO and its worker.
type queue struct {
	b  *Backend
	id xdna.ContextID

	mu        sync.Mutex
	pending   []*job.Job
	running   *job.Job
	preempt   chan struct{}
	suspended bool
	stopped   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func (b *Backend) queueFor(id xdna.ContextID) (*queue, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("backend is closed")
	}
	q, ok := b.queues[id]
	if !ok {
		q = &queue{
			b:    b,
			id:   id,
			wake: make(chan struct{}, 1),
			stop: make(chan struct{}),
			done: make(chan struct{}),
		}
		b.queues[id] = q
		go q.run()
	}
	return q, nil
}

// Dispatch appends j to its context's queue.
func (b *Backend) Dispatch(_ context.Context, j *job.Job) error {
	q, err := b.queueFor(j.Context())
	if err != nil {
		return err
	}
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return fmt.Errorf("context %d is stopped", j.Context())
	}
	q.pending = append(q.pending, j)
	q.mu.Unlock()
	q.signal()
	return nil
}

// Suspend parks the context. A running job is preempted and goes back
// to the head of the queue.
func (b *Backend) Suspend(_ context.Context, id xdna.ContextID) error {
	q, err := b.queueFor(id)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.suspended {
		return nil
	}
	q.suspended = true
	if q.running != nil && q.preempt != nil {
		close(q.preempt)
		q.preempt = nil
	}
	b.logger.Debug("context suspended", "context", id)
	return nil
}

func (b *Backend) Resume(_ context.Context, id xdna.ContextID) error {
	q, err := b.queueFor(id)
	if err != nil {
		return err
	}
	q.mu.Lock()
	q.suspended = false
	q.mu.Unlock()
	q.signal()
	b.logger.Debug("context resumed", "context", id)
	return nil
}

// Stop ends the context's worker and completes every job it still
// holds with ABORT.
func (b *Backend) Stop(_ context.Context, id xdna.ContextID) error {
	b.mu.Lock()
	q, ok := b.queues[id]
	delete(b.queues, id)
	b.mu.Unlock()
	if ok {
		q.shutdown()
	}
	return nil
}

// Close stops every context.
func (b *Backend) Close() error {
	b.mu.Lock()
	b.closed = true
	queues := b.queues
	b.queues = make(map[xdna.ContextID]*queue)
	b.mu.Unlock()
	for _, q := range queues {
		q.shutdown()
	}
	return nil
}

// Pending returns how many jobs the context has queued or running.
func (b *Backend) Pending(id xdna.ContextID) int {
	b.mu.Lock()
	q, ok := b.queues[id]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.pending)
	if q.running != nil {
		n++
	}
	return n
}

func (q *queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *queue) shutdown() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	close(q.stop)
	<-q.done
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, j := range pending {
		j.Complete(command.StateAbort)
	}
	if len(pending) > 0 {
		q.b.logger.Debug("aborted queued jobs", "context", q.id, "count", len(pending))
	}
}

func (q *queue) run() {
	defer close(q.done)
	for {
		j, preempt, ok := q.next()
		if !ok {
			return
		}
		q.execute(j, preempt)
	}
}

// next blocks until a job can run or the queue is stopped.
func (q *queue) next() (*job.Job, chan struct{}, bool) {
	for {
		q.mu.Lock()
		if q.stopped {
			q.mu.Unlock()
			return nil, nil, false
		}
		if !q.suspended && len(q.pending) > 0 {
			j := q.pending[0]
			q.pending = q.pending[1:]
			q.running = j
			q.preempt = make(chan struct{})
			preempt := q.preempt
			q.mu.Unlock()
			return j, preempt, true
		}
		q.mu.Unlock()

		select {
		case <-q.wake:
		case <-q.stop:
			return nil, nil, false
		}
	}
}

func (q *queue) execute(j *job.Job, preempt chan struct{}) {
	defer func() {
		q.mu.Lock()
		q.running = nil
		q.mu.Unlock()
	}()

	if !j.Start() {
		// Timed out or aborted while queued.
		j.Complete(command.StateAbort)
		return
	}

	state, hang := q.b.outcome(j)
	var finished, watchdog <-chan time.Time
	if !hang {
		t := time.NewTimer(q.b.opts.Latency)
		defer t.Stop()
		finished = t.C
	} else if q.b.opts.HangAfter > 0 {
		t := time.NewTimer(q.b.opts.HangAfter)
		defer t.Stop()
		watchdog = t.C
	}

	select {
	case <-finished:
		j.Complete(state)
	case <-watchdog:
		q.b.logger.Warn("command not responding", "job", j.String(), "after", q.b.opts.HangAfter)
		j.Complete(command.StateNoResponse)
	case <-preempt:
		if !j.Requeue() {
			j.Complete(command.StateAbort)
			return
		}
		q.mu.Lock()
		q.pending = append([]*job.Job{j}, q.pending...)
		q.mu.Unlock()
	case <-q.stop:
		j.Complete(command.StateAbort)
	}
}

// outcome decides how j will finish. For chains the first failing
// sub-command is recorded as the chain's error index.
func (b *Backend) outcome(j *job.Job) (command.State, bool) {
	if j.Opcode() != command.OpCmdChain {
		return evaluate(j.Command().Bytes())
	}
	cmd, err := command.Parse(j.Command().Bytes())
	if err != nil {
		return command.StateError, false
	}
	p, err := cmd.DecodePayload()
	if err != nil {
		return command.StateError, false
	}
	chain := p.(command.Chain)
	for i, sub := range j.Chain() {
		state, hang := evaluate(sub.Bytes())
		if hang {
			return 0, true
		}
		if state != command.StateCompleted {
			if err := j.SetChainErrorIndex(chain.SubmitIndex + uint32(i)); err != nil {
				b.logger.Warn("cannot record chain error index", "job", j.String(), "error", err)
			}
			return state, false
		}
	}
	return command.StateCompleted, false
}

// evaluate runs one non-chain packet.
func evaluate(buf []byte) (command.State, bool) {
	cmd, err := command.Parse(buf)
	if err != nil {
		return command.StateError, false
	}
	p, err := cmd.DecodePayload()
	if err != nil {
		return command.StateError, false
	}
	var args []uint32
	switch p := p.(type) {
	case command.StartCU:
		args = p.Args
	case command.StartDPU:
		args = p.Args
	default:
		// Chains may not nest.
		return command.StateError, false
	}
	if len(args) > 0 {
		switch args[0] {
		case FaultWord:
			return command.StateError, false
		case HangWord:
			return 0, true
		}
	}
	return command.StateCompleted, false
}
