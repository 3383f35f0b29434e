package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/btree"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
)

// DefaultRetain is the number of finished jobs a tracker keeps above
// its low-water mark when no retention is configured.
const DefaultRetain = 256

// NoTimeout makes Wait block until the job finishes or ctx is done.
const NoTimeout time.Duration = -1

// record is the tracker's bookkeeping for one sequence number. job is
// cleared when the job is released; state survives until the record
// falls below the low-water mark.
type record struct {
	seq   uint64
	job   *Job
	state command.State
}

func recordLess(a, b *record) bool { return a.seq < b.seq }

// Hooks lets the owner observe job lifecycle events. Hooks run on the
// goroutine that caused the event, without tracker locks held.
type Hooks struct {
	Admitted func(Info)
	Finished func(Info)
}

// TrackerOptions configures a Tracker.
type TrackerOptions struct {
	// Retain is the number of finished jobs kept above the low-water
	// mark so late waiters can still observe them. Zero selects
	// DefaultRetain; negative retains nothing.
	Retain int
	Hooks  Hooks
	Logger *slog.Logger
}

// Tracker allocates sequence numbers for one hardware context and
// indexes its jobs by sequence number.
type Tracker struct {
	ctxID  xdna.ContextID
	retain int
	hooks  Hooks
	logger *slog.Logger

	mu     sync.Mutex
	next   uint64
	low    uint64
	active int
	index  *btree.BTreeG[*record]
}

// NewTracker returns an empty tracker for ctxID.
func NewTracker(ctxID xdna.ContextID, opts TrackerOptions) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retain := opts.Retain
	switch {
	case retain == 0:
		retain = DefaultRetain
	case retain < 0:
		retain = 0
	}
	return &Tracker{
		ctxID:  ctxID,
		retain: retain,
		hooks:  opts.Hooks,
		logger: logger.With("component", "tracker", "context", ctxID),
		index:  btree.NewG(16, recordLess),
	}
}

// Add admits a validated submission: it assigns the next sequence
// number, creates the job with one reference for the tracker and one
// for the dispatcher, and moves it to QUEUED. Sequence numbers are
// assigned only here, so admitted jobs have gap-free numbers.
func (t *Tracker) Add(p Params) *Job {
	t.mu.Lock()
	seq := t.next
	t.next++
	j := newJob(t.ctxID, seq, p, t.logger)
	j.onTerminal = t.finish
	j.onRelease = t.released
	t.index.ReplaceOrInsert(&record{seq: seq, job: j, state: command.StateNew})
	t.active++
	j.transition(command.StateQueued)
	t.mu.Unlock()

	t.logger.Debug("admitted job", "seq", seq, "opcode", p.Header.Opcode, "cu", p.CUIndex)
	if t.hooks.Admitted != nil {
		t.hooks.Admitted(j.Info())
	}
	return j
}

// finish runs once per job, on the goroutine that latched its terminal
// state. It drops the tracker's reference.
func (t *Tracker) finish(j *Job, state command.State) {
	t.mu.Lock()
	if rec, ok := t.index.Get(&record{seq: j.seq}); ok {
		rec.state = state
	}
	t.active--
	t.reclaimLocked(t.next)
	t.mu.Unlock()

	t.logger.Debug("job finished", "seq", j.seq, "state", state)
	if t.hooks.Finished != nil {
		t.hooks.Finished(j.Info())
	}
	j.Put()
}

func (t *Tracker) released(j *Job) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rec, ok := t.index.Get(&record{seq: j.seq}); ok {
		rec.job = nil
	}
}

// reclaimLocked drops the contiguous prefix of finished records below
// upTo, keeping the newest t.retain records. Caller holds t.mu.
func (t *Tracker) reclaimLocked(upTo uint64) int {
	n := 0
	for t.index.Len() > t.retain {
		rec, ok := t.index.Min()
		if !ok || rec.seq >= upTo || !rec.state.Terminal() {
			break
		}
		t.index.DeleteMin()
		t.low = rec.seq + 1
		n++
	}
	return n
}

// Reclaim drops the bookkeeping of every finished job below upTo,
// stopping at the first job that has not finished. It ignores the
// retention window and returns the new low-water mark.
func (t *Tracker) Reclaim(upTo uint64) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		rec, ok := t.index.Min()
		if !ok || rec.seq >= upTo || !rec.state.Terminal() {
			break
		}
		t.index.DeleteMin()
		t.low = rec.seq + 1
	}
	if t.index.Len() == 0 && upTo >= t.next {
		t.low = t.next
	}
	t.logger.Debug("reclaimed", "low_water", t.low)
	return t.low
}

// lookup returns the job for seq with a reference held, or the latched
// state of a job that has already been released.
func (t *Tracker) lookup(seq uint64) (*Job, command.State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq >= t.next {
		return nil, command.StateInvalid, xdna.ErrUnknownSequence{Context: t.ctxID, Seq: seq}
	}
	rec, ok := t.index.Get(&record{seq: seq})
	if seq < t.low || !ok {
		return nil, command.StateInvalid, xdna.ErrUnknownSequence{Context: t.ctxID, Seq: seq, Reclaimed: true}
	}
	if rec.job == nil || !rec.job.TryGet() {
		return nil, rec.state, nil
	}
	return rec.job, rec.state, nil
}

// Wait blocks until job seq reaches a terminal state, timeout elapses
// or ctx is done, and returns the terminal state. A zero timeout polls;
// NoTimeout disables the timer. When the timer fires first the job is
// latched to TIMEOUT, and a later completion from the dispatcher does
// not change it.
func (t *Tracker) Wait(ctx context.Context, seq uint64, timeout time.Duration) (command.State, error) {
	j, state, err := t.lookup(seq)
	if err != nil {
		return command.StateInvalid, err
	}
	if j == nil {
		return state, nil
	}
	defer j.Put()

	if st := j.State(); st.Terminal() {
		return st, nil
	}
	if timeout == 0 {
		j.Timeout()
		return j.State(), nil
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-j.Done():
	case <-expired:
		if j.Timeout() {
			t.logger.Info("wait timed out", "seq", seq, "timeout", timeout)
		}
	case <-ctx.Done():
		return command.StateInvalid, ctx.Err()
	}
	return j.State(), nil
}

// Get returns the job for seq with a reference held; the caller must
// Put it. It returns nil when the job has been released.
func (t *Tracker) Get(seq uint64) (*Job, error) {
	j, _, err := t.lookup(seq)
	return j, err
}

// Pending returns the unfinished jobs, each with a reference held, in
// sequence order.
func (t *Tracker) Pending() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	var jobs []*Job
	t.index.Ascend(func(rec *record) bool {
		if rec.job != nil && !rec.job.State().Terminal() && rec.job.TryGet() {
			jobs = append(jobs, rec.job)
		}
		return true
	})
	return jobs
}

// AbortAll latches ABORT on every unfinished job and returns how many
// it aborted. References are taken before touching a job, so a
// concurrent waiter or completion holding the same job is safe.
func (t *Tracker) AbortAll() int {
	n := 0
	for _, j := range t.Pending() {
		if j.Abort() {
			n++
		}
		j.Put()
	}
	if n > 0 {
		t.logger.Info("aborted jobs", "count", n)
	}
	return n
}

// Active returns the number of jobs that have not reached a terminal
// state.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Next returns the sequence number the next admitted job will get.
func (t *Tracker) Next() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.next
}

// Jobs returns snapshots of every tracked job in sequence order.
func (t *Tracker) Jobs() []Info {
	t.mu.Lock()
	var live []*Job
	var infos []Info
	t.index.Ascend(func(rec *record) bool {
		if rec.job != nil && rec.job.TryGet() {
			live = append(live, rec.job)
			return true
		}
		infos = append(infos, Info{Context: t.ctxID, Seq: rec.seq, State: rec.state, CUIndex: -1})
		return true
	})
	t.mu.Unlock()

	for _, j := range live {
		infos = append(infos, j.Info())
		j.Put()
	}
	sortInfos(infos)
	return infos
}
