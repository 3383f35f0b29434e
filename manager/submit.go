package manager

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// Submit admits the command in buffer cmd on context id and hands it to
// the dispatcher. bufs are the auxiliary buffers the command uses; they
// stay pinned until the job is released. Validation failures are
// returned synchronously and never enter the state machine. Once a job
// is admitted its failures are reported as terminal states by Wait, so
// Submit returns the sequence number even if dispatch fails.
func (m *Manager) Submit(ctx context.Context, id xdna.ContextID, cmd xdna.BufferHandle, bufs []xdna.BufferHandle) (uint64, error) {
	ctx = m.dev.beginOp(ctx)
	hc, err := m.lockLive(id)
	if err != nil {
		return 0, err
	}
	defer hc.mu.Unlock()

	if hc.info.Status != xdna.StatusReady {
		return 0, xdna.ErrInvalidContext{ID: id, Status: hc.info.Status, Exists: true}
	}

	var undo undoStack
	p, err := m.resolveCommand(ctx, &undo, hc.info, cmd)
	if err != nil {
		_ = undo.rollback(ctx, m.logger)
		return 0, err
	}
	for _, h := range bufs {
		b, err := m.dev.buffers.Resolve(ctx, m.client, h)
		if err != nil {
			_ = undo.rollback(ctx, m.logger)
			return 0, err
		}
		undo.unpin(b)
		p.Buffers = append(p.Buffers, b)
	}

	j := hc.tracker.Add(p)
	j.Submitted()
	if err := m.dev.dispatcher.Dispatch(ctx, j); err != nil {
		m.logger.WarnContext(ctx, "dispatch failed", "context", id, "seq", j.Seq(), "error", err)
		j.Complete(command.StateError)
	}
	m.logger.DebugContext(ctx, "submitted", "context", id, "seq", j.Seq(), "opcode", p.Header.Opcode)
	return j.Seq(), nil
}

// resolveCommand pins and decodes the command buffer and, for chains,
// every sub-command it references. Pinned buffers are pushed on undo.
func (m *Manager) resolveCommand(ctx context.Context, undo *undoStack, info xdna.HWContext, handle xdna.BufferHandle) (job.Params, error) {
	b, err := m.dev.buffers.Resolve(ctx, m.client, handle)
	if err != nil {
		return job.Params{}, err
	}
	undo.unpin(b)

	c, err := decode(b)
	if err != nil {
		return job.Params{}, err
	}
	p := job.Params{Client: m.client, Command: b, Header: c.Header, CUIndex: -1}

	if c.Header.Opcode != command.OpCmdChain {
		idx, err := targetCU(info, b.Handle(), c)
		if err != nil {
			return job.Params{}, err
		}
		p.CUIndex = idx
		return p, nil
	}

	refs, err := command.ExpandChain(b.Bytes())
	if err != nil {
		return job.Params{}, xdna.ErrInvalidBuffer{Handle: handle, Reason: "malformed chain", Err: err}
	}
	for _, ref := range refs {
		if ref > math.MaxUint32 {
			return job.Params{}, xdna.ErrInvalidBuffer{Handle: handle, Reason: fmt.Sprintf("chain references handle %#x out of range", ref)}
		}
		sub, err := m.dev.buffers.Resolve(ctx, m.client, xdna.BufferHandle(ref))
		if err != nil {
			return job.Params{}, err
		}
		undo.unpin(sub)
		sc, err := decode(sub)
		if err != nil {
			return job.Params{}, err
		}
		if sc.Header.Opcode == command.OpCmdChain {
			return job.Params{}, xdna.ErrInvalidBuffer{Handle: sub.Handle(), Reason: "nested chain"}
		}
		if _, err := targetCU(info, sub.Handle(), sc); err != nil {
			return job.Params{}, err
		}
		p.Chain = append(p.Chain, sub)
	}
	return p, nil
}

// decode parses the packet in b and its opcode-specific payload. Any
// failure is an ErrInvalidBuffer so it is rejected before admission.
func decode(b xdna.Buffer) (command.Command, error) {
	c, err := command.Parse(b.Bytes())
	if err == nil {
		err = c.Header.Validate()
	}
	if err != nil {
		return command.Command{}, xdna.ErrInvalidBuffer{Handle: b.Handle(), Reason: "malformed command", Err: err}
	}
	p, err := c.DecodePayload()
	if err != nil {
		return command.Command{}, xdna.ErrInvalidBuffer{Handle: b.Handle(), Reason: "malformed payload", Err: err}
	}
	if dpu, ok := p.(command.StartDPU); ok {
		if err := dpu.Validate(); err != nil {
			return command.Command{}, xdna.ErrInvalidBuffer{Handle: b.Handle(), Reason: "malformed payload", Err: err}
		}
	}
	return c, nil
}

// targetCU returns the CU a non-chain command selects, checked against
// the context's CU table when one is configured.
func targetCU(info xdna.HWContext, handle xdna.BufferHandle, c command.Command) (int, error) {
	idx, ok := c.CUIndex()
	if !ok {
		return -1, xdna.ErrInvalidBuffer{Handle: handle, Reason: "command selects no compute unit"}
	}
	if n := len(info.CUs); n > 0 && idx >= n {
		return -1, xdna.ErrInvalidBuffer{Handle: handle, Reason: fmt.Sprintf("compute unit %d not configured (context has %d)", idx, n)}
	}
	return idx, nil
}

// Wait blocks until job seq on context id is terminal or timeout
// elapses and returns its state. See job.Tracker.Wait for the timeout
// conventions. Wait does not take the context lock.
func (m *Manager) Wait(ctx context.Context, id xdna.ContextID, seq uint64, timeout time.Duration) (command.State, error) {
	hc, err := m.lookup(id)
	if err != nil {
		return command.StateInvalid, err
	}
	return hc.tracker.Wait(ctx, seq, timeout)
}

// Cancel aborts job seq unless it is already terminal and returns the
// state it ends in.
func (m *Manager) Cancel(ctx context.Context, id xdna.ContextID, seq uint64) (command.State, error) {
	ctx = m.dev.beginOp(ctx)
	hc, err := m.lookup(id)
	if err != nil {
		return command.StateInvalid, err
	}
	j, err := hc.tracker.Get(seq)
	if err != nil {
		return command.StateInvalid, err
	}
	if j == nil {
		// Already released, so already terminal.
		return hc.tracker.Wait(ctx, seq, 0)
	}
	defer j.Put()
	if j.Abort() {
		m.logger.InfoContext(ctx, "cancelled job", "context", id, "seq", seq)
	}
	return j.State(), nil
}

// Reclaim drops the bookkeeping of finished jobs below upTo and returns
// the context's new low-water mark.
func (m *Manager) Reclaim(id xdna.ContextID, upTo uint64) (uint64, error) {
	hc, err := m.lookup(id)
	if err != nil {
		return 0, err
	}
	return hc.tracker.Reclaim(upTo), nil
}

// Jobs returns the jobs the context still tracks, in sequence order.
func (m *Manager) Jobs(id xdna.ContextID) ([]job.Info, error) {
	hc, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return hc.tracker.Jobs(), nil
}

// History returns the persisted job records of a live context,
// including jobs already reclaimed from the tracker.
func (m *Manager) History(ctx context.Context, id xdna.ContextID) ([]job.Info, error) {
	if _, err := m.lookup(id); err != nil {
		return nil, err
	}
	return m.dev.store.ListJobs(ctx, id)
}
