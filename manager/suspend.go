package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/action"
)

// snapshot returns the client's live contexts in id order.
func (m *Manager) snapshot() []*hwctx {
	ids := m.ListContexts()
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*hwctx, 0, len(ids))
	for _, info := range ids {
		if hc, ok := m.contexts[info.ID]; ok {
			out = append(out, hc)
		}
	}
	return out
}

// Suspend stops admission on every context of the client. Running jobs
// are not cancelled; the dispatcher requeues them on resume. A context
// that is already stopped is left alone.
func (m *Manager) Suspend(ctx context.Context) error {
	ctx = m.dev.beginOp(ctx)
	var errs []error
	for _, hc := range m.snapshot() {
		if err := m.suspendOne(ctx, hc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) suspendOne(ctx context.Context, hc *hwctx) error {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	if hc.gone || hc.info.Status == xdna.StatusStop {
		return nil
	}
	id := hc.info.ID
	if err := m.dev.dispatcher.Suspend(ctx, id); err != nil {
		return fmt.Errorf("suspend context %d: %w", id, err)
	}
	hc.info.OldStatus = hc.info.Status
	hc.info.Status = xdna.StatusStop
	m.persist(ctx, hc.info)
	m.logger.InfoContext(ctx, "suspended context", "context", id, "old_status", hc.info.OldStatus)
	return nil
}

// Resume restores every stopped context of the client to the status it
// had before Suspend.
func (m *Manager) Resume(ctx context.Context) error {
	ctx = m.dev.beginOp(ctx)
	var errs []error
	for _, hc := range m.snapshot() {
		if err := m.resumeOne(ctx, hc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) resumeOne(ctx context.Context, hc *hwctx) error {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	if hc.gone || hc.info.Status != xdna.StatusStop {
		return nil
	}
	id := hc.info.ID
	if err := m.dev.dispatcher.Resume(ctx, id); err != nil {
		return fmt.Errorf("resume context %d: %w", id, err)
	}
	hc.info.Status = hc.info.OldStatus
	m.persist(ctx, hc.info)
	m.logger.InfoContext(ctx, "resumed context", "context", id, "status", hc.info.Status)
	return nil
}

func (m *Manager) persist(ctx context.Context, info xdna.HWContext) {
	if err := m.dev.executor.Execute(ctx, action.SaveContext{Context: info}); err != nil {
		m.logger.WarnContext(ctx, "cannot persist context", "context", info.ID, "error", err)
	}
}

// RemoveAll force-destroys every context of the client and returns how
// many it removed. It is called when the client's session ends.
func (m *Manager) RemoveAll(ctx context.Context) (int, error) {
	ctx = m.dev.beginOp(ctx)
	var errs []error
	n := 0
	for _, hc := range m.snapshot() {
		hc.mu.Lock()
		if hc.gone {
			hc.mu.Unlock()
			continue
		}
		err := m.teardownLocked(ctx, hc)
		hc.mu.Unlock()
		n++
		if err != nil {
			errs = append(errs, err)
		}
	}
	if n > 0 {
		m.logger.InfoContext(ctx, "removed client contexts", "count", n)
	}
	return n, errors.Join(errs...)
}
