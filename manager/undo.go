package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frobware/go-xdna"
)

type undoStep struct {
	what string
	fn   func() error
}

// undoStack records the inverse of each completed step of a
// multi-step operation so that a later failure can put the device back
// the way it was.
type undoStack struct {
	steps []undoStep
}

func (u *undoStack) push(what string, fn func() error) {
	u.steps = append(u.steps, undoStep{what: what, fn: fn})
}

// unpin records a buffer pin taken by the operation.
func (u *undoStack) unpin(b xdna.Buffer) {
	u.push(fmt.Sprintf("unpin buffer %d", b.Handle()), func() error {
		b.Unpin()
		return nil
	})
}

// rollback undoes the steps newest first and empties the stack. A
// failing step does not stop the ones below it.
func (u *undoStack) rollback(ctx context.Context, logger *slog.Logger) error {
	var errs []error
	for i := len(u.steps) - 1; i >= 0; i-- {
		s := u.steps[i]
		if err := s.fn(); err != nil {
			logger.ErrorContext(ctx, "rollback step failed", "step", s.what, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.what, err))
			continue
		}
		logger.DebugContext(ctx, "rolled back", "step", s.what)
	}
	u.steps = nil
	return errors.Join(errs...)
}
