package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/logging"
)

type pinCounter struct {
	xdna.Buffer
	handle xdna.BufferHandle
	pins   int
}

func (p *pinCounter) Handle() xdna.BufferHandle { return p.handle }
func (p *pinCounter) Unpin()                    { p.pins-- }

func TestUndoStackRunsInReverse(t *testing.T) {
	var order []int
	var undo undoStack
	for i := range 3 {
		undo.push("step", func() error {
			order = append(order, i)
			return nil
		})
	}
	require.NoError(t, undo.rollback(context.Background(), logging.Discard()))
	assert.Equal(t, []int{2, 1, 0}, order)

	order = nil
	require.NoError(t, undo.rollback(context.Background(), logging.Discard()))
	assert.Empty(t, order, "a second rollback has nothing to undo")
}

func TestUndoStackJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	ran := false
	var undo undoStack
	undo.push("release columns", func() error { return errA })
	undo.push("noop", func() error { ran = true; return nil })
	undo.push("destroy firmware context", func() error { return errB })

	err := undo.rollback(context.Background(), logging.Discard())
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.ErrorContains(t, err, "release columns: a")
	assert.True(t, ran, "a failing step does not stop the rollback")
}

func TestUndoStackUnpinsBuffers(t *testing.T) {
	b := &pinCounter{handle: 7, pins: 2}
	var undo undoStack
	undo.unpin(b)
	undo.unpin(b)
	require.NoError(t, undo.rollback(context.Background(), logging.Discard()))
	assert.Zero(t, b.pins)
}

func TestUndoStackEmpty(t *testing.T) {
	var undo undoStack
	assert.NoError(t, undo.rollback(context.Background(), logging.Discard()))
}
