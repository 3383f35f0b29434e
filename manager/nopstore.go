package manager

import (
	"context"
	"fmt"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/interpreter"
	"github.com/frobware/go-xdna/interpreter/store"
	"github.com/frobware/go-xdna/job"
)

// nopStore stands in when a device runs without persistence.
type nopStore struct{}

func (nopStore) Close() error                                                 { return nil }
func (nopStore) SaveContext(context.Context, xdna.HWContext) error            { return nil }
func (nopStore) DeleteContext(context.Context, xdna.ContextID) error          { return nil }
func (nopStore) SaveJob(context.Context, job.Info) error                      { return nil }
func (nopStore) ListJobs(context.Context, xdna.ContextID) ([]job.Info, error) { return nil, nil }

func (nopStore) GetContext(_ context.Context, id xdna.ContextID) (xdna.HWContext, error) {
	return xdna.HWContext{}, fmt.Errorf("context %d: %w", id, store.ErrNotFound)
}

func (nopStore) ListContexts(context.Context, xdna.ClientID) ([]xdna.HWContext, error) {
	return nil, nil
}

func (s nopStore) RunInTransaction(_ context.Context, fn func(interpreter.Store) error) error {
	return fn(s)
}
