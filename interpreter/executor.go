package interpreter

import (
	"context"
	"errors"
	"fmt"

	"github.com/frobware/go-xdna/action"
)

// ActionExecutor executes reified actions.
type ActionExecutor interface {
	Execute(ctx context.Context, a action.Action) error
	ExecuteAll(ctx context.Context, actions []action.Action) error
}

type executor struct {
	store      Store
	firmware   Firmware
	dispatcher Dispatcher
	columns    ColumnReleaser
}

// NewExecutor returns an executor that applies actions to the given
// collaborators.
func NewExecutor(store Store, fw Firmware, d Dispatcher, columns ColumnReleaser) ActionExecutor {
	return &executor{store: store, firmware: fw, dispatcher: d, columns: columns}
}

func (e *executor) Execute(ctx context.Context, a action.Action) error {
	switch a := a.(type) {
	case action.StopDispatch:
		return e.dispatcher.Stop(ctx, a.Context)

	case action.DestroyFirmwareContext:
		if err := e.firmware.DestroyContext(ctx, a.FWContextID); err != nil {
			return fmt.Errorf("destroy firmware context %d of context %d: %w", a.FWContextID, a.Context, err)
		}
		return nil

	case action.ReleaseColumns:
		e.columns.Release(a.Context)
		return nil

	case action.SaveContext:
		return e.store.SaveContext(ctx, a.Context)

	case action.DeleteContext:
		return e.store.DeleteContext(ctx, a.Context)

	case action.SaveJob:
		return e.store.SaveJob(ctx, a.Job)

	case action.Sequence:
		return e.ExecuteAll(ctx, a.Actions)

	case action.BestEffort:
		var errs []error
		for _, sub := range a.Actions {
			if err := e.Execute(ctx, sub); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)

	default:
		return fmt.Errorf("unknown action type: %T", a)
	}
}

// ExecuteAll runs actions in order, stopping on the first error.
func (e *executor) ExecuteAll(ctx context.Context, actions []action.Action) error {
	for _, a := range actions {
		if err := e.Execute(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
