// Package compute contains pure functions for business logic.
// Functions in this package perform no I/O - they transform data into actions.
package compute

import (
	"slices"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/action"
)

// Teardown returns the actions that release a context's resources.
// Dispatch stops before the firmware context goes away, and the columns
// return to the table before the record is deleted. Every step runs
// even if an earlier one fails.
func Teardown(info xdna.HWContext) action.Action {
	return action.BestEffort{Actions: []action.Action{
		action.StopDispatch{Context: info.ID},
		action.DestroyFirmwareContext{Context: info.ID, FWContextID: info.FWContextID},
		action.ReleaseColumns{Context: info.ID},
		action.DeleteContext{Context: info.ID},
	}}
}

// StaleContexts returns the stored contexts that are not live, in id
// order. Pure function.
func StaleContexts(stored []xdna.HWContext, live func(xdna.ContextID) bool) []xdna.ContextID {
	var stale []xdna.ContextID
	for _, hw := range stored {
		if !live(hw.ID) {
			stale = append(stale, hw.ID)
		}
	}
	slices.Sort(stale)
	return stale
}

// ReconcileActions computes the actions that remove stale context
// records. The sequence stops at the first failure so a transaction
// wrapping it rolls back as a whole. Pure function.
func ReconcileActions(stored []xdna.HWContext, live func(xdna.ContextID) bool) action.Sequence {
	stale := StaleContexts(stored, live)
	seq := action.Sequence{Actions: make([]action.Action, 0, len(stale))}
	for _, id := range stale {
		seq.Actions = append(seq.Actions, action.DeleteContext{Context: id})
	}
	return seq
}

// HighestContextID returns the largest id among stored contexts, or
// zero. New ids are allocated above it. Pure function.
func HighestContextID(stored []xdna.HWContext) xdna.ContextID {
	var highest xdna.ContextID
	for _, hw := range stored {
		highest = max(highest, hw.ID)
	}
	return highest
}
