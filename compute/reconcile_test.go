package compute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/action"
	"github.com/frobware/go-xdna/compute"
)

func liveSet(ids ...xdna.ContextID) func(xdna.ContextID) bool {
	set := make(map[xdna.ContextID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id xdna.ContextID) bool { return set[id] }
}

func TestTeardownOrder(t *testing.T) {
	got := compute.Teardown(xdna.HWContext{ID: 3, FWContextID: 9})

	be, ok := got.(action.BestEffort)
	require.True(t, ok, "teardown must not stop at the first failure, got %T", got)
	assert.Equal(t, []action.Action{
		action.StopDispatch{Context: 3},
		action.DestroyFirmwareContext{Context: 3, FWContextID: 9},
		action.ReleaseColumns{Context: 3},
		action.DeleteContext{Context: 3},
	}, be.Actions)
}

func TestReconcileActionsDeletesStaleContexts(t *testing.T) {
	stored := []xdna.HWContext{{ID: 7}, {ID: 2}, {ID: 4}, {ID: 5}}

	seq := compute.ReconcileActions(stored, liveSet(4))

	assert.Equal(t, []action.Action{
		action.DeleteContext{Context: 2},
		action.DeleteContext{Context: 5},
		action.DeleteContext{Context: 7},
	}, seq.Actions)
}

func TestReconcileActionsNothingStale(t *testing.T) {
	stored := []xdna.HWContext{{ID: 1}, {ID: 2}}
	assert.Empty(t, compute.ReconcileActions(stored, liveSet(1, 2)).Actions)
	assert.Empty(t, compute.ReconcileActions(nil, liveSet()).Actions)
}

func TestHighestContextID(t *testing.T) {
	assert.Equal(t, xdna.ContextID(0), compute.HighestContextID(nil))
	assert.Equal(t, xdna.ContextID(9), compute.HighestContextID([]xdna.HWContext{{ID: 3}, {ID: 9}, {ID: 1}}))
}
