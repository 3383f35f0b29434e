// Package action contains reified effects: descriptions of what to do
// to the firmware, the dispatcher, the resource table or the store,
// without doing it. The manager computes actions; an interpreter
// executes them.
package action

import (
	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/job"
)

// Action is an effect to be executed.
type Action interface {
	isAction()
}

// StopDispatch tells the dispatcher to drop the context's queue.
type StopDispatch struct {
	Context xdna.ContextID
}

// DestroyFirmwareContext tears down the firmware side of a context.
type DestroyFirmwareContext struct {
	Context     xdna.ContextID
	FWContextID uint32
}

// ReleaseColumns returns a context's columns to the resource table.
type ReleaseColumns struct {
	Context xdna.ContextID
}

// SaveContext persists a context snapshot.
type SaveContext struct {
	Context xdna.HWContext
}

// DeleteContext removes a context record and its job history.
type DeleteContext struct {
	Context xdna.ContextID
}

// SaveJob persists a job snapshot.
type SaveJob struct {
	Job job.Info
}

// Sequence runs actions in order, stopping at the first failure.
type Sequence struct {
	Actions []Action
}

// BestEffort runs every action and reports all failures. Teardown uses
// it so that one failed step does not leak the remaining resources.
type BestEffort struct {
	Actions []Action
}

func (StopDispatch) isAction()           {}
func (DestroyFirmwareContext) isAction() {}
func (ReleaseColumns) isAction()         {}
func (SaveContext) isAction()            {}
func (DeleteContext) isAction()          {}
func (SaveJob) isAction()                {}
func (Sequence) isAction()               {}
func (BestEffort) isAction()             {}
