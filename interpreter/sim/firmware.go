// Package sim is a software device: a firmware model that tracks
// context registrations and a dispatcher that executes command
// packets on one worker goroutine per context.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/frobware/go-xdna"
)

// Firmware tracks firmware contexts. It implements
// interpreter.Firmware.
type Firmware struct {
	logger *slog.Logger

	mu       sync.Mutex
	next     uint32
	contexts map[uint32]xdna.HWContext
	// failCreate, when set, is returned by the next CreateContext.
	failCreate error
}

func NewFirmware(logger *slog.Logger) *Firmware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Firmware{
		logger:   logger.With("component", "firmware"),
		next:     1,
		contexts: make(map[uint32]xdna.HWContext),
	}
}

// FailNextCreate makes the next CreateContext return err.
func (f *Firmware) FailNextCreate(err error) {
	f.mu.Lock()
	f.failCreate = err
	f.mu.Unlock()
}

func (f *Firmware) CreateContext(_ context.Context, hw xdna.HWContext) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failCreate; err != nil {
		f.failCreate = nil
		return 0, err
	}
	id := f.next
	f.next++
	hw.FWContextID = id
	f.contexts[id] = hw
	f.logger.Debug("firmware context created", "fw_ctx_id", id, "context", hw.ID, "start_col", hw.StartCol, "num_col", hw.NumCol)
	return id, nil
}

func (f *Firmware) ConfigCU(_ context.Context, fwCtxID uint32, cus []xdna.CUConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	hw, ok := f.contexts[fwCtxID]
	if !ok {
		return fmt.Errorf("firmware context %d does not exist", fwCtxID)
	}
	hw.CUs = append([]xdna.CUConfig(nil), cus...)
	f.contexts[fwCtxID] = hw
	f.logger.Debug("firmware CUs configured", "fw_ctx_id", fwCtxID, "cus", len(cus))
	return nil
}

func (f *Firmware) DestroyContext(_ context.Context, fwCtxID uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contexts[fwCtxID]; !ok {
		return fmt.Errorf("firmware context %d does not exist", fwCtxID)
	}
	delete(f.contexts, fwCtxID)
	f.logger.Debug("firmware context destroyed", "fw_ctx_id", fwCtxID)
	return nil
}

// Contexts returns the number of live firmware contexts.
func (f *Firmware) Contexts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contexts)
}

// CUs returns the CU table registered for fwCtxID.
func (f *Firmware) CUs(fwCtxID uint32) []xdna.CUConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contexts[fwCtxID].CUs
}
