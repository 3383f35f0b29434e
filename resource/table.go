// Package resource tracks the column partitioning of one device.
//
// A Table is owned by whoever owns the device (the daemon, or a test)
// and is shared by every client's hardware context manager. Column
// ranges handed out by Allocate are contiguous and never overlap.
package resource

import (
	"fmt"
	"log/slog"
	"math/bits"
	"slices"
	"sync"

	"github.com/frobware/go-xdna"
)

// MaxColumns is the widest device a Table can describe.
const MaxColumns = 64

// MaxCUs is the number of CUs addressable by a command's CU masks.
const MaxCUs = 4 * 32

// Entry is the resource record of one hardware context.
type Entry struct {
	Context  xdna.ContextID
	StartCol uint32
	NumCol   uint32
	NumTiles uint32
	MemSize  uint32
	MaxOpc   uint32
	QoS      xdna.QoS
	CUs      []xdna.CUConfig
}

// ColMap returns the entry's columns as a bitmask.
func (e Entry) ColMap() uint64 {
	return xdna.ColumnMask(e.StartCol, e.NumCol)
}

// Table records which columns of a device are assigned to which
// context.
type Table struct {
	mu      sync.Mutex
	columns uint32
	used    uint64
	entries map[xdna.ContextID]*Entry
	logger  *slog.Logger
}

// NewTable returns an empty table for a device with the given number
// of columns.
func NewTable(columns uint32, logger *slog.Logger) (*Table, error) {
	if columns == 0 || columns > MaxColumns {
		return nil, fmt.Errorf("column count must be in [1, %d], got %d", MaxColumns, columns)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{
		columns: columns,
		entries: make(map[xdna.ContextID]*Entry),
		logger:  logger.With("component", "resource"),
	}, nil
}

// Columns returns the device's column count.
func (t *Table) Columns() uint32 {
	return t.columns
}

// Allocate reserves spec.Columns contiguous columns for id. The lowest
// free start column wins; when spec.ColumnList is not empty only the
// listed start columns are considered.
func (t *Table) Allocate(id xdna.ContextID, spec xdna.ContextSpec) (Entry, error) {
	if spec.Columns == 0 {
		return Entry{}, fmt.Errorf("context %d: column count must be positive", id)
	}
	if err := validateCUs(spec.CUs); err != nil {
		return Entry{}, fmt.Errorf("context %d: %w", id, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[id]; exists {
		return Entry{}, fmt.Errorf("context %d already holds columns", id)
	}

	start, ok := t.findRange(spec.Columns, spec.ColumnList)
	if !ok {
		return Entry{}, xdna.ErrResourceExhausted{
			Requested: spec.Columns,
			Free:      t.columns - uint32(bits.OnesCount64(t.used)),
		}
	}

	e := &Entry{
		Context:  id,
		StartCol: start,
		NumCol:   spec.Columns,
		NumTiles: spec.NumTiles,
		MemSize:  spec.MemSize,
		MaxOpc:   spec.MaxOpc,
		QoS:      spec.QoS,
		CUs:      slices.Clone(spec.CUs),
	}
	t.used |= e.ColMap()
	t.entries[id] = e

	t.logger.Debug("allocated columns",
		"context", id,
		"start_col", e.StartCol,
		"num_col", e.NumCol,
		"col_map", fmt.Sprintf("%#x", e.ColMap()))

	return cloneEntry(e), nil
}

// findRange returns the lowest start column for a free range of width
// cols. Caller holds t.mu.
func (t *Table) findRange(cols uint32, candidates []uint32) (uint32, bool) {
	if cols > t.columns {
		return 0, false
	}
	free := func(start uint32) bool {
		if start+cols > t.columns {
			return false
		}
		return t.used&xdna.ColumnMask(start, cols) == 0
	}
	if len(candidates) > 0 {
		sorted := slices.Clone(candidates)
		slices.Sort(sorted)
		for _, start := range sorted {
			if free(start) {
				return start, true
			}
		}
		return 0, false
	}
	for start := uint32(0); start+cols <= t.columns; start++ {
		if free(start) {
			return start, true
		}
	}
	return 0, false
}

// Release returns id's columns to the free pool. Releasing an unknown
// context is a no-op so teardown paths can call it unconditionally.
func (t *Table) Release(id xdna.ContextID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return
	}
	t.used &^= e.ColMap()
	delete(t.entries, id)
	t.logger.Debug("released columns", "context", id, "start_col", e.StartCol, "num_col", e.NumCol)
}

// Configure replaces the CU table of id.
func (t *Table) Configure(id xdna.ContextID, cus []xdna.CUConfig) error {
	if err := validateCUs(cus); err != nil {
		return fmt.Errorf("context %d: %w", id, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return xdna.ErrInvalidContext{ID: id}
	}
	e.CUs = slices.Clone(cus)
	return nil
}

// Lookup returns the entry for id.
func (t *Table) Lookup(id xdna.ContextID) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(e), true
}

// Entries returns all entries ordered by start column.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, cloneEntry(e))
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return int(a.StartCol) - int(b.StartCol)
	})
	return out
}

// Used returns the bitmask of allocated columns.
func (t *Table) Used() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.used
}

// Free returns the number of unallocated columns.
func (t *Table) Free() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.columns - uint32(bits.OnesCount64(t.used))
}

func validateCUs(cus []xdna.CUConfig) error {
	if len(cus) > MaxCUs {
		return fmt.Errorf("%d CUs configured, limit is %d", len(cus), MaxCUs)
	}
	return nil
}

func cloneEntry(e *Entry) Entry {
	c := *e
	c.CUs = slices.Clone(e.CUs)
	return c
}
