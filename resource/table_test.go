package resource_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/resource"
)

func newTable(t *testing.T, cols uint32) *resource.Table {
	t.Helper()
	tbl, err := resource.NewTable(cols, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return tbl
}

func TestNewTable_RejectsBadWidth(t *testing.T) {
	_, err := resource.NewTable(0, nil)
	assert.Error(t, err)
	_, err = resource.NewTable(resource.MaxColumns+1, nil)
	assert.Error(t, err)
}

func TestAllocate_FirstFitDisjoint(t *testing.T) {
	tbl := newTable(t, 8)

	a, err := tbl.Allocate(1, xdna.ContextSpec{Columns: 3})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), a.StartCol)
	assert.Equal(t, uint64(0b111), a.ColMap())

	b, err := tbl.Allocate(2, xdna.ContextSpec{Columns: 4})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), b.StartCol)
	assert.Zero(t, a.ColMap()&b.ColMap(), "column ranges overlap")

	assert.Equal(t, uint32(1), tbl.Free())
	assert.Equal(t, uint64(0b0111_1111), tbl.Used())
}

// TestAllocate_ExhaustedThenFreed verifies that:
//
//	Given a device whose free columns cannot fit a request,
//	When I allocate, the table returns ErrResourceExhausted,
//	And after another context releases its columns the same
//	request succeeds.
func TestAllocate_ExhaustedThenFreed(t *testing.T) {
	tbl := newTable(t, 4)

	_, err := tbl.Allocate(1, xdna.ContextSpec{Columns: 3})
	require.NoError(t, err)

	_, err = tbl.Allocate(2, xdna.ContextSpec{Columns: 2})
	var exhausted xdna.ErrResourceExhausted
	require.True(t, errors.As(err, &exhausted), "expected ErrResourceExhausted, got %v", err)
	assert.Equal(t, uint32(2), exhausted.Requested)
	assert.Equal(t, uint32(1), exhausted.Free)

	tbl.Release(1)

	e, err := tbl.Allocate(2, xdna.ContextSpec{Columns: 2})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), e.StartCol)
}

func TestAllocate_Fragmented(t *testing.T) {
	tbl := newTable(t, 6)
	for id := xdna.ContextID(1); id <= 3; id++ {
		_, err := tbl.Allocate(id, xdna.ContextSpec{Columns: 2})
		require.NoError(t, err)
	}
	tbl.Release(1)
	tbl.Release(3)

	// Four columns are free but not contiguous.
	_, err := tbl.Allocate(4, xdna.ContextSpec{Columns: 4})
	var exhausted xdna.ErrResourceExhausted
	assert.True(t, errors.As(err, &exhausted))
	assert.Equal(t, uint32(4), exhausted.Free)
}

func TestAllocate_ColumnList(t *testing.T) {
	tbl := newTable(t, 8)

	e, err := tbl.Allocate(1, xdna.ContextSpec{Columns: 2, ColumnList: []uint32{6, 4}})
	require.NoError(t, err)
	assert.Equal(t, uint32(4), e.StartCol)

	e, err = tbl.Allocate(2, xdna.ContextSpec{Columns: 2, ColumnList: []uint32{4, 6}})
	require.NoError(t, err)
	assert.Equal(t, uint32(6), e.StartCol)

	_, err = tbl.Allocate(3, xdna.ContextSpec{Columns: 2, ColumnList: []uint32{5, 7}})
	assert.Error(t, err)
}

func TestAllocate_Rejects(t *testing.T) {
	tbl := newTable(t, 4)
	_, err := tbl.Allocate(1, xdna.ContextSpec{Columns: 0})
	assert.Error(t, err)

	_, err = tbl.Allocate(1, xdna.ContextSpec{Columns: 1, CUs: make([]xdna.CUConfig, resource.MaxCUs+1)})
	assert.Error(t, err)

	_, err = tbl.Allocate(1, xdna.ContextSpec{Columns: 1})
	require.NoError(t, err)
	_, err = tbl.Allocate(1, xdna.ContextSpec{Columns: 1})
	assert.Error(t, err, "duplicate context id")
}

func TestConfigure(t *testing.T) {
	tbl := newTable(t, 4)
	_, err := tbl.Allocate(1, xdna.ContextSpec{Columns: 1, MaxOpc: 4})
	require.NoError(t, err)

	cus := []xdna.CUConfig{{BO: 10, Function: 0}, {BO: 11, Function: 1}}
	require.NoError(t, tbl.Configure(1, cus))

	cus[0].BO = 99
	e, ok := tbl.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, xdna.BufferHandle(10), e.CUs[0].BO, "table must not alias the caller's slice")
	assert.Equal(t, uint32(4), e.MaxOpc)

	var invalid xdna.ErrInvalidContext
	assert.True(t, errors.As(tbl.Configure(2, cus), &invalid))
}

func TestAllocate_ConcurrentClientsNeverOverlap(t *testing.T) {
	tbl := newTable(t, 64)

	var wg sync.WaitGroup
	for id := xdna.ContextID(1); id <= 32; id++ {
		wg.Add(1)
		go func(id xdna.ContextID) {
			defer wg.Done()
			if _, err := tbl.Allocate(id, xdna.ContextSpec{Columns: 2}); err != nil {
				t.Errorf("allocate %d: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	var seen uint64
	for _, e := range tbl.Entries() {
		assert.Zero(t, seen&e.ColMap(), "context %d overlaps", e.Context)
		seen |= e.ColMap()
	}
	assert.Equal(t, ^uint64(0), seen)
	assert.Zero(t, tbl.Free())
}
