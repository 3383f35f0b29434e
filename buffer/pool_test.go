package buffer_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/logging"
)

func newPool() *buffer.Pool { return buffer.NewPool(logging.Discard()) }

func TestCreateWriteRead(t *testing.T) {
	p := newPool()
	h, err := p.Create("c1", 100)
	require.NoError(t, err)

	require.NoError(t, p.Write("c1", h, 4, []byte{1, 2, 3}))
	got, err := p.Read("c1", h, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 0}, got)

	all, err := p.Read("c1", h, 0, -1)
	require.NoError(t, err)
	assert.Len(t, all, 100, "size is not rounded up to the page")
}

func TestBoundsAndOwnership(t *testing.T) {
	p := newPool()
	h, err := p.Create("c1", 16)
	require.NoError(t, err)

	var invalid xdna.ErrInvalidBuffer
	assert.ErrorAs(t, p.Write("c1", h, 10, make([]byte, 7)), &invalid)
	_, err = p.Read("c1", h, -1, 2)
	assert.ErrorAs(t, err, &invalid)
	_, err = p.Resolve(context.Background(), "c2", h)
	assert.ErrorAs(t, err, &invalid)
	_, err = p.Resolve(context.Background(), "c1", h+100)
	assert.ErrorAs(t, err, &invalid)

	_, err = p.Create("c1", 0)
	assert.Error(t, err)
}

// TestFreeWhilePinned verifies that a buffer pinned by a job stays
// mapped and readable after its handle is freed, and is unmapped when
// the pin is dropped.
func TestFreeWhilePinned(t *testing.T) {
	p := newPool()
	h, err := p.Create("c1", 8)
	require.NoError(t, err)
	require.NoError(t, p.Write("c1", h, 0, []byte("abcdefgh")))

	b, err := p.Resolve(context.Background(), "c1", h)
	require.NoError(t, err)

	require.NoError(t, p.Free("c1", h))
	_, err = p.Resolve(context.Background(), "c1", h)
	assert.Error(t, err, "freed handles cannot be resolved")
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []byte("abcdefgh"), b.Bytes())

	b.Unpin()
	assert.Equal(t, 0, p.Len())
	assert.Error(t, b.Pin(), "pinning an unmapped buffer fails")
}

func TestBoundsRejectOverflow(t *testing.T) {
	p := newPool()
	h, err := p.Create("c1", 16)
	require.NoError(t, err)

	var invalid xdna.ErrInvalidBuffer
	_, err = p.Read("c1", h, 1, math.MaxInt)
	assert.ErrorAs(t, err, &invalid)
	_, err = p.Read("c1", h, math.MaxInt, -1)
	assert.ErrorAs(t, err, &invalid)
	assert.ErrorAs(t, p.Write("c1", h, math.MaxInt, []byte{1}), &invalid)
	assert.ErrorAs(t, p.Write("c1", h, 17, nil), &invalid)

	got, err := p.Read("c1", h, 16, -1)
	require.NoError(t, err)
	assert.Empty(t, got, "reading at the end yields nothing")
}

// TestCopyRacesFree frees a buffer while large copies into and out of
// it are in flight. The copies must either finish or fail cleanly and
// the mapping must be gone once they return.
func TestCopyRacesFree(t *testing.T) {
	p := newPool()
	data := make([]byte, buffer.MaxSize)
	for range 10 {
		h, err := p.Create("c1", buffer.MaxSize)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- p.Write("c1", h, 0, data)
		}()
		go func() {
			defer wg.Done()
			_, err := p.Read("c1", h, 0, -1)
			errs <- err
		}()
		require.NoError(t, p.Free("c1", h))
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				var invalid xdna.ErrInvalidBuffer
				assert.ErrorAs(t, err, &invalid)
			}
		}
		assert.Equal(t, 0, p.Len())
	}
}

func TestFreeAll(t *testing.T) {
	p := newPool()
	for range 3 {
		_, err := p.Create("c1", 8)
		require.NoError(t, err)
	}
	keep, err := p.Create("c2", 8)
	require.NoError(t, err)

	assert.Equal(t, 3, p.FreeAll("c1"))
	assert.Empty(t, p.List("c1"))
	infos := p.List("c2")
	require.Len(t, infos, 1)
	assert.Equal(t, keep, infos[0].Handle)
	assert.Equal(t, int32(1), infos[0].Pins)
}
