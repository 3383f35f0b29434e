package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/interpreter"
	"github.com/frobware/go-xdna/interpreter/store"
	"github.com/frobware/go-xdna/interpreter/store/sqlite"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/logging"
)

func newStore(t *testing.T) interpreter.Store {
	t.Helper()
	s, err := sqlite.NewInMemory(context.Background(), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testContext(id xdna.ContextID, client xdna.ClientID) xdna.HWContext {
	return xdna.HWContext{
		ID:          id,
		Client:      client,
		Name:        "resnet",
		FWContextID: 40 + uint32(id),
		StartCol:    2,
		NumCol:      2,
		NumTiles:    12,
		MaxOpc:      0x800,
		QoS:         xdna.QoS{GOPS: 100, Priority: 2},
		CUs:         []xdna.CUConfig{{BO: 9, Function: 1}},
		Status:      xdna.StatusReady,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC),
	}
}

func TestContextRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	want := testContext(1, "c1")

	require.NoError(t, s.SaveContext(ctx, want))
	got, err := s.GetContext(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveContextUpdatesStatus(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	hw := testContext(1, "c1")
	require.NoError(t, s.SaveContext(ctx, hw))

	hw.OldStatus, hw.Status = hw.Status, xdna.StatusStop
	hw.CUs = nil
	require.NoError(t, s.SaveContext(ctx, hw))

	got, err := s.GetContext(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, xdna.StatusStop, got.Status)
	assert.Equal(t, xdna.StatusReady, got.OldStatus)
	assert.Nil(t, got.CUs)
}

func TestGetContextNotFound(t *testing.T) {
	s := newStore(t)
	_, err := s.GetContext(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListContextsByClient(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveContext(ctx, testContext(3, "c1")))
	require.NoError(t, s.SaveContext(ctx, testContext(1, "c2")))
	require.NoError(t, s.SaveContext(ctx, testContext(2, "c1")))

	mine, err := s.ListContexts(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, xdna.ContextID(2), mine[0].ID)
	assert.Equal(t, xdna.ContextID(3), mine[1].ID)

	all, err := s.ListContexts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// TestDeleteContextCascadesJobs verifies that job history goes with
// its context.
func TestDeleteContextCascadesJobs(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveContext(ctx, testContext(1, "c1")))

	submitted := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	info := job.Info{Context: 1, Seq: 0, Opcode: command.OpStartCU, CUIndex: 0, State: command.StateQueued, SubmittedAt: submitted}
	require.NoError(t, s.SaveJob(ctx, info))

	info.State = command.StateCompleted
	info.FinishedAt = submitted.Add(time.Millisecond)
	require.NoError(t, s.SaveJob(ctx, info))

	jobs, err := s.ListJobs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, info, jobs[0])

	require.NoError(t, s.DeleteContext(ctx, 1))
	jobs, err = s.ListJobs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSaveJobRequiresContext(t *testing.T) {
	s := newStore(t)
	err := s.SaveJob(context.Background(), job.Info{Context: 5, SubmittedAt: time.Now()})
	assert.Error(t, err)
}

func TestRunInTransactionRollsBack(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunInTransaction(ctx, func(tx interpreter.Store) error {
		require.NoError(t, tx.SaveContext(ctx, testContext(1, "c1")))
		return boom
	})
	require.ErrorIs(t, err, boom)
	_, err = s.GetContext(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.RunInTransaction(ctx, func(tx interpreter.Store) error {
		return tx.SaveContext(ctx, testContext(1, "c1"))
	})
	require.NoError(t, err)
	_, err = s.GetContext(ctx, 1)
	assert.NoError(t, err)
}

func TestNewOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "store.db")
	s, err := sqlite.New(context.Background(), path, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, s.SaveContext(context.Background(), testContext(1, "c1")))
	require.NoError(t, s.Close())

	s, err = sqlite.New(context.Background(), path, logging.Discard())
	require.NoError(t, err)
	defer s.Close()
	got, err := s.GetContext(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "resnet", got.Name)
}
