package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/metrics"
)

func TestJobHooksCountAndChain(t *testing.T) {
	m := metrics.New()
	var seen []uint64
	hooks := m.JobHooks(job.Hooks{Finished: func(i job.Info) { seen = append(seen, i.Seq) }})

	now := time.Now()
	hooks.Admitted(job.Info{Seq: 0, Opcode: command.OpStartCU})
	hooks.Admitted(job.Info{Seq: 1, Opcode: command.OpCmdChain})
	hooks.Finished(job.Info{Seq: 0, State: command.StateCompleted, SubmittedAt: now, FinishedAt: now.Add(time.Millisecond)})
	hooks.Finished(job.Info{Seq: 1, State: command.StateTimeout, SubmittedAt: now, FinishedAt: now.Add(time.Second)})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsSubmitted.WithLabelValues(command.OpStartCU.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsSubmitted.WithLabelValues(command.OpCmdChain.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobsFinished.WithLabelValues(command.StateTimeout.String())))
	assert.Equal(t, []uint64{0, 1}, seen)
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.ContextsActive.Set(2)
	m.ColumnsInUse.Set(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "xdna_contexts_active 2"))
	assert.True(t, strings.Contains(body, "xdna_columns_in_use 4"))
	assert.Contains(t, body, "go_goroutines")
}
