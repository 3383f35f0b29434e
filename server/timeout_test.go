package server

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frobware/go-xdna/job"
)

func TestWaitTimeout(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want time.Duration
	}{
		{"poll", 0, 0},
		{"milliseconds", 250, 250 * time.Millisecond},
		{"negative blocks", -1, job.NoTimeout},
		{"largest exact value", maxWaitMillis, time.Duration(maxWaitMillis) * time.Millisecond},
		{"saturates past the limit", maxWaitMillis + 1, time.Duration(math.MaxInt64)},
		{"saturates at int64 max", math.MaxInt64, time.Duration(math.MaxInt64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := waitTimeout(tt.ms)
			assert.Equal(t, tt.want, got)
			if tt.ms >= 0 {
				assert.GreaterOrEqual(t, got, time.Duration(0), "finite timeouts never become negative")
			}
		})
	}
}
