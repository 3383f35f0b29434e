package manager

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpIDHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := WithOpIDHandler(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.InfoContext(context.Background(), "no op")
	assert.NotContains(t, buf.String(), "op_id")

	buf.Reset()
	logger.With("component", "manager").InfoContext(ContextWithOpID(context.Background(), 42), "create")
	assert.Contains(t, buf.String(), "op_id=42")
	assert.Contains(t, buf.String(), "component=manager")
}

func TestWithOpIDHandlerDoesNotDoubleWrap(t *testing.T) {
	logger := WithOpIDHandler(slog.Default())
	assert.Same(t, logger, WithOpIDHandler(logger))
}

func TestOpIDFromContext(t *testing.T) {
	assert.Equal(t, uint64(0), OpIDFromContext(context.Background()))
	assert.Equal(t, uint64(7), OpIDFromContext(ContextWithOpID(context.Background(), 7)))
}
