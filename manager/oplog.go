package manager

import (
	"context"
	"log/slog"
)

type opIDKey struct{}

// ContextWithOpID tags ctx with an operation id that the manager's
// logger adds to every record logged with that context.
func ContextWithOpID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, opIDKey{}, id)
}

// OpIDFromContext returns the operation id of ctx, or 0.
func OpIDFromContext(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(opIDKey{}).(uint64)
	return id
}

// opIDHandler adds op_id from the context to each record. It only has
// an effect for the *Context logging methods.
type opIDHandler struct {
	slog.Handler
}

func (h opIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if opID := OpIDFromContext(ctx); opID != 0 {
		r.AddAttrs(slog.Uint64("op_id", opID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h opIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return opIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h opIDHandler) WithGroup(name string) slog.Handler {
	return opIDHandler{h.Handler.WithGroup(name)}
}

// WithOpIDHandler wraps logger so that records carry op_id.
func WithOpIDHandler(logger *slog.Logger) *slog.Logger {
	if _, ok := logger.Handler().(opIDHandler); ok {
		return logger
	}
	return slog.New(opIDHandler{logger.Handler()})
}
