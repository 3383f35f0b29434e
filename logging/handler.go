package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const componentKey = "component"

// Filter holds the Spec shared by every handler derived from one
// logger, so the spec can be replaced at runtime.
type Filter struct {
	spec atomic.Pointer[Spec]
}

// NewFilter returns a filter enforcing spec.
func NewFilter(spec Spec) *Filter {
	f := &Filter{}
	f.Set(spec)
	return f
}

// Set replaces the spec for all loggers using f.
func (f *Filter) Set(spec Spec) { f.spec.Store(&spec) }

// Spec returns the spec in effect.
func (f *Filter) Spec() Spec { return *f.spec.Load() }

// filteringHandler drops records below the level configured for the
// component named by the most recent "component" attribute.
type filteringHandler struct {
	inner     slog.Handler
	filter    *Filter
	component string
}

// NewFilteringHandler wraps inner so that records are filtered by f.
func NewFilteringHandler(inner slog.Handler, f *Filter) slog.Handler {
	return &filteringHandler{inner: inner, filter: f}
}

func (h *filteringHandler) Enabled(_ context.Context, level slog.Level) bool {
	spec := h.filter.spec.Load()
	return level >= spec.LevelFor(h.component).ToSlog()
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.component
	for _, a := range attrs {
		if a.Key == componentKey {
			component = a.Value.String()
		}
	}
	return &filteringHandler{inner: h.inner.WithAttrs(attrs), filter: h.filter, component: component}
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{inner: h.inner.WithGroup(name), filter: h.filter, component: h.component}
}
