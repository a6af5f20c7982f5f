// Package nodelog carries a [log.Logger] on the context and enriches it
// with the ambient node name, so diagnostics emitted from inside a scoped
// marshal operation identify which node the operation belongs to.
package nodelog

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/johnrutherford/marshal-kit/nodename"
)

type loggerContextKey struct{}

// NewContext returns a new [context.Context] that carries the provided
// logger.
func NewContext(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext returns the logger stored on the context, or [log.Default]
// when none is stored.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// With returns the context's logger enriched with the ambient node name
// when one is installed on the context's slot. With an unset name it
// returns the context's logger unchanged.
func With(ctx context.Context) *log.Logger {
	l := FromContext(ctx)

	if name := nodename.FromContext(ctx); name.IsSet() {
		return l.With("node", name.Value())
	}

	return l
}
