package nodehttp

import "github.com/charmbracelet/log"

// SlotMiddlewareOption is an option used to configure the slot middleware
// when calling [SlotMiddleware].
type SlotMiddlewareOption interface {
	applySlotMiddleware(*slotMiddleware)
}

type slotMiddlewareOption func(*slotMiddleware)

func (o slotMiddlewareOption) applySlotMiddleware(m *slotMiddleware) {
	o(m)
}

// WithLogger stores the logger on each request context so handlers and
// codecs can retrieve it with [nodelog.FromContext].
func WithLogger(l *log.Logger) SlotMiddlewareOption {
	return slotMiddlewareOption(func(m *slotMiddleware) {
		m.logger = l
	})
}
