package nodehttp

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/johnrutherford/marshal-kit"
	"github.com/johnrutherford/marshal-kit/nodelog"
	"github.com/johnrutherford/marshal-kit/nodename"
)

// SlotMiddleware attaches a fresh [nodename.Slot] to each request's context,
// seeded from the provided [marshal.NameSource].
//
// Each request is served on its own goroutine, so each request is its own
// execution unit and must own its own slot; scoped marshal operations
// performed while handling the request install and restore names on that
// slot without affecting any other request.
//
// Available options:
//   - [WithLogger] also stores a logger on the request context for
//     [nodelog.FromContext].
func SlotMiddleware(src marshal.NameSource, opts ...SlotMiddlewareOption) func(http.Handler) http.Handler {
	mw := &slotMiddleware{
		src: src,
	}
	for _, opt := range opts {
		opt.applySlotMiddleware(mw)
	}

	return func(next http.Handler) http.Handler {
		mw.next = next
		return mw
	}
}

type slotMiddleware struct {
	src    marshal.NameSource
	logger *log.Logger
	next   http.Handler
}

func (m *slotMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slot := nodename.NewSlot()
	if m.src != nil {
		slot.Set(m.src.NodeName())
	}

	ctx := nodename.NewContext(r.Context(), slot)
	if m.logger != nil {
		ctx = nodelog.NewContext(ctx, m.logger)
	}

	m.next.ServeHTTP(w, r.WithContext(ctx))
}
