package nodehttp_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/johnrutherford/marshal-kit/nodehttp"
	"github.com/johnrutherford/marshal-kit/nodelog"
	"github.com/johnrutherford/marshal-kit/nodename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SlotMiddleware(t *testing.T) {
	t.Run("seeds slot from source", func(t *testing.T) {
		mw := nodehttp.SlotMiddleware(nodename.New("gateway-1"))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := nodename.SlotFromContext(r.Context())
			require.NotNil(t, slot)
			assert.Equal(t, nodename.New("gateway-1"), slot.Get())
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		mw(handler).ServeHTTP(w, r)
	})

	t.Run("nil source leaves slot unset", func(t *testing.T) {
		mw := nodehttp.SlotMiddleware(nil)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := nodename.SlotFromContext(r.Context())
			require.NotNil(t, slot)
			assert.False(t, slot.Get().IsSet())
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		mw(handler).ServeHTTP(w, r)
	})

	t.Run("each request gets a fresh slot", func(t *testing.T) {
		mw := nodehttp.SlotMiddleware(nodename.New("gateway-1"))

		var slots []*nodename.Slot
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slot := nodename.SlotFromContext(r.Context())
			slots = append(slots, slot)

			// Dirty the slot; the next request must not observe it.
			slot.Set(nodename.New("dirty"))
		})

		wrapped := mw(handler)
		for n := 0; n < 2; n++ {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			wrapped.ServeHTTP(w, r)
		}

		require.Len(t, slots, 2)
		assert.NotSame(t, slots[0], slots[1])
		assert.Equal(t, nodename.New("gateway-1"), slots[1].Get())
	})

	t.Run("with logger", func(t *testing.T) {
		logger := log.New(&bytes.Buffer{})
		mw := nodehttp.SlotMiddleware(
			nodename.New("gateway-1"),
			nodehttp.WithLogger(logger),
		)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Same(t, logger, nodelog.FromContext(r.Context()))
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		mw(handler).ServeHTTP(w, r)
	})
}
