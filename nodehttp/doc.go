/*
Package nodehttp provides HTTP middleware that gives each request its own
ambient node-name slot.

Example:

	package main

	import (
		"net/http"

		"github.com/johnrutherford/marshal-kit"
		"github.com/johnrutherford/marshal-kit/codec/jsoncodec"
		"github.com/johnrutherford/marshal-kit/nodehttp"
		"github.com/johnrutherford/marshal-kit/nodename"
	)

	func main() {
		codec := jsoncodec.New()
		node := nodename.New("gateway-1")

		// Give every request its own slot, seeded with this node's name
		slotMiddleware := nodehttp.SlotMiddleware(node)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			_ = marshal.UnmarshalFrom(r.Context(), codec, r.Body, &payload, node)

			// ... handle the payload ...
		})

		http.Handle("/", slotMiddleware(handler))
		http.ListenAndServe(":8080", nil)
	}
*/
package nodehttp
