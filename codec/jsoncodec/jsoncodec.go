// Package jsoncodec provides JSON-backed implementations of
// [marshal.Marshaller] and [marshal.ClientMarshaller].
package jsoncodec

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/johnrutherford/marshal-kit"
	"github.com/johnrutherford/marshal-kit/internal/errors"
	"github.com/johnrutherford/marshal-kit/nodename"
)

// Format is the registry name for this codec.
const Format = "json"

// Codec implements [marshal.Marshaller] using encoding/json.
type Codec struct {
	log *log.Logger
}

// New creates a JSON codec.
//
// Available options:
//   - [WithLogger] enables a debug log line per operation, tagged with the
//     ambient node name when one is installed.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt.applyCodec(c)
	}
	return c
}

func (c *Codec) Marshal(ctx context.Context, v any) ([]byte, error) {
	c.debug(ctx, "marshal")

	data, err := json.Marshal(v)
	return data, errors.Wrap(err, "jsoncodec: marshal")
}

func (c *Codec) MarshalTo(ctx context.Context, w io.Writer, v any) error {
	c.debug(ctx, "marshal to stream")

	return errors.Wrap(json.NewEncoder(w).Encode(v), "jsoncodec: marshal to stream")
}

func (c *Codec) Unmarshal(ctx context.Context, data []byte, v any) error {
	c.debug(ctx, "unmarshal")

	return errors.Wrap(json.Unmarshal(data, v), "jsoncodec: unmarshal")
}

func (c *Codec) UnmarshalFrom(ctx context.Context, r io.Reader, v any) error {
	c.debug(ctx, "unmarshal from stream")

	return errors.Wrap(json.NewDecoder(r).Decode(v), "jsoncodec: unmarshal from stream")
}

func (c *Codec) debug(ctx context.Context, op string) {
	if c.log == nil {
		return
	}
	c.log.Debug(op, "codec", Format, "node", nodename.FromContext(ctx))
}

// ClientCodec implements [marshal.ClientMarshaller] using encoding/json.
// Marshal reserves the requested headroom in front of the payload.
type ClientCodec struct {
	log *log.Logger
}

// NewClient creates a JSON client codec. It accepts the same options as
// [New].
func NewClient(opts ...Option) *ClientCodec {
	c := &ClientCodec{}
	for _, opt := range opts {
		opt.applyClientCodec(c)
	}
	return c
}

func (c *ClientCodec) Marshal(ctx context.Context, v any, off int) ([]byte, error) {
	if c.log != nil {
		c.log.Debug("client marshal", "codec", Format, "node", nodename.FromContext(ctx))
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "jsoncodec: client marshal")
	}

	buf := make([]byte, off+len(data))
	copy(buf[off:], data)

	return buf, nil
}

func (c *ClientCodec) Unmarshal(ctx context.Context, data []byte, v any) error {
	if c.log != nil {
		c.log.Debug("client unmarshal", "codec", Format, "node", nodename.FromContext(ctx))
	}

	return errors.Wrap(json.Unmarshal(data, v), "jsoncodec: client unmarshal")
}

var (
	_ marshal.Marshaller       = (*Codec)(nil)
	_ marshal.ClientMarshaller = (*ClientCodec)(nil)
)
