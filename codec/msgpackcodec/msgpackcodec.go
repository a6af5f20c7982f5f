// Package msgpackcodec provides MessagePack-backed implementations of
// [marshal.Marshaller] and [marshal.ClientMarshaller].
//
// MessagePack is the compact binary path; prefer it over jsoncodec for
// node-to-node payloads where size matters.
package msgpackcodec

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/johnrutherford/marshal-kit"
	"github.com/johnrutherford/marshal-kit/internal/errors"
	"github.com/johnrutherford/marshal-kit/nodename"
)

// Format is the registry name for this codec.
const Format = "msgpack"

// Codec implements [marshal.Marshaller] using MessagePack.
type Codec struct {
	log *log.Logger
}

// New creates a MessagePack codec.
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

	data, err := msgpack.Marshal(v)
	return data, errors.Wrap(err, "msgpackcodec: marshal")
}

func (c *Codec) MarshalTo(ctx context.Context, w io.Writer, v any) error {
	c.debug(ctx, "marshal to stream")

	return errors.Wrap(msgpack.NewEncoder(w).Encode(v), "msgpackcodec: marshal to stream")
}

func (c *Codec) Unmarshal(ctx context.Context, data []byte, v any) error {
	c.debug(ctx, "unmarshal")

	return errors.Wrap(msgpack.Unmarshal(data, v), "msgpackcodec: unmarshal")
}

func (c *Codec) UnmarshalFrom(ctx context.Context, r io.Reader, v any) error {
	c.debug(ctx, "unmarshal from stream")

	return errors.Wrap(msgpack.NewDecoder(r).Decode(v), "msgpackcodec: unmarshal from stream")
}

func (c *Codec) debug(ctx context.Context, op string) {
	if c.log == nil {
		return
	}
	c.log.Debug(op, "codec", Format, "node", nodename.FromContext(ctx))
}

// ClientCodec implements [marshal.ClientMarshaller] using MessagePack.
// Marshal reserves the requested headroom in front of the payload.
type ClientCodec struct {
	log *log.Logger
}

// NewClient creates a MessagePack client codec. It accepts the same options
// as [New].
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

	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "msgpackcodec: client marshal")
	}

	buf := make([]byte, off+len(data))
	copy(buf[off:], data)

	return buf, nil
}

func (c *ClientCodec) Unmarshal(ctx context.Context, data []byte, v any) error {
	if c.log != nil {
		c.log.Debug("client unmarshal", "codec", Format, "node", nodename.FromContext(ctx))
	}

	return errors.Wrap(msgpack.Unmarshal(data, v), "msgpackcodec: client unmarshal")
}

var (
	_ marshal.Marshaller       = (*Codec)(nil)
	_ marshal.ClientMarshaller = (*ClientCodec)(nil)
)
