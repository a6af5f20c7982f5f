package marshal

import (
	"context"
	"io"

	"github.com/johnrutherford/marshal-kit/nodename"
)

// Marshaller is the underlying object-to-bytes capability wrapped by the
// scoped operations in this package.
//
// Implementations take a [context.Context] so they can observe the ambient
// node name via [nodename.FromContext] for logging or type resolution. They
// must not retain the context beyond the call.
//
// Concrete implementations are provided by the codec packages, for example
// codec/jsoncodec and codec/msgpackcodec.
type Marshaller interface {
	// Marshal encodes v and returns the encoded bytes.
	Marshal(ctx context.Context, v any) ([]byte, error)

	// MarshalTo encodes v directly to w.
	MarshalTo(ctx context.Context, w io.Writer, v any) error

	// Unmarshal decodes data into v, which must be a pointer.
	Unmarshal(ctx context.Context, data []byte, v any) error

	// UnmarshalFrom decodes a single value from r into v.
	UnmarshalFrom(ctx context.Context, r io.Reader, v any) error
}

// ClientMarshaller is the lightweight buffer-oriented variant used by
// client-facing transports. Marshal reserves off bytes of headroom in front
// of the encoded payload so a message header can be written in place
// without a second allocation.
type ClientMarshaller interface {
	Marshal(ctx context.Context, v any, off int) ([]byte, error)
	Unmarshal(ctx context.Context, data []byte, v any) error
}

// NameSource supplies the ambient node name for one scoped operation.
//
// [nodename.Name] implements NameSource by returning itself, so call sites
// that already hold the raw name pass it directly. Higher-level owners of
// the name, such as [nodecfg.Config], implement it as a lookup. This is the
// single parameterization point for how the identifier is obtained.
type NameSource interface {
	NodeName() nodename.Name
}
