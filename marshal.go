// Package marshal wraps marshal/unmarshal/clone operations so that the
// ambient node name is installed on the calling execution unit's
// [nodename.Slot] for exactly the duration of the delegate call.
//
// Every scoped operation follows the same shape: snapshot the slot, install
// the name supplied by the [NameSource], delegate once with the arguments
// unmodified, and restore the snapshot unconditionally — on normal return,
// on error, and on panic. The operations are stateless and reentrant;
// nested calls save and restore each other's names correctly, and
// concurrent execution units are isolated because each owns its own slot.
//
// The package introduces no behavior of its own beyond the slot dance:
// delegate results and errors pass through verbatim.
package marshal

import (
	"context"
	"io"

	"github.com/johnrutherford/marshal-kit/nodename"
)

// Marshal encodes v with m while the node name supplied by src is installed
// as the ambient name on ctx's slot. The slot's prior state is restored
// before Marshal returns, whether the delegate succeeds, fails, or panics.
func Marshal(ctx context.Context, m Marshaller, v any, src NameSource) ([]byte, error) {
	defer install(ctx, src)()
	return m.Marshal(ctx, v)
}

// MarshalTo encodes v to w with m under the ambient name supplied by src.
func MarshalTo(ctx context.Context, m Marshaller, w io.Writer, v any, src NameSource) error {
	defer install(ctx, src)()
	return m.MarshalTo(ctx, w, v)
}

// Unmarshal decodes data into v with m under the ambient name supplied by
// src.
func Unmarshal(ctx context.Context, m Marshaller, data []byte, v any, src NameSource) error {
	defer install(ctx, src)()
	return m.Unmarshal(ctx, data, v)
}

// UnmarshalFrom decodes a single value from r into v with m under the
// ambient name supplied by src.
func UnmarshalFrom(ctx context.Context, m Marshaller, r io.Reader, v any, src NameSource) error {
	defer install(ctx, src)()
	return m.UnmarshalFrom(ctx, r, v)
}

// Clone round-trips v through m into out, performing both the encode and
// the decode inside a single ambient scope. out must be a pointer to a
// value assignable from v's decoded form.
func Clone(ctx context.Context, m Marshaller, v, out any, src NameSource) error {
	defer install(ctx, src)()

	data, err := m.Marshal(ctx, v)
	if err != nil {
		return err
	}

	return m.Unmarshal(ctx, data, out)
}

// ClientMarshal encodes v with cm, reserving off bytes of headroom, under
// the ambient name supplied by src.
func ClientMarshal(ctx context.Context, cm ClientMarshaller, v any, off int, src NameSource) ([]byte, error) {
	defer install(ctx, src)()
	return cm.Marshal(ctx, v, off)
}

// ClientUnmarshal decodes data into v with cm under the ambient name
// supplied by src.
func ClientUnmarshal(ctx context.Context, cm ClientMarshaller, data []byte, v any, src NameSource) error {
	defer install(ctx, src)()
	return cm.Unmarshal(ctx, data, v)
}

// MarshalUnscoped encodes v with m without reading or writing the ambient
// slot. It is intended for call sites where no ambient identity exists,
// such as isolated test harnesses.
func MarshalUnscoped(ctx context.Context, m Marshaller, v any) ([]byte, error) {
	return m.Marshal(ctx, v)
}

// UnmarshalUnscoped decodes data into v with m without reading or writing
// the ambient slot.
func UnmarshalUnscoped(ctx context.Context, m Marshaller, data []byte, v any) error {
	return m.Unmarshal(ctx, data, v)
}

// install swaps the source's name into ctx's slot and returns the restore
// function. A context without a slot yields a no-op pair.
func install(ctx context.Context, src NameSource) (restore func()) {
	return nodename.SlotFromContext(ctx).Swap(src.NodeName())
}
