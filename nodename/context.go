package nodename

import "context"

type slotContextKey struct{}

// NewContext returns a new [context.Context] that carries the provided
// [Slot].
//
// Go has no thread-local storage, so the slot travels with the execution
// unit's context instead. Each independently scheduled unit must attach its
// own Slot; contexts derived from the same parent share the same slot, which
// is exactly what keeps save/restore correctly nested when a single unit
// suspends and resumes mid-operation.
//
// A goroutine spawned from inside a scoped operation does not inherit the
// installed name unless it is handed the same context deliberately; workers
// that need their own ambient state must call NewContext with a fresh Slot.
func NewContext(ctx context.Context, s *Slot) context.Context {
	return context.WithValue(ctx, slotContextKey{}, s)
}

// SlotFromContext returns the [Slot] stored on the context, if present.
func SlotFromContext(ctx context.Context) *Slot {
	if s, ok := ctx.Value(slotContextKey{}).(*Slot); ok {
		return s
	}
	return nil
}

// FromContext returns the ambient [Name] currently installed on the
// context's slot. It returns the unset Name when the context carries no
// slot, or when the slot has not been set.
func FromContext(ctx context.Context) Name {
	if s := SlotFromContext(ctx); s != nil {
		return s.Get()
	}
	return Name{}
}
