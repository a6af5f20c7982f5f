package nodename

// Slot holds the current ambient [Name] for a single execution unit.
//
// A Slot is owned by exactly one unit of sequential execution — a goroutine,
// an HTTP request, a worker loop iteration. Because only the owning unit
// ever reads or writes it, no locking is used. Sharing a Slot between
// concurrently running units is a bug in the caller.
//
// Slots are not touched directly by marshalling call sites; the scoped
// operations in the root marshal package install and restore names through
// [Slot.Swap].
type Slot struct {
	cur Name
}

// NewSlot returns an empty Slot. The zero value is also ready to use.
func NewSlot() *Slot {
	return &Slot{}
}

// Get returns the current state of the slot without side effects.
func (s *Slot) Get() Name {
	return s.cur
}

// Set unconditionally overwrites the slot's state. The name may be unset;
// Set performs no validation.
func (s *Slot) Set(n Name) {
	s.cur = n
}

// Reset clears the slot back to the unset state.
func (s *Slot) Reset() {
	s.cur = Name{}
}

// Swap installs n and returns a function that restores the state the slot
// held immediately before the call. Pair it with defer so the previous
// state is reinstated on every exit path, including panics:
//
//	defer slot.Swap(name)()
//
// The write is performed unconditionally even when n equals the current
// state; the two behaviors are observably identical.
//
// Swap on a nil Slot installs nothing and returns a no-op restore, so
// callers that may not have a slot attached do not need to branch.
func (s *Slot) Swap(n Name) (restore func()) {
	if s == nil {
		return func() {}
	}

	prev := s.cur
	s.cur = n

	return func() {
		s.cur = prev
	}
}
