package nodename

// Name is the ambient node name associated with the current operation.
//
// A Name distinguishes "set to a value" from "not set at all". The empty
// string is a valid, set value; the zero Name is unset. The two states must
// survive a save/restore round trip unchanged.
type Name struct {
	value string
	set   bool
}

// New returns a set Name holding the given value.
func New(value string) Name {
	return Name{value: value, set: true}
}

// IsSet reports whether the name has been set.
func (n Name) IsSet() bool {
	return n.set
}

// Value returns the node name, or "" when the name is unset.
func (n Name) Value() string {
	return n.value
}

// NodeName returns the name itself. This lets a raw Name be passed anywhere
// a source of node names is accepted, such as [marshal.NameSource].
func (n Name) NodeName() Name {
	return n
}

// String implements [fmt.Stringer]. Unset names render as "<unset>" so they
// are distinguishable from a set empty name in log output.
func (n Name) String() string {
	if !n.set {
		return "<unset>"
	}
	return n.value
}
