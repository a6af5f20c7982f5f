package marshal

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/johnrutherford/marshal-kit/internal/errors"
)

// Registry maps codec format names to [Marshaller] implementations so the
// codec for an operation can be picked by configuration.
//
// It is safe for concurrent use.
type Registry struct {
	codecs *xsync.MapOf[string, Marshaller]
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: xsync.NewMapOf[string, Marshaller](),
	}
}

// Register adds a codec under the given format name, replacing any codec
// previously registered under the same name.
func (r *Registry) Register(name string, m Marshaller) {
	r.codecs.Store(name, m)
}

// Lookup returns the codec registered under the given format name.
//
// Returns an error wrapping [ErrNotRegistered] if the name is unknown.
func (r *Registry) Lookup(name string) (Marshaller, error) {
	m, ok := r.codecs.Load(name)
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "lookup codec %q", name)
	}
	return m, nil
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.codecs.Size())
	r.codecs.Range(func(name string, _ Marshaller) bool {
		names = append(names, name)
		return true
	})

	slices.Sort(names)
	return names
}
