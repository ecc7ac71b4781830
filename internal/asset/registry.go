// Package asset maps logical sprite names to image references.
package asset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("asset not found")
	ErrEmptyName = errors.New("asset name is empty")
	ErrDuplicate = errors.New("duplicate asset name")
)

// Reference is an opaque handle to an image resource. Path is relative to the
// asset bundle root; the bytes behind it are never loaded here.
type Reference struct {
	Name string
	Path string
}

// Registry is an ordered, read-only set of references keyed by name.
// It must not be modified after NewRegistry returns.
type Registry struct {
	refs  []Reference
	index map[string]int
}

// NewRegistry builds a registry preserving the order of refs.
func NewRegistry(refs ...Reference) (*Registry, error) {
	r := &Registry{
		refs:  make([]Reference, 0, len(refs)),
		index: make(map[string]int, len(refs)),
	}
	for _, ref := range refs {
		if strings.TrimSpace(ref.Name) == "" {
			return nil, fmt.Errorf("register %q: %w", ref.Path, ErrEmptyName)
		}
		if _, ok := r.index[ref.Name]; ok {
			return nil, fmt.Errorf("register %q: %w", ref.Name, ErrDuplicate)
		}
		r.index[ref.Name] = len(r.refs)
		r.refs = append(r.refs, ref)
	}
	return r, nil
}

// Lookup returns the reference registered under name.
func (r *Registry) Lookup(name string) (Reference, error) {
	i, ok := r.index[name]
	if !ok {
		return Reference{}, fmt.Errorf("lookup %q: %w", name, ErrNotFound)
	}
	return r.refs[i], nil
}

// Select looks up each name in order and returns the references in that
// order. The first unknown name fails the whole selection.
func (r *Registry) Select(names ...string) ([]Reference, error) {
	out := make([]Reference, 0, len(names))
	for _, name := range names {
		ref, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.refs))
	for i, ref := range r.refs {
		names[i] = ref.Name
	}
	return names
}

// Len returns the number of registered references.
func (r *Registry) Len() int {
	return len(r.refs)
}
