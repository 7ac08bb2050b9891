package catalog

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon templates indexed by ID.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Register adds t to the registry.
//
// Precondition: t must not be nil and must have passed Validate.
// Postcondition: Template(t.ID) returns t; returns an error if t.ID is
// already registered.
func (r *Registry) Register(t *Template) error {
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("catalog: Registry.Register: template ID %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

// RegisterAll adds every template in ts, stopping at the first duplicate.
func (r *Registry) RegisterAll(ts []*Template) error {
	for _, t := range ts {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Template returns the Template for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Template(id string) (*Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

// All returns all registered templates in ascending ID order, so listings
// and exports are stable across runs.
//
// Postcondition: len(result) == Len().
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
