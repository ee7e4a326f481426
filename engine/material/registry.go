package material

import (
	"fmt"
)

// registry is the implementation of the Registry interface.
// A tag-keyed map backs lookup; the tags slice preserves definition order.
type registry struct {
	byTag map[string]Material
	tags  []string
}

// Registry defines the interface for the tag-addressed material table.
//
// Materials are defined once during scene setup and live for the rendering
// lifetime of the process; individual removal is not supported. Duplicate
// tags are rejected at definition time rather than silently shadowed by
// lookup order.
type Registry interface {
	// Define adds a material record to the registry.
	//
	// Parameters:
	//   - m: the material to add; its tag must be non-empty and unused
	//
	// Returns:
	//   - error: error if the tag is empty or already defined
	Define(m Material) error

	// Find looks up a material by tag.
	//
	// An absent tag and an empty registry are indistinguishable: both
	// return false, and callers push no material-specific uniforms in
	// either case.
	//
	// Parameters:
	//   - tag: the material tag to look up
	//
	// Returns:
	//   - Material: the material record, or nil if not found
	//   - bool: true if the tag is defined
	Find(tag string) (Material, bool)

	// Tags returns the defined tags in definition order.
	//
	// Returns:
	//   - []string: the tags, oldest first
	Tags() []string

	// Len returns the number of defined materials.
	//
	// Returns:
	//   - int: the material count
	Len() int
}

var _ Registry = &registry{}

// NewRegistry creates an empty material registry.
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry() Registry {
	return &registry{
		byTag: make(map[string]Material),
	}
}

func (r *registry) Define(m Material) error {
	if m == nil {
		return fmt.Errorf("material is nil")
	}
	tag := m.Tag()
	if tag == "" {
		return fmt.Errorf("material tag is empty")
	}
	if _, exists := r.byTag[tag]; exists {
		return fmt.Errorf("material %q is already defined", tag)
	}
	r.byTag[tag] = m
	r.tags = append(r.tags, tag)
	return nil
}

func (r *registry) Find(tag string) (Material, bool) {
	m, ok := r.byTag[tag]
	return m, ok
}

func (r *registry) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

func (r *registry) Len() int {
	return len(r.byTag)
}
