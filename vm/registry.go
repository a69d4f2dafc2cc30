package vm

import (
	"sort"
	"sync"
)

// ---------------------------------------------------------------------------
// Registry: classes by name
// ---------------------------------------------------------------------------

// Registry manages classes by name.
// It's thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]*Class),
	}
}

// Register adds a class under its name.
// Returns the previous class with this name, or nil.
func (r *Registry) Register(c *Class) *Class {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.classes[c.Name]
	r.classes[c.Name] = c
	return old
}

// Lookup finds a class by name.
func (r *Registry) Lookup(name string) *Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classes[name]
}

// MustLookup finds a class by name, failing with a MisuseError if it is
// not registered.
func (r *Registry) MustLookup(name string) (*Class, error) {
	if c := r.Lookup(name); c != nil {
		return c, nil
	}
	return nil, misuse("lookup", "unknown class: %s", name)
}

// Has returns true if a class with this name is registered.
func (r *Registry) Has(name string) bool {
	return r.Lookup(name) != nil
}

// Names returns all registered class names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// New looks up a class by name and instantiates it.
func (r *Registry) New(name string, args ...Value) (*Object, error) {
	c, err := r.MustLookup(name)
	if err != nil {
		return nil, err
	}
	return NewInstance(c, args...)
}
