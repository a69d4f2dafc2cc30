package vm

import "sort"

// MethodTable maps selector names to callables.
//
// Tables are not synchronized. Classes are expected to be fully defined
// before their instances are shared between goroutines; after that every
// access is a read.
type MethodTable struct {
	methods map[string]Callable
}

// NewMethodTable creates an empty method table.
func NewMethodTable() *MethodTable {
	return &MethodTable{
		methods: make(map[string]Callable),
	}
}

// Add adds or replaces the method for selector.
func (mt *MethodTable) Add(selector string, fn Callable) {
	if mt.methods == nil {
		mt.methods = make(map[string]Callable)
	}
	mt.methods[selector] = fn
}

// Remove deletes the method for selector, if any.
func (mt *MethodTable) Remove(selector string) {
	if mt == nil {
		return
	}
	delete(mt.methods, selector)
}

// Lookup returns the method for selector, or nil.
func (mt *MethodTable) Lookup(selector string) Callable {
	if mt == nil {
		return nil
	}
	return mt.methods[selector]
}

// Has returns true if the table defines selector.
func (mt *MethodTable) Has(selector string) bool {
	return mt.Lookup(selector) != nil
}

// Len returns the number of methods in the table.
func (mt *MethodTable) Len() int {
	if mt == nil {
		return 0
	}
	return len(mt.methods)
}

// Names returns all selectors in sorted order.
func (mt *MethodTable) Names() []string {
	if mt == nil {
		return nil
	}
	names := make([]string, 0, len(mt.methods))
	for name := range mt.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the table.
func (mt *MethodTable) Clone() *MethodTable {
	out := NewMethodTable()
	if mt == nil {
		return out
	}
	for name, fn := range mt.methods {
		out.methods[name] = fn
	}
	return out
}

// Overlay copies every entry of other into mt, replacing entries with the
// same selector.
func (mt *MethodTable) Overlay(other *MethodTable) {
	if other == nil {
		return
	}
	for name, fn := range other.methods {
		mt.Add(name, fn)
	}
}
