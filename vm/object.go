package vm

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Object is both the execution context a Callable sees as self and the
// instance a class produces.
//
// An object owns its fields exclusively. Objects created with NewObject
// have no class and answer no messages; they exist to be bound as
// contexts. Field access is guarded so that a bound callback fired from
// another goroutine does not race with its owner.
type Object struct {
	id     string
	class  *Class
	mu     sync.RWMutex
	fields map[string]Value
}

// ---------------------------------------------------------------------------
// Object creation
// ---------------------------------------------------------------------------

// NewObject creates an empty object with no class.
func NewObject() *Object {
	return newObject(nil)
}

// NewObjectFrom creates a classless object holding a copy of fields.
func NewObjectFrom(fields map[string]Value) *Object {
	obj := newObject(nil)
	for name, v := range fields {
		obj.fields[name] = v
	}
	return obj
}

func newObject(class *Class) *Object {
	return &Object{
		id:     generateID(class),
		class:  class,
		fields: make(map[string]Value),
	}
}

// generateID creates a unique object ID prefixed with the class name.
func generateID(class *Class) string {
	prefix := "object"
	if class != nil && class.Name != "" {
		prefix = strings.ToLower(strings.ReplaceAll(class.Name, " ", "_"))
	}
	return prefix + "_" + uuid.New().String()
}

// ---------------------------------------------------------------------------
// Identity
// ---------------------------------------------------------------------------

// ID returns the object's unique identifier.
func (obj *Object) ID() string {
	return obj.id
}

// Class returns the class that produced the object, or nil.
func (obj *Object) Class() *Class {
	return obj.class
}

// ClassName returns the name of the object's class, or "Object" for a
// classless object.
func (obj *Object) ClassName() string {
	if obj.class == nil {
		return "Object"
	}
	return obj.class.Name
}

// String returns the canonical printString of the object.
func (obj *Object) String() string {
	return fmt.Sprintf("<%s %s>", obj.ClassName(), obj.id)
}

// ---------------------------------------------------------------------------
// Field access
// ---------------------------------------------------------------------------

// Get returns the named field, or nil if it is not set.
func (obj *Object) Get(name string) Value {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return obj.fields[name]
}

// Lookup returns the named field and whether it is set.
func (obj *Object) Lookup(name string) (Value, bool) {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	v, ok := obj.fields[name]
	return v, ok
}

// Set adds or overwrites a field.
func (obj *Object) Set(name string, v Value) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.fields[name] = v
}

// Has returns true if the field is set, even to nil.
func (obj *Object) Has(name string) bool {
	_, ok := obj.Lookup(name)
	return ok
}

// Delete removes a field.
func (obj *Object) Delete(name string) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	delete(obj.fields, name)
}

// FieldNames returns the names of all set fields in sorted order.
func (obj *Object) FieldNames() []string {
	obj.mu.RLock()
	defer obj.mu.RUnlock()

	names := make([]string, 0, len(obj.fields))
	for name := range obj.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumFields returns the number of set fields.
func (obj *Object) NumFields() int {
	obj.mu.RLock()
	defer obj.mu.RUnlock()
	return len(obj.fields)
}

// Fields returns a shallow copy of the object's fields.
func (obj *Object) Fields() map[string]Value {
	obj.mu.RLock()
	defer obj.mu.RUnlock()

	out := make(map[string]Value, len(obj.fields))
	for name, v := range obj.fields {
		out[name] = v
	}
	return out
}
