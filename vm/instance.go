package vm

// NewInstance creates an object of class c and runs its construction.
//
// For a composed class the superclass chain constructs first, each level
// once, then the class's own construction runs on the same object and may
// overwrite inherited fields. Constructor errors are returned unchanged.
func NewInstance(c *Class, args ...Value) (*Object, error) {
	if c == nil {
		return nil, misuse("new", "nil class")
	}
	obj := newObject(c)
	if err := c.construct(obj, args); err != nil {
		return nil, err
	}
	return obj, nil
}

// IsInstanceOf reports whether v is an object produced by c or by a class
// that derives from c. Derivation is one-directional: an instance of a
// superclass is never an instance of a class composed from it.
func IsInstanceOf(v Value, c *Class) bool {
	obj, ok := v.(*Object)
	if !ok || obj == nil || obj.class == nil || c == nil {
		return false
	}
	return obj.class.IsSubclassOf(c)
}
