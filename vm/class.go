package vm

// ---------------------------------------------------------------------------
// Class: type descriptor
// ---------------------------------------------------------------------------

// Class describes one type: a construction procedure plus a method table.
//
// A class built by NewClass is a base descriptor. A class returned by
// Compose additionally designates a superclass, whose construction runs
// first on every new instance, and records the subtype descriptor it was
// derived from as its origin. Both links are fixed at composition.
type Class struct {
	Name   string      // Class name
	Params []string    // Own constructor parameter names
	Init   Constructor // Own construction logic

	superclass *Class // Designated parent (nil for base classes)
	origin     *Class // Subtype descriptor a composed class was derived from
	methods    *MethodTable
	forward    Forwarder
}

// NewClass creates a base class. A nil init constructs nothing.
func NewClass(name string, params []string, init Constructor) *Class {
	return &Class{
		Name:    name,
		Params:  append([]string(nil), params...),
		Init:    init,
		methods: NewMethodTable(),
	}
}

// Superclass returns the designated parent, or nil for a base class.
func (c *Class) Superclass() *Class {
	return c.superclass
}

// Origin returns the subtype descriptor a composed class was derived
// from, or nil for a base class.
func (c *Class) Origin() *Class {
	return c.origin
}

// IsComposed returns true if the class was produced by Compose.
func (c *Class) IsComposed() bool {
	return c.superclass != nil
}

// AllParams returns every constructor parameter name, inherited first.
func (c *Class) AllParams() []string {
	if c.superclass == nil {
		return c.Params
	}
	inherited := c.superclass.AllParams()
	result := make([]string, len(inherited)+len(c.Params))
	copy(result, inherited)
	copy(result[len(inherited):], c.Params)
	return result
}

// ---------------------------------------------------------------------------
// Method registration
// ---------------------------------------------------------------------------

// Define adds or replaces a method on this class and returns the class.
//
// Composed classes hold a snapshot of their parent's methods, so defining
// a method on a parent after composition does not reach the composed
// class. Definition is not synchronized.
func (c *Class) Define(selector string, fn Callable) *Class {
	if c.methods == nil {
		c.methods = NewMethodTable()
	}
	c.methods.Add(selector, fn)
	return c
}

// DefineMethod adds a method whose context must be an object.
func (c *Class) DefineMethod(selector string, fn MethodFunc) *Class {
	return c.Define(selector, fn.Callable())
}

// RemoveMethod deletes a method from this class's table.
func (c *Class) RemoveMethod(selector string) {
	c.methods.Remove(selector)
}

// Lookup returns the method this class answers for selector, or nil.
func (c *Class) Lookup(selector string) Callable {
	return c.methods.Lookup(selector)
}

// HasMethod returns true if this class answers selector.
func (c *Class) HasMethod(selector string) bool {
	return c.methods.Has(selector)
}

// MethodNames returns every selector this class answers, sorted.
func (c *Class) MethodNames() []string {
	return c.methods.Names()
}

// ---------------------------------------------------------------------------
// Hierarchy
// ---------------------------------------------------------------------------

// IsSubclassOf returns true if c is other, was derived from other, or
// designates other somewhere along its superclass chain.
func (c *Class) IsSubclassOf(other *Class) bool {
	if other == nil {
		return false
	}
	for current := c; current != nil; current = current.superclass {
		if current == other || current.origin == other {
			return true
		}
	}
	return false
}

// IsSuperclassOf returns true if other is a subclass of c.
func (c *Class) IsSuperclassOf(other *Class) bool {
	return other != nil && other.IsSubclassOf(c)
}

// IsPrototypeOf returns true if v is an instance of c.
func (c *Class) IsPrototypeOf(v Value) bool {
	return IsInstanceOf(v, c)
}

// Depth returns the number of superclass links above c.
func (c *Class) Depth() int {
	n := 0
	for current := c.superclass; current != nil; current = current.superclass {
		n++
	}
	return n
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// construct runs the superclass chain's construction, outermost first,
// then this class's own. Each level runs exactly once.
func (c *Class) construct(self *Object, args []Value) error {
	if c.superclass == nil {
		if c.Init == nil {
			return nil
		}
		return c.Init(self, padArgs(args, len(c.Params)))
	}

	superArgs, own := c.forward(args)
	if err := c.superclass.construct(self, superArgs); err != nil {
		return err
	}
	return c.Init(self, padArgs(own, len(c.Params)))
}

// String returns the class name.
func (c *Class) String() string {
	return c.Name
}
