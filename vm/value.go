package vm

// Value is anything a method, constructor or field can hold.
// nil is the absent value.
type Value = any

// Callable is an invocable unit of behavior. self is the execution
// context visible to the body and may be nil.
type Callable func(self Value, args []Value) (Value, error)

// Constructor initializes the fields of a freshly created object.
type Constructor func(self *Object, args []Value) error

// MethodFunc is a Callable whose context must be an object.
type MethodFunc func(self *Object, args []Value) (Value, error)

// Callable adapts fn for storage in a method table. Invoking the result
// with a context that is not an *Object fails with a MisuseError.
func (fn MethodFunc) Callable() Callable {
	return func(self Value, args []Value) (Value, error) {
		obj, ok := self.(*Object)
		if !ok || obj == nil {
			return nil, misuse("invoke", "context %T is not an object", self)
		}
		return fn(obj, args)
	}
}

// ArgAt returns args[i], or nil when i is out of range.
func ArgAt(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// padArgs returns a copy of args extended with nil up to n entries.
func padArgs(args []Value, n int) []Value {
	size := len(args)
	if n > size {
		size = n
	}
	out := make([]Value, size)
	copy(out, args)
	return out
}
