package vm

// BoundCallable is a callable permanently tied to a context and a list of
// leading arguments. It is immutable once created.
type BoundCallable struct {
	fn      Callable
	context Value
	preset  []Value
}

// Bind ties fn to context. Calling the result with args invokes fn with
// self = context and the arguments preset followed by args.
//
// context is stored by reference and may be nil. preset is copied.
func Bind(fn Callable, context Value, preset ...Value) *BoundCallable {
	return &BoundCallable{
		fn:      fn,
		context: context,
		preset:  append([]Value(nil), preset...),
	}
}

// BindMethod resolves selector on obj's class now and binds the method to
// obj, so later calls run it with obj as self wherever they come from.
func BindMethod(obj *Object, selector string, preset ...Value) (*BoundCallable, error) {
	if obj == nil {
		return nil, misuse("bind", "nil receiver for #%s", selector)
	}
	method := obj.class.lookupOrNil(selector)
	if method == nil {
		return nil, &MethodNotFoundError{ClassName: obj.ClassName(), Selector: selector}
	}
	return Bind(method, obj, preset...), nil
}

// Call invokes the bound callable. Errors from the callable are returned
// as is.
func (b *BoundCallable) Call(args ...Value) (Value, error) {
	if b.fn == nil {
		return nil, misuse("call", "bound callable has no function")
	}
	all := make([]Value, 0, len(b.preset)+len(args))
	all = append(all, b.preset...)
	all = append(all, args...)
	return b.fn(b.context, all)
}

// Callable adapts b to a Callable that ignores the context it is handed.
// This is what to give an event source that supplies its own self.
func (b *BoundCallable) Callable() Callable {
	return func(_ Value, args []Value) (Value, error) {
		return b.Call(args...)
	}
}

// Partial returns a new BoundCallable with the same function and context
// and more appended to the preset arguments. The context cannot change.
func (b *BoundCallable) Partial(more ...Value) *BoundCallable {
	preset := make([]Value, 0, len(b.preset)+len(more))
	preset = append(preset, b.preset...)
	preset = append(preset, more...)
	return &BoundCallable{fn: b.fn, context: b.context, preset: preset}
}

// Context returns the bound context.
func (b *BoundCallable) Context() Value {
	return b.context
}

// Preset returns a copy of the preset leading arguments.
func (b *BoundCallable) Preset() []Value {
	return append([]Value(nil), b.preset...)
}
