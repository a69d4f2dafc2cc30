package vm

import "slices"

// Send invokes the method named selector on obj with obj as context.
//
// The method is resolved in the object's class table only. A selector
// absent from it fails with a *MethodNotFoundError; errors returned by the
// method itself pass through unchanged. The method receives its own copy
// of args.
func Send(obj *Object, selector string, args ...Value) (Value, error) {
	if obj == nil {
		return nil, misuse("send", "nil receiver for #%s", selector)
	}
	method := obj.class.lookupOrNil(selector)
	if method == nil {
		return nil, &MethodNotFoundError{ClassName: obj.ClassName(), Selector: selector}
	}
	return method(obj, slices.Clone(args))
}

// SendSuper invokes selector as defined by from's superclass, with obj as
// context. It lets a method that shadows an inherited one reach it.
func SendSuper(obj *Object, from *Class, selector string, args ...Value) (Value, error) {
	if obj == nil {
		return nil, misuse("super", "nil receiver for #%s", selector)
	}
	if from == nil {
		return nil, misuse("super", "nil class for #%s", selector)
	}
	if from.superclass == nil {
		return nil, misuse("super", "%s has no superclass", from.Name)
	}
	method := from.superclass.Lookup(selector)
	if method == nil {
		return nil, &MethodNotFoundError{ClassName: from.superclass.Name, Selector: selector}
	}
	return method(obj, slices.Clone(args))
}

// RespondsTo returns true if Send(obj, selector) would find a method.
func RespondsTo(obj *Object, selector string) bool {
	return obj != nil && obj.class.lookupOrNil(selector) != nil
}

// lookupOrNil resolves selector on a possibly nil class.
func (c *Class) lookupOrNil(selector string) Callable {
	if c == nil {
		return nil
	}
	return c.methods.Lookup(selector)
}
