package vm

import (
	"fmt"
	"slices"
)

// newSuperType builds the SuperType from the classic parasitic combination
// example: name and colors fields, a sayName method. calls counts
// construction runs when non-nil.
func newSuperType(calls *int) *Class {
	c := NewClass("SuperType", []string{"name"}, func(self *Object, args []Value) error {
		if calls != nil {
			*calls++
		}
		self.Set("name", args[0])
		self.Set("colors", []string{"red", "blue", "green"})
		return nil
	})
	c.DefineMethod("sayName", func(self *Object, args []Value) (Value, error) {
		return fmt.Sprint(self.Get("name")), nil
	})
	return c
}

// newSubType builds the undecorated SubType descriptor with an age field.
func newSubType(calls *int) *Class {
	return NewClass("SubType", []string{"age"}, func(self *Object, args []Value) error {
		if calls != nil {
			*calls++
		}
		self.Set("age", args[0])
		return nil
	})
}

func sayAge(self *Object, args []Value) (Value, error) {
	return fmt.Sprintf("%v is %v.", self.Get("name"), self.Get("age")), nil
}

// mustCompose composes sub over super or fails the test run.
func mustCompose(sub, super *Class, opts ...ComposeOption) *Class {
	c, err := Compose(sub, super, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// recorder is a Callable that remembers the context and arguments it saw.
type recorder struct {
	self Value
	args []Value
	n    int
}

func (r *recorder) call(self Value, args []Value) (Value, error) {
	r.self = self
	r.args = slices.Clone(args)
	r.n++
	return len(args), nil
}
