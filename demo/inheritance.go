package demo

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/chazu/protolink/manifest"
	"github.com/chazu/protolink/vm"
)

// NewSuperType returns SuperType(name): sets name and a fresh copy of
// colors on every instance, and answers sayName.
func NewSuperType(w io.Writer, colors []string) *vm.Class {
	c := vm.NewClass("SuperType", []string{"name"}, func(self *vm.Object, args []vm.Value) error {
		self.Set("name", args[0])
		self.Set("colors", slices.Clone(colors))
		return nil
	})
	c.DefineMethod("sayName", func(self *vm.Object, args []vm.Value) (vm.Value, error) {
		line := fmt.Sprint(self.Get("name"))
		_, err := fmt.Fprintln(w, line)
		return line, err
	})
	return c
}

// NewSubType composes SubType(name, age) over super and then defines
// sayAge on the result.
func NewSubType(w io.Writer, super *vm.Class) (*vm.Class, error) {
	sub := vm.NewClass("SubType", []string{"age"}, func(self *vm.Object, args []vm.Value) error {
		self.Set("age", args[0])
		return nil
	})
	composed, err := vm.Compose(sub, super)
	if err != nil {
		return nil, err
	}
	composed.DefineMethod("sayAge", func(self *vm.Object, args []vm.Value) (vm.Value, error) {
		line := fmt.Sprintf("%v is %v.", self.Get("name"), self.Get("age"))
		_, err := fmt.Fprintln(w, line)
		return line, err
	})
	return composed, nil
}

// Inheritance registers SuperType and SubType in reg, instantiates each,
// and reports the capability checks. Calling sayAge on a plain SuperType
// instance is expected to fail with a method-not-found error, which is
// reported rather than returned.
func Inheritance(w io.Writer, reg *vm.Registry, cfg manifest.Inheritance) error {
	super := NewSuperType(w, cfg.Colors)
	reg.Register(super)
	composed, err := NewSubType(w, super)
	if err != nil {
		return err
	}
	reg.Register(composed)

	subInst, err := reg.New("SubType", cfg.Name, cfg.Age)
	if err != nil {
		return err
	}
	log.Debugf("created %s", vm.Inspect(subInst))

	out := &errWriter{w: w}
	out.printf("subTypeInstance instanceof SuperType: %t\n", vm.IsInstanceOf(subInst, super))
	out.printf("subTypeInstance instanceof SubType: %t\n", vm.IsInstanceOf(subInst, composed))
	out.printf("SubType isPrototypeOf subTypeInstance: %t\n", composed.IsPrototypeOf(subInst))
	if out.err != nil {
		return out.err
	}
	if _, err := vm.Send(subInst, "sayAge"); err != nil {
		return err
	}

	superInst, err := reg.New("SuperType", cfg.Name)
	if err != nil {
		return err
	}
	out.printf("superTypeInstance instanceof SuperType: %t\n", vm.IsInstanceOf(superInst, super))
	out.printf("superTypeInstance instanceof SubType: %t\n", vm.IsInstanceOf(superInst, composed))
	out.printf("SubType isPrototypeOf superTypeInstance: %t\n", composed.IsPrototypeOf(superInst))
	if out.err != nil {
		return out.err
	}

	_, err = vm.Send(superInst, "sayAge")
	if !errors.Is(err, vm.ErrMethodNotFound) {
		if err == nil {
			return fmt.Errorf("superTypeInstance unexpectedly answered sayAge")
		}
		return err
	}
	out.printf("superTypeInstance.sayAge(): %v\n", err)
	return out.err
}

// errWriter keeps the first write error and drops every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
