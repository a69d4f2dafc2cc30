package demo

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"

	"github.com/chazu/protolink/event"
	"github.com/chazu/protolink/manifest"
	"github.com/chazu/protolink/vm"
)

var log = commonlog.GetLogger("protolink.demo")

// NewHandlerClass returns the Handler class: a message field and a
// handleClick(event) method that writes "<message>: <event type>" to w.
func NewHandlerClass(w io.Writer) *vm.Class {
	c := vm.NewClass("Handler", []string{"message"}, func(self *vm.Object, args []vm.Value) error {
		self.Set("message", args[0])
		return nil
	})
	// handleClick reads message from whatever context it runs in, so an
	// unbound registration sees the element's message instead.
	c.Define("handleClick", func(self vm.Value, args []vm.Value) (vm.Value, error) {
		obj, ok := self.(*vm.Object)
		if !ok {
			return nil, fmt.Errorf("handleClick: context %T is not an object", self)
		}
		typ := ""
		if ev, ok := vm.ArgAt(args, 0).(event.Event); ok {
			typ = ev.Type
		}
		line := fmt.Sprintf("%v: %s", obj.Get("message"), typ)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, err
		}
		return line, nil
	})
	return c
}

// Binding wires a handler to three buttons of doc and clicks each once:
// one listener bound with vm.Bind, one with vm.BindMethod, and one left
// unbound so it runs with the button as its context.
func Binding(w io.Writer, doc *event.Document, cfg manifest.Binding) error {
	handlerClass := NewHandlerClass(w)
	handler, err := vm.NewInstance(handlerClass, cfg.Message)
	if err != nil {
		return err
	}
	handleClick := handlerClass.Lookup("handleClick")

	btn1 := doc.CreateElement(cfg.Buttons.UserDefined)
	btn1.AddEventListener("click", vm.Bind(handleClick, handler).Callable())

	native, err := vm.BindMethod(handler, "handleClick")
	if err != nil {
		return err
	}
	btn2 := doc.CreateElement(cfg.Buttons.Native)
	btn2.AddEventListener("click", native.Callable())

	btn3 := doc.CreateElement(cfg.Buttons.Unbound)
	btn3.Object().Set("message", cfg.WrongMessage)
	btn3.AddEventListener("click", handleClick)

	for _, id := range []string{btn1.ID(), btn2.ID(), btn3.ID()} {
		log.Debugf("clicking #%s", id)
		if err := doc.Click(id); err != nil {
			return fmt.Errorf("clicking #%s: %w", id, err)
		}
	}
	return nil
}
