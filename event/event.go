package event

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/chazu/protolink/vm"
)

var log = commonlog.GetLogger("protolink.event")

// ErrNoElement is returned when an element ID is not in the document.
var ErrNoElement = errors.New("no such element")

// Event is handed to every listener as its single argument.
type Event struct {
	Type   string
	Target *Element
	Detail vm.Value
}

// Source accepts listeners for named event types.
type Source interface {
	AddEventListener(typ string, fn vm.Callable)
}

// ---------------------------------------------------------------------------
// Element
// ---------------------------------------------------------------------------

// Element is an event target backed by an object, so it can carry fields
// of its own.
type Element struct {
	id        string
	obj       *vm.Object
	mu        sync.RWMutex
	listeners map[string][]vm.Callable
}

// NewElement creates a detached element.
func NewElement(id string) *Element {
	obj := vm.NewObject()
	obj.Set("id", id)
	return &Element{
		id:        id,
		obj:       obj,
		listeners: make(map[string][]vm.Callable),
	}
}

// ID returns the element's identifier.
func (e *Element) ID() string {
	return e.id
}

// Object returns the object listeners see as self.
func (e *Element) Object() *vm.Object {
	return e.obj
}

// AddEventListener appends fn to the listeners for typ.
func (e *Element) AddEventListener(typ string, fn vm.Callable) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[typ] = append(e.listeners[typ], fn)
}

// RemoveEventListeners drops every listener for typ.
func (e *Element) RemoveEventListeners(typ string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, typ)
}

// ListenerCount returns the number of listeners registered for typ.
func (e *Element) ListenerCount(typ string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[typ])
}

// Dispatch invokes the listeners for ev.Type in registration order with
// the element's object as self and ev as the only argument. The first
// listener error stops dispatch and is returned unchanged.
func (e *Element) Dispatch(ev Event) error {
	ev.Target = e

	e.mu.RLock()
	listeners := append([]vm.Callable(nil), e.listeners[ev.Type]...)
	e.mu.RUnlock()

	log.Debugf("dispatching %s to %d listener(s) on #%s", ev.Type, len(listeners), e.id)
	for _, fn := range listeners {
		if _, err := fn(e.obj, []vm.Value{ev}); err != nil {
			log.Debugf("listener for %s on #%s failed: %v", ev.Type, e.id, err)
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// Document holds elements by ID.
type Document struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		elements: make(map[string]*Element),
	}
}

// CreateElement adds an element with the given ID, or returns the
// existing one.
func (d *Document) CreateElement(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.elements[id]; ok {
		return el
	}
	el := NewElement(id)
	d.elements[id] = el
	return el
}

// GetElementByID returns the element with the given ID, or nil.
func (d *Document) GetElementByID(id string) *Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[id]
}

// ElementIDs returns the IDs of all elements, sorted.
func (d *Document) ElementIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.elements))
	for id := range d.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DispatchTo sends ev to the element with the given ID.
func (d *Document) DispatchTo(id string, ev Event) error {
	el := d.GetElementByID(id)
	if el == nil {
		return fmt.Errorf("event: %w: #%s", ErrNoElement, id)
	}
	return el.Dispatch(ev)
}

// Click dispatches a "click" event to the element with the given ID.
func (d *Document) Click(id string) error {
	return d.DispatchTo(id, Event{Type: "click"})
}
