package event

import (
	"errors"
	"slices"
	"testing"

	"github.com/chazu/protolink/vm"
)

// ---------------------------------------------------------------------------
// Element tests
// ---------------------------------------------------------------------------

func TestElementObjectCarriesID(t *testing.T) {
	el := NewElement("btn")
	if el.ID() != "btn" {
		t.Errorf("ID = %q, want btn", el.ID())
	}
	if got := el.Object().Get("id"); got != "btn" {
		t.Errorf("object id field = %v, want btn", got)
	}
}

func TestDispatchOrderAndArguments(t *testing.T) {
	el := NewElement("btn")
	var order []string
	var seen Event
	var self vm.Value

	el.AddEventListener("click", func(s vm.Value, args []vm.Value) (vm.Value, error) {
		order = append(order, "first")
		self = s
		seen = args[0].(Event)
		return nil, nil
	})
	el.AddEventListener("click", func(vm.Value, []vm.Value) (vm.Value, error) {
		order = append(order, "second")
		return nil, nil
	})
	el.AddEventListener("keydown", func(vm.Value, []vm.Value) (vm.Value, error) {
		order = append(order, "keydown")
		return nil, nil
	})

	if err := el.Dispatch(Event{Type: "click", Detail: 1}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !slices.Equal(order, []string{"first", "second"}) {
		t.Errorf("order = %v, want [first second]", order)
	}
	if self != el.Object() {
		t.Error("listeners should run with the element's object as self")
	}
	if seen.Type != "click" || seen.Target != el || seen.Detail != 1 {
		t.Errorf("event = %+v, want click targeted at the element", seen)
	}
}

func TestDispatchStopsOnError(t *testing.T) {
	el := NewElement("btn")
	boom := errors.New("boom")
	var after bool

	el.AddEventListener("click", func(vm.Value, []vm.Value) (vm.Value, error) { return nil, boom })
	el.AddEventListener("click", func(vm.Value, []vm.Value) (vm.Value, error) {
		after = true
		return nil, nil
	})

	if err := el.Dispatch(Event{Type: "click"}); err != boom {
		t.Errorf("error = %v, want the listener's own error", err)
	}
	if after {
		t.Error("listeners after a failure should not run")
	}
}

func TestBoundListenerKeepsContext(t *testing.T) {
	el := NewElement("btn")
	el.Object().Set("message", "wrong")
	handler := vm.NewObjectFrom(map[string]vm.Value{"message": "right"})

	var got []vm.Value
	read := func(self vm.Value, args []vm.Value) (vm.Value, error) {
		got = append(got, self.(*vm.Object).Get("message"))
		return nil, nil
	}
	el.AddEventListener("click", vm.Bind(read, handler).Callable())
	el.AddEventListener("click", read)

	if err := el.Dispatch(Event{Type: "click"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !slices.Equal(got, []vm.Value{"right", "wrong"}) {
		t.Errorf("messages = %v, want [right wrong]", got)
	}
}

func TestRemoveEventListeners(t *testing.T) {
	el := NewElement("btn")
	el.AddEventListener("click", func(vm.Value, []vm.Value) (vm.Value, error) { return nil, nil })
	if el.ListenerCount("click") != 1 {
		t.Fatalf("ListenerCount = %d, want 1", el.ListenerCount("click"))
	}
	el.RemoveEventListeners("click")
	if el.ListenerCount("click") != 0 {
		t.Errorf("ListenerCount = %d, want 0", el.ListenerCount("click"))
	}
	if err := el.Dispatch(Event{Type: "click"}); err != nil {
		t.Errorf("Dispatch with no listeners: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Document tests
// ---------------------------------------------------------------------------

func TestDocumentElements(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	if doc.CreateElement("a") != a {
		t.Error("CreateElement should return the existing element")
	}
	doc.CreateElement("b")

	if doc.GetElementByID("a") != a {
		t.Error("GetElementByID should find a")
	}
	if doc.GetElementByID("missing") != nil {
		t.Error("GetElementByID of a missing ID should be nil")
	}
	if got := doc.ElementIDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("ElementIDs = %v, want [a b]", got)
	}
}

func TestDocumentClick(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("btn")
	var typ string
	el.AddEventListener("click", func(_ vm.Value, args []vm.Value) (vm.Value, error) {
		typ = args[0].(Event).Type
		return nil, nil
	})

	if err := doc.Click("btn"); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if typ != "click" {
		t.Errorf("event type = %q, want click", typ)
	}
	if err := doc.Click("missing"); !errors.Is(err, ErrNoElement) {
		t.Errorf("Click(missing) error = %v, want ErrNoElement", err)
	}
}

func TestDocumentDispatchToCustomEvent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("field")
	var got Event
	el.AddEventListener("change", func(_ vm.Value, args []vm.Value) (vm.Value, error) {
		got = args[0].(Event)
		return nil, nil
	})

	if err := doc.DispatchTo("field", Event{Type: "change", Detail: "new value"}); err != nil {
		t.Fatalf("DispatchTo: %v", err)
	}
	if got.Detail != "new value" {
		t.Errorf("Detail = %v, want new value", got.Detail)
	}
	if got.Target != el {
		t.Errorf("Target = %v, want the dispatching element", got.Target)
	}
	if err := doc.DispatchTo("field", Event{Type: "click"}); err != nil {
		t.Errorf("DispatchTo with no listeners = %v, want nil", err)
	}
}

func TestElementSatisfiesSource(t *testing.T) {
	var _ Source = NewElement("x")
}
