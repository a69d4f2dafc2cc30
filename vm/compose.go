package vm

// Forwarder splits the arguments given to a composed class's constructor
// into those handed to the superclass and those kept by the subclass.
type Forwarder func(args []Value) (superArgs, ownArgs []Value)

// LeadingArgs forwards the first n arguments to the superclass, padding
// with nil when fewer are supplied, and keeps the rest.
func LeadingArgs(n int) Forwarder {
	if n < 0 {
		n = 0
	}
	return func(args []Value) ([]Value, []Value) {
		superArgs := padArgs(args[:min(n, len(args))], n)
		var own []Value
		if len(args) > n {
			own = append(own, args[n:]...)
		}
		return superArgs, own
	}
}

// ComposeOption configures Compose.
type ComposeOption func(*composeConfig)

type composeConfig struct {
	name    string
	forward Forwarder
}

// WithName names the composed class. The default is the subclass's name.
func WithName(name string) ComposeOption {
	return func(cfg *composeConfig) {
		cfg.name = name
	}
}

// WithForwarder overrides how constructor arguments are split. The default
// is LeadingArgs over the superclass's full parameter list.
func WithForwarder(f Forwarder) ComposeOption {
	return func(cfg *composeConfig) {
		cfg.forward = f
	}
}

// Compose derives a class from sub whose instances delegate to super.
//
// The result's method table is a copy of super's with sub's entries laid
// over it; later changes to either descriptor do not reach it. super is
// recorded as the designated parent for capability queries. No
// constructor runs here: super's construction is deferred to NewInstance
// and runs once per instance.
//
// sub must be a base class (single inheritance only) and both classes
// must carry construction logic.
func Compose(sub, super *Class, opts ...ComposeOption) (*Class, error) {
	switch {
	case sub == nil || super == nil:
		return nil, misuse("compose", "nil class")
	case sub.Init == nil:
		return nil, misuse("compose", "class %s has no construction procedure", sub.Name)
	case super.Init == nil:
		return nil, misuse("compose", "class %s has no construction procedure", super.Name)
	case sub == super:
		return nil, misuse("compose", "class %s cannot extend itself", sub.Name)
	case sub.superclass != nil:
		return nil, misuse("compose", "class %s already extends %s", sub.Name, sub.superclass.Name)
	case super.IsSubclassOf(sub):
		return nil, misuse("compose", "class %s already derives from %s", super.Name, sub.Name)
	}

	cfg := composeConfig{name: sub.Name}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.forward == nil {
		cfg.forward = LeadingArgs(len(super.AllParams()))
	}

	methods := super.methods.Clone()
	methods.Overlay(sub.methods)

	return &Class{
		Name:       cfg.name,
		Params:     append([]string(nil), sub.Params...),
		Init:       sub.Init,
		superclass: super,
		origin:     sub,
		methods:    methods,
		forward:    cfg.forward,
	}, nil
}
