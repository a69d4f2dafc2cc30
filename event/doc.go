// Package event provides an in-process event source: a document of
// elements that accept listeners and invoke them later with an event.
//
// Listeners are plain vm.Callables. An element invokes each listener with
// its own backing object as self, so an unbound method sees the element's
// fields while a callable produced by vm.BoundCallable.Callable keeps the
// context it was bound to.
package event
