// Package demo runs the two worked scenarios: binding an event handler to
// its object, and composing a subtype over a supertype.
package demo
