package vm

import (
	"errors"
	"fmt"
)

// ErrMethodNotFound matches every *MethodNotFoundError under errors.Is.
var ErrMethodNotFound = errors.New("method not found")

// ErrMisuse matches every *MisuseError under errors.Is.
var ErrMisuse = errors.New("misuse")

// MethodNotFoundError reports a selector absent from an object's method
// table. It is the doesNotUnderstand: of this core.
type MethodNotFoundError struct {
	ClassName string
	Selector  string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("%s does not understand #%s", e.ClassName, e.Selector)
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}

// MisuseError reports an invalid call into the core: a nil class, a
// descriptor without a constructor, a composition cycle and so on.
type MisuseError struct {
	Op     string
	Reason string
}

func (e *MisuseError) Error() string {
	return e.Op + ": " + e.Reason
}

func (e *MisuseError) Is(target error) bool {
	return target == ErrMisuse
}

func misuse(op, format string, args ...any) error {
	return &MisuseError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
