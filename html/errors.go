package html

import "github.com/pkg/errors"

// https://webidl.spec.whatwg.org/#idl-DOMException-error-names
var (
	// ErrTypeMismatch is returned when an infinite number is assigned to
	// valueAsNumber.
	ErrTypeMismatch = errors.New("TypeMismatchError")
	// ErrInvalidState is returned when an operation is not available for the
	// current input type, for example stepping a checkbox.
	ErrInvalidState = errors.New("InvalidStateError")
)
