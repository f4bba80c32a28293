package dom

import "errors"

var (
	// ErrNilNode is returned when a nil node or selection is wrapped.
	ErrNilNode = errors.New("dom: nil node")
	// ErrNotElement is returned when the wrapped node is not an element.
	ErrNotElement = errors.New("dom: node is not an element")
	// ErrNotFound is returned when no element matches the requested tag or selector.
	ErrNotFound = errors.New("dom: element not found")
)
