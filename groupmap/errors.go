package groupmap

import "errors"

var (
	// ErrElementExists indicates the element is already tracked.
	ErrElementExists = errors.New("groupmap: element already present")
	// ErrElementNotFound indicates an operation referenced an unknown element.
	ErrElementNotFound = errors.New("groupmap: element not found")
	// ErrGroupNotFound indicates a group handle that does not name a live group.
	ErrGroupNotFound = errors.New("groupmap: group not found")
	// ErrInvalidElement indicates an id outside [0, math.MaxUint32].
	ErrInvalidElement = errors.New("groupmap: invalid element id")
)
