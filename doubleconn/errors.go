package doubleconn

import "errors"

var (
	// ErrEdgeNotFound indicates an EdgeID that was never issued or was
	// already deleted.
	ErrEdgeNotFound = errors.New("doubleconn: edge not found")
)
