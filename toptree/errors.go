package toptree

import (
	"errors"
	"fmt"
)

// Sentinel errors for top tree operations.
var (
	// ErrVertexNotFound indicates a vertex index outside the forest.
	ErrVertexNotFound = errors.New("toptree: vertex not found")

	// ErrSelfLoop indicates Link(v, v).
	ErrSelfLoop = errors.New("toptree: self-loop not allowed")

	// ErrAlreadyConnected indicates Link between vertices of one component.
	ErrAlreadyConnected = errors.New("toptree: vertices already connected")

	// ErrNoSuchEdge indicates Cut of vertices not joined by an edge.
	ErrNoSuchEdge = errors.New("toptree: no such edge")

	// ErrSameVertex indicates Expose(v, v).
	ErrSameVertex = errors.New("toptree: cannot expose a single vertex")

	// ErrDisconnected indicates Expose across different components.
	ErrDisconnected = errors.New("toptree: vertices are not connected")

	// ErrNotSplittable indicates SplitRoot on a cluster that is not a
	// composite produced by Expose.
	ErrNotSplittable = errors.New("toptree: cluster is not an exposed composite")

	// ErrInvariant classifies every InvariantError.
	ErrInvariant = errors.New("toptree: invariant violated")
)

// InvariantError reports structural corruption. The tree never returns it
// from an operation; it is raised with panic because continuing would
// corrupt every later operation. Check returns it as a plain error.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("toptree: %s: %s", e.Op, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvariant) match.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

func invariant(op, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
