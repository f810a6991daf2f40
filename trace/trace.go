package trace

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/setnicka/top-trees/toptree"
)

// Operation kinds.
const (
	OpLink      = "link"
	OpCut       = "cut"
	OpExpose    = "expose"
	OpConnected = "connected"
)

var (
	// ErrInvalidTrace indicates a trace that cannot be replayed.
	ErrInvalidTrace = errors.New("trace: invalid trace")

	// ErrMismatch classifies every MismatchError.
	ErrMismatch = errors.New("trace: mismatch")
)

// errorNames maps the err field of an op to the sentinel it expects.
var errorNames = map[string]error{
	"vertex_not_found":  toptree.ErrVertexNotFound,
	"self_loop":         toptree.ErrSelfLoop,
	"already_connected": toptree.ErrAlreadyConnected,
	"no_such_edge":      toptree.ErrNoSuchEdge,
	"same_vertex":       toptree.ErrSameVertex,
	"disconnected":      toptree.ErrDisconnected,
}

// Op is one traced operation.
type Op struct {
	Op      string `yaml:"op"`
	U       int    `yaml:"u"`
	V       int    `yaml:"v"`
	Payload int64  `yaml:"payload,omitempty"`
	Want    any    `yaml:"want,omitempty"`
	Err     string `yaml:"err,omitempty"`
}

// Trace is a replayable operation log.
type Trace struct {
	Vertices int  `yaml:"vertices"`
	Ops      []Op `yaml:"ops"`
}

// MismatchError reports the first operation whose outcome differs from
// the trace.
type MismatchError struct {
	Index int
	Op    Op
	Got   any
	Want  any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("trace: op %d (%s %d-%d): got %v, want %v",
		e.Index, e.Op.Op, e.Op.U, e.Op.V, e.Got, e.Want)
}

// Unwrap lets errors.Is(err, ErrMismatch) match.
func (e *MismatchError) Unwrap() error { return ErrMismatch }

// Load decodes and validates a trace. Unknown fields are rejected.
func Load(r io.Reader) (*Trace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var tr Trace
	if err := dec.Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrace, err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Save encodes tr as YAML.
func Save(w io.Writer, tr *Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return fmt.Errorf("trace: encode: %w", err)
	}
	return enc.Close()
}

// Validate checks op kinds, expected values and error names.
func (tr *Trace) Validate() error {
	if tr.Vertices < 0 {
		return fmt.Errorf("%w: %d vertices", ErrInvalidTrace, tr.Vertices)
	}
	for i, op := range tr.Ops {
		if op.Err != "" {
			if _, ok := errorNames[op.Err]; !ok {
				return fmt.Errorf("%w: op %d: unknown error %q", ErrInvalidTrace, i, op.Err)
			}
		}
		switch op.Op {
		case OpLink:
			if op.Want != nil {
				return fmt.Errorf("%w: op %d: link has no result to expect, got %v", ErrInvalidTrace, i, op.Want)
			}
		case OpCut, OpExpose:
			if _, ok := asInt(op.Want); op.Want != nil && !ok {
				return fmt.Errorf("%w: op %d: %s expects an integer, got %v", ErrInvalidTrace, i, op.Op, op.Want)
			}
		case OpConnected:
			if _, ok := op.Want.(bool); op.Want != nil && !ok {
				return fmt.Errorf("%w: op %d: connected expects a boolean, got %v", ErrInvalidTrace, i, op.Want)
			}
		default:
			return fmt.Errorf("%w: op %d: unknown op %q", ErrInvalidTrace, i, op.Op)
		}
	}
	return nil
}

// NewTree creates an empty forest sized for tr.
func NewTree(tr *Trace, opts ...toptree.Option) *toptree.Tree[int64, Sum] {
	return toptree.New(tr.Vertices, SumFuncs(), opts...)
}

// Replay applies the operations of tr to tree in order and returns the
// first *MismatchError, or nil when every outcome matches.
func Replay(tree *toptree.Tree[int64, Sum], tr *Trace) error {
	for i, op := range tr.Ops {
		got, err := apply(tree, op)
		if op.Err != "" {
			if want := errorNames[op.Err]; !errors.Is(err, want) {
				return &MismatchError{Index: i, Op: op, Got: err, Want: want}
			}
			continue
		}
		if err != nil {
			return &MismatchError{Index: i, Op: op, Got: err, Want: op.Want}
		}
		if op.Want != nil && !equal(got, op.Want) {
			return &MismatchError{Index: i, Op: op, Got: got, Want: op.Want}
		}
	}
	return nil
}

func apply(tree *toptree.Tree[int64, Sum], op Op) (any, error) {
	switch op.Op {
	case OpLink:
		_, err := tree.Link(op.U, op.V, op.Payload)
		return nil, err
	case OpCut:
		_, _, w, err := tree.Cut(op.U, op.V)
		return w, err
	case OpExpose:
		c, err := tree.Expose(op.U, op.V)
		if err != nil {
			return nil, err
		}
		return c.Data().Path, nil
	case OpConnected:
		return tree.InSameComponent(op.U, op.V)
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidTrace, op.Op)
}

func equal(got, want any) bool {
	if w, ok := asInt(want); ok {
		g, ok := got.(int64)
		return ok && g == w
	}
	return got == want
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	}
	return 0, false
}
