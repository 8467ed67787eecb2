package raytrace

import "fmt"

// Kind classifies the failure modes a CORE operation can report.
type Kind int

const (
	// InvalidArgument means a constructor argument violates its own
	// precondition (non-positive size, degenerate triangle, zero normal).
	InvalidArgument Kind = iota
	// OutOfBounds means a position could not be placed inside the tree's
	// addressable volume even after growth, because the growth budget
	// (max_depth) is exhausted.
	OutOfBounds
	// Capacity means a leaf cannot accept another primitive because it is
	// already at max_neighbors and also at max_depth, so it cannot split.
	Capacity
	// Invariant means an internal consistency check failed; it signals a
	// bug in the tree rather than a caller error.
	Invariant
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfBounds:
		return "out of bounds"
	case Capacity:
		return "capacity"
	case Invariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type every CORE operation returns. It carries a
// Kind so callers can branch with errors.Is against the sentinel values
// below without parsing message text.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, raytrace.ErrCapacity) works for sentinel comparisons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons; Msg/Err are ignored by Is.
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrOutOfBounds     = &Error{Kind: OutOfBounds}
	ErrCapacity        = &Error{Kind: Capacity}
	ErrInvariant       = &Error{Kind: Invariant}
)

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}
