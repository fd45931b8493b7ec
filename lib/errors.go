package lib

import "fmt"

type ErrorKind int

const (
	// MalformedInput covers everything the validator or parser refuses.
	MalformedInput ErrorKind = iota + 1
	// DivisionByZero is only raised while evaluating a '/' whose right
	// operand is exactly zero.
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case DivisionByZero:
		return "division by zero"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by evaluation. Pos is the zero based
// offset into the space-free expression, or -1 when there is no sensible
// position (e.g. empty input).
type Error struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

var (
	ErrMalformedInput = &Error{Kind: MalformedInput, Pos: -1, Msg: "invalid expression"}
	ErrDivisionByZero = &Error{Kind: DivisionByZero, Pos: -1, Msg: "division by zero"}
)

func (e *Error) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Pos+1, e.Msg)
}

// Is matches any *Error of the same kind so callers can use errors.Is with
// ErrMalformedInput and ErrDivisionByZero.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func malformedf(pos int, msg string, args ...interface{}) *Error {
	return &Error{Kind: MalformedInput, Pos: pos, Msg: fmt.Sprintf(msg, args...)}
}
