package workday

import (
	"errors"
	"fmt"
)

// Kind classifies a calculation failure.
type Kind int

// Failure kinds. The set is closed; callers switch on it exhaustively.
const (
	// KindInternal is any unexpected failure.
	KindInternal Kind = iota
	// KindInvalidInput is a malformed base timestamp.
	KindInvalidInput
	// KindUpstreamUnavailable means the holiday source failed every attempt.
	KindUpstreamUnavailable
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrInternal            = errors.New("internal error")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindUpstreamUnavailable:
		return "UpstreamUnavailable"
	case KindInternal:
		return "InternalError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindUpstreamUnavailable:
		return ErrUpstreamUnavailable
	default:
		return ErrInternal
	}
}

// Error is a tagged calculation failure.
type Error struct {
	Err  error
	Op   string
	Kind Kind
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
