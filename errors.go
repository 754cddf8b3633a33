package bitstream

import (
	"errors"
	"fmt"

	"github.com/mewkiz/pkg/errutil"
)

// Kind classifies the failure mode of a bitstream operation, letting callers
// discriminate error cases with Is instead of matching on message text.
type Kind int

// Error kinds, as enumerated in the error handling design.
const (
	// WrongMode indicates a write in READING state, or a read in WRITING
	// state.
	WrongMode Kind = iota + 1
	// Underflow indicates a read requested more bits than remain before L.
	Underflow
	// BadArgument indicates an out-of-range nbits, an invalid codec
	// parameter, a value exceeding 2^W-1, or non-binary text input.
	BadArgument
	// Overflow indicates a value exceeds the maximum representable by a
	// bounded code, such as the last range of a Start-Stop code.
	Overflow
	// UnknownCode indicates a registry lookup for an unrecognized name.
	UnknownCode
	// Corruption indicates a codeword malformed for its declared code,
	// such as a Fibonacci codeword lacking a terminating 11, or an Omega
	// codeword truncated mid-field.
	Corruption
)

func (k Kind) String() string {
	switch k {
	case WrongMode:
		return "wrong mode"
	case Underflow:
		return "underflow"
	case BadArgument:
		return "bad argument"
	case Overflow:
		return "overflow"
	case UnknownCode:
		return "unknown code"
	case Corruption:
		return "corruption"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by every bitstream operation that fails.
// Op names the failing operation, e.g. "BitStream.Write" or "BitStream.GetFib", in
// the "pkg.Func: message" convention the rest of the codec follows.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bitstream: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("bitstream: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// errf constructs an *Error of the given kind, wrapping a formatted message
// through errutil so the error carries the caller's location the way the
// rest of the codec does.
func errf(op string, kind Kind, format string, a ...interface{}) error {
	return &Error{Op: op, Kind: kind, Err: errutil.Err(fmt.Errorf(format, a...))}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
