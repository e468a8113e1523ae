package phpserde

import (
	"errors"
	"fmt"
)

// The error kinds reported by the decoder. Every failure returned from
// [Parse] wraps exactly one of these sentinels; match with [errors.Is].
var (
	// ErrUnknownType reports a type tag outside the recognized set.
	ErrUnknownType = errors.New("unknown type tag")

	// ErrMissingDelimiter reports that an expected ':' or ';' delimiter is
	// absent within the remaining input.
	ErrMissingDelimiter = errors.New("missing delimiter")

	// ErrUnexpectedEnd reports that a required position lies beyond the end
	// of the input.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrStringTooLong reports a declared string byte length that exceeds
	// the available input.
	ErrStringTooLong = errors.New("string length exceeds input")

	// ErrStringTooShort reports a string whose mandatory trailing `";` is
	// missing after its declared content.
	ErrStringTooShort = errors.New("unterminated string")

	// ErrMissingCloser reports a container whose pairs are not followed by
	// the closing '}'.
	ErrMissingCloser = errors.New("missing closing brace")

	// ErrOutOfRangeReference reports a back-reference index outside the
	// table of values produced so far.
	ErrOutOfRangeReference = errors.New("reference index out of range")

	// ErrBadLiteral reports a payload that does not parse as the literal
	// its type tag demands, e.g. a non-numeric integer body or a boolean
	// body other than 0 or 1.
	ErrBadLiteral = errors.New("malformed literal")
)

// DecodeError is the error type returned by [Parse]. It pins the failure to
// the input offset at which it was detected and unwraps to one of the kind
// sentinels above (and, for literal failures, to the underlying strconv
// error). The first structural violation aborts the whole parse; there is no
// partial result and no recovery.
type DecodeError struct {
	// Offset is the byte offset into the input at which the error was
	// detected.
	Offset int

	msg   string
	kind  error
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.msg, e.Offset)
}

func (e *DecodeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func errAt(offset int, kind error, format string, args ...any) *DecodeError {
	return &DecodeError{
		Offset: offset,
		msg:    fmt.Sprintf(format, args...),
		kind:   kind,
	}
}

func errLiteral(offset int, cause error, format string, args ...any) *DecodeError {
	return &DecodeError{
		Offset: offset,
		msg:    fmt.Sprintf(format, args...),
		kind:   ErrBadLiteral,
		cause:  cause,
	}
}
