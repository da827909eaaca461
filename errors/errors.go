package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInstantiate Phase = "instantiate" // contract initialization
	PhaseExecute     Phase = "execute"     // state-mutating dispatch
	PhaseQuery       Phase = "query"       // read-only dispatch
	PhaseStorage     Phase = "storage"     // persistent store access
	PhaseCodec       Phase = "codec"       // payload encode/decode
	PhaseAddress     Phase = "address"     // address canonicalization
	PhaseRuntime     Phase = "runtime"     // host-facing boundary
)

// Kind categorizes the error
type Kind string

const (
	KindUnauthorized      Kind = "unauthorized"       // signer is not the current owner
	KindNotFound          Kind = "not_found"          // state read before initialization
	KindSerialize         Kind = "serialize"          // encoding a record or response
	KindDeserialize       Kind = "deserialize"        // decoding a record or request
	KindAddressConversion Kind = "address_conversion" // canonical/human mapping
	KindIO                Kind = "io"                 // backend/infrastructure fault
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // record or message type involved, if any
	Key    string // storage key involved, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(" for ")
		b.WriteString(e.Type)
	}

	if e.Key != "" {
		fmt.Fprintf(&b, " at key %q", e.Key)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two errors match when Phase and Kind agree; a zero Phase in the
// target acts as a wildcard so callers can match on Kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the record or message type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Key sets the storage key
func (b *Builder) Key(k string) *Builder {
	b.err.Key = k
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unauthorized creates an authorization failure.
// It carries no signer or owner identity on purpose.
func Unauthorized(phase Phase) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindUnauthorized,
	}
}

// NotFound creates a missing-state error for the given storage key
func NotFound(phase Phase, key string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindNotFound,
		Key:   key,
	}
}

// SerializeFailed creates an encoding error for the named type
func SerializeFailed(phase Phase, typeName string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindSerialize,
		Type:  typeName,
		Cause: cause,
	}
}

// DeserializeFailed creates a decoding error for the named type
func DeserializeFailed(phase Phase, typeName string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindDeserialize,
		Type:  typeName,
		Cause: cause,
	}
}

// ConversionFailed creates an address mapping error
func ConversionFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseAddress,
		Kind:   KindAddressConversion,
		Detail: detail,
		Cause:  cause,
	}
}

// IOFailed creates a backend fault error for the given storage key
func IOFailed(key string, cause error) *Error {
	return &Error{
		Phase: PhaseStorage,
		Kind:  KindIO,
		Key:   key,
		Cause: cause,
	}
}

// Kind matchers. Each walks the error chain for an *Error of the kind.

// IsKind reports whether err carries an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsUnauthorized reports whether err is an authorization failure
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}

// IsNotFound reports whether err is a missing-state failure
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsSerialize reports whether err is an encoding failure
func IsSerialize(err error) bool {
	return IsKind(err, KindSerialize)
}

// IsDeserialize reports whether err is a decoding failure
func IsDeserialize(err error) bool {
	return IsKind(err, KindDeserialize)
}

// IsAddressConversion reports whether err is an address mapping failure
func IsAddressConversion(err error) bool {
	return IsKind(err, KindAddressConversion)
}

// IsIO reports whether err is a backend fault
func IsIO(err error) bool {
	return IsKind(err, KindIO)
}
