package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile   Phase = "compile"   // coding-table construction and validation
	PhaseTransform Phase = "transform" // message traversal
)

// Kind categorizes the error
type Kind string

const (
	// KindInvalidArgs covers caller mistakes: an unknown direction, a
	// non-struct root descriptor, or a top-level type the transformer
	// does not accept.
	KindInvalidArgs Kind = "invalid_args"

	// KindBadState covers malformed input: an extensible-sum ordinal with
	// no matching arm, a descriptor node the walker cannot transform, or
	// a source buffer shorter than the traversal requires.
	KindBadState Kind = "bad_state"

	// KindBufferTooSmall means a write would run past the end of the
	// destination buffer.
	KindBufferTooSmall Kind = "buffer_too_small"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of err if it is an *Error, or "" otherwise.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
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

// InvalidArgs creates an invalid-argument error in the transform phase
func InvalidArgs(msg string, args ...any) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindInvalidArgs,
		Detail: fmt.Sprintf(msg, args...),
	}
}

// UnknownOrdinal creates a bad-state error for an extensible-sum tag with
// no matching arm
func UnknownOrdinal(path []string, ordinal uint32) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindBadState,
		Path:   path,
		Detail: fmt.Sprintf("ordinal 0x%08x has no matching arm", ordinal),
	}
}

// UnknownTag creates a bad-state error for a static-sum tag with no
// matching arm
func UnknownTag(path []string, tag uint32, arms int) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindBadState,
		Path:   path,
		Detail: fmt.Sprintf("tag %d out of range (1..%d)", tag, arms),
	}
}

// Untransformable creates a bad-state error for a descriptor node the
// walker cannot transform in place
func Untransformable(path []string, what string) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindBadState,
		Path:   path,
		Detail: what + " cannot be transformed at this position",
	}
}

// SrcTooShort creates a bad-state error for a read past the end of the
// source buffer
func SrcTooShort(offset, size uint32, have int) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindBadState,
		Detail: fmt.Sprintf("read of %d bytes at source offset %d exceeds %d-byte buffer", size, offset, have),
	}
}

// DstTooSmall creates a buffer-too-small error for a write past the end of
// the destination buffer
func DstTooSmall(offset, size uint32, have int) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("write of %d bytes at destination offset %d exceeds %d-byte buffer", size, offset, have),
	}
}

// InvalidTable creates a compile-phase error for a malformed coding table
func InvalidTable(path []string, msg string, args ...any) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindInvalidArgs,
		Path:   path,
		Detail: fmt.Sprintf(msg, args...),
	}
}
