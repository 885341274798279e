package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // bytes to structures
	PhaseValidate Phase = "validate" // cross-structure checks after decode
	PhaseResolve  Phase = "resolve"  // CP to stream offset lookups
	PhaseLoad     Phase = "load"     // stream selection and document assembly
	PhaseConfig   Phase = "config"   // caller configuration
)

// Kind categorizes the error
type Kind string

const (
	KindMagicMismatch  Kind = "magic_mismatch"
	KindOutOfRange     Kind = "out_of_range"
	KindInconsistent   Kind = "inconsistent"
	KindLengthMismatch Kind = "length_mismatch"
	KindInvalidEnum    Kind = "invalid_enum"
	KindTruncated      Kind = "truncated"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindUnsupported    Kind = "unsupported"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Structure string
	Detail    string
	Path      []string
	Offset    int
	HasOffset bool
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

	if e.HasOffset {
		b.WriteString(" (offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteByte(')')
	}

	if e.Structure != "" {
		b.WriteString(": ")
		b.WriteString(e.Structure)
	}

	if e.Detail != "" {
		if e.Structure != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// IsCorrupted reports whether err carries an *Error describing a structural
// violation in the document bytes. Unsupported features, caller misuse
// (KindInvalidInput) and configuration errors are not corruption.
func IsCorrupted(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Phase == PhaseConfig {
		return false
	}
	switch e.Kind {
	case KindUnsupported, KindInvalidInput:
		return false
	}
	return true
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
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

// Structure sets the name of the record being decoded
func (b *Builder) Structure(name string) *Builder {
	b.err.Structure = name
	return b
}

// At sets the stream offset the violation was found at
func (b *Builder) At(offset int) *Builder {
	b.err.Offset = offset
	b.err.HasOffset = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// MagicMismatch creates an error for a fixed "MUST be" constant that does not match
func MagicMismatch(phase Phase, path []string, got, want any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMagicMismatch,
		Path:   path,
		Detail: fmt.Sprintf("got %#x, want %#x", got, want),
		Value:  got,
	}
}

// OutOfRange creates an error for a bounded field outside its legal range
func OutOfRange(phase Phase, path []string, value, lo, hi any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("value %v outside [%v, %v]", value, lo, hi),
		Value:  value,
	}
}

// Inconsistent creates an error for two fields whose values must agree
func Inconsistent(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInconsistent,
		Path:   path,
		Detail: detail,
	}
}

// LengthMismatch creates an error for a self-delimited structure whose
// consumed size disagrees with its declared length
func LengthMismatch(phase Phase, path []string, consumed, declared int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Path:   path,
		Detail: fmt.Sprintf("consumed %d bytes, declared %d", consumed, declared),
		Value:  consumed,
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindInvalidEnum,
		Path:      path,
		Structure: enumType,
		Detail:    fmt.Sprintf("invalid enum value %#x for %s", value, enumType),
		Value:     value,
	}
}

// Truncated creates an error for a read past the end of the buffer
func Truncated(phase Phase, offset, want, have int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTruncated,
		Detail:    fmt.Sprintf("need %d bytes, %d available", want, have),
		Offset:    offset,
		HasOffset: true,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath returns err with prefix prepended to its path when err is an
// *Error; other errors are returned unchanged.
func WithPath(err error, prefix ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), prefix...), e.Path...)
	return &cp
}
