// Package types defines the public contract for geoh5kit: identifiers,
// primitive enums, options structs, and the typed error vocabulary shared
// by every other package. It has no dependency beyond the standard
// library and github.com/google/uuid.
package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than
// message text.
type ErrKind int

const (
	ErrKindClosed             ErrKind = iota // operation attempted on a closed workspace
	ErrKindReadOnly                          // write attempted under a read-only mode
	ErrKindNotFound                          // uid/name absent
	ErrKindTypeMismatch                      // entity type does not match the requested concrete class
	ErrKindValidation                        // caller-supplied value violates a structural constraint
	ErrKindAggregateValidation               // multiple parameter errors reported together
	ErrKindCorrupt                           // on-disk record missing a required field
	ErrKindRepackFailed                      // external h5repack invocation failed
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindClosed:
		return "Closed"
	case ErrKindReadOnly:
		return "ReadOnly"
	case ErrKindNotFound:
		return "NotFound"
	case ErrKindTypeMismatch:
		return "TypeMismatch"
	case ErrKindValidation:
		return "Validation"
	case ErrKindAggregateValidation:
		return "AggregateValidation"
	case ErrKindCorrupt:
		return "Corrupt"
	case ErrKindRepackFailed:
		return "RepackFailed"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error carrying the entity uid or parameter name it
// pertains to, per the error handling design (spec §7). Every error
// surfaced by this module is an *Error, so callers can type-assert or
// use errors.As.
type Error struct {
	Kind ErrKind
	// Subject is the uid string, attribute name, or parameter name the
	// error pertains to. May be empty for errors with no single subject.
	Subject string
	Msg     string
	Err     error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Subject != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Subject)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels for the common cases named in spec §7. Constructors below
// (NotFound, Validation, ...) attach a Subject to a fresh copy.
var (
	ErrClosed              = &Error{Kind: ErrKindClosed, Msg: "workspace is closed"}
	ErrReadOnly            = &Error{Kind: ErrKindReadOnly, Msg: "workspace is read-only"}
	ErrNotFound            = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	ErrTypeMismatch        = &Error{Kind: ErrKindTypeMismatch, Msg: "entity type mismatch"}
	ErrValidation          = &Error{Kind: ErrKindValidation, Msg: "validation failed"}
	ErrAggregateValidation = &Error{Kind: ErrKindAggregateValidation, Msg: "multiple validation errors"}
	ErrCorrupt             = &Error{Kind: ErrKindCorrupt, Msg: "corrupt on-disk record"}
	ErrRepackFailed        = &Error{Kind: ErrKindRepackFailed, Msg: "repack failed"}
)

// NotFound returns an ErrKindNotFound error about subject.
func NotFound(subject string) *Error {
	return &Error{Kind: ErrKindNotFound, Subject: subject, Msg: "not found"}
}

// TypeMismatch returns an ErrKindTypeMismatch error about subject.
func TypeMismatch(subject, msg string) *Error {
	return &Error{Kind: ErrKindTypeMismatch, Subject: subject, Msg: msg}
}

// Validation returns an ErrKindValidation error about subject.
func Validation(subject, msg string) *Error {
	return &Error{Kind: ErrKindValidation, Subject: subject, Msg: msg}
}

// Corrupt returns an ErrKindCorrupt error about subject, wrapping cause.
func Corrupt(subject, msg string, cause error) *Error {
	return &Error{Kind: ErrKindCorrupt, Subject: subject, Msg: msg, Err: cause}
}

// AggregateValidation bundles multiple field-level Validation errors into
// a single error, per spec §7.
type AggregateValidation struct {
	Errors []*Error
}

func (a *AggregateValidation) Error() string {
	if len(a.Errors) == 0 {
		return "multiple validation errors"
	}
	msg := fmt.Sprintf("%d validation errors: %s", len(a.Errors), a.Errors[0].Error())
	for _, e := range a.Errors[1:] {
		msg += "; " + e.Error()
	}
	return msg
}

func (a *AggregateValidation) Unwrap() []error {
	errs := make([]error, len(a.Errors))
	for i, e := range a.Errors {
		errs[i] = e
	}
	return errs
}
