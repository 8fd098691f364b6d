package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies rule errors for callers. Validation and Conflict
// errors are recoverable: the action is rejected and game state is left
// untouched. Invariant errors indicate an upstream bug.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindNotFound
	KindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInvariant:
		return "invariant"
	}
	return "unknown"
}

// RuleError is a structured rejection reason returned by action handlers.
type RuleError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Kind, e.Message)
}

// Validationf builds a validation error with a stable code.
func Validationf(code, format string, args ...any) error {
	return &RuleError{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error for actions that are valid in
// isolation but not in the current phase or turn context.
func Conflictf(code, format string, args ...any) error {
	return &RuleError{Kind: KindConflict, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error for unknown players or sessions.
func NotFoundf(code, format string, args ...any) error {
	return &RuleError{Kind: KindNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Invariantf builds an invariant-violation error.
func Invariantf(code, format string, args ...any) error {
	return &RuleError{Kind: KindInvariant, Code: code, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, defaulting to KindInvariant for
// unrecognized errors.
func KindOf(err error) ErrorKind {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInvariant
}

// CodeOf extracts the stable error code from err, or "internal".
func CodeOf(err error) string {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code
	}
	return "internal"
}
