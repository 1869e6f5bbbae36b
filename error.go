package wikicrawl

import (
	"errors"
	"fmt"
)

// Error codes classify failures for the orchestrator's per-topic state
// machine. Codes decide retry policy: ENOTFOUND and EEMPTY are terminal,
// EAMBIGUOUS gets a one-shot fallback, everything else consumes a retry
// attempt.
const (
	EAMBIGUOUS = "ambiguous"
	EDUPLICATE = "duplicate"
	EEMPTY     = "empty_structure"
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EREJECTED  = "quality_rejected"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Alternatives carries candidate page titles for EAMBIGUOUS errors.
	Alternatives []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wikicrawl error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Ambiguousf returns an EAMBIGUOUS Error carrying alternative titles.
func Ambiguousf(alternatives []string, format string, args ...any) *Error {
	return &Error{
		Code:         EAMBIGUOUS,
		Message:      fmt.Sprintf(format, args...),
		Alternatives: alternatives,
	}
}

// ErrorCode returns the code of err if it is an application error,
// EINTERNAL for any other non-nil error, and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of err if it is an application error,
// a generic message for any other non-nil error, and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorAlternatives returns the alternative titles carried by an
// EAMBIGUOUS error, or nil for any other error.
func ErrorAlternatives(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Alternatives
	}
	return nil
}
