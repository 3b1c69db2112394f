// Package errors defines the coded errors shared by the hypercube packages.
//
// A malformed document or an unresolvable cell aborts the whole run: partial
// output would silently drop cells from the rendered table. Codes let the CLI
// and the HTTP API map failures to exit messages and status codes without
// matching on strings.
//
// Codes fall into three groups. Domain codes (MALFORMED_DOMAIN,
// UNRESOLVED_CELL, NON_CONTIGUOUS_SUBSPACE, DIMENSION_MISMATCH) come from
// pkg/hypercube. INVALID_* codes reject user input outside the core. The
// remaining codes flag missing files and internal failures.
//
//	err := errors.New(errors.ErrCodeUnresolvedCell, "no rule matches %s", coord)
//	if errors.Is(err, errors.ErrCodeUnresolvedCell) {
//	    // suggest a trailing catch-all rule
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidInput, parseErr, "line %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	// Domain
	ErrCodeMalformedDomain       Code = "MALFORMED_DOMAIN"
	ErrCodeUnresolvedCell        Code = "UNRESOLVED_CELL"
	ErrCodeNonContiguousSubspace Code = "NON_CONTIGUOUS_SUBSPACE"
	ErrCodeDimensionMismatch     Code = "DIMENSION_MISMATCH"

	// User input
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStrategy Code = "INVALID_STRATEGY"
	ErrCodeInvalidMerge    Code = "INVALID_MERGE"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Program
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded failure with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error // may be nil
}

// Error formats as "CODE: message[: cause]".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error whose cause is cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for display: coded messages lose their code
// prefix and are joined with their causes, e.g. "doc.tsv: line 4: bad index".
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsDocumentError reports whether err was caused by the input document rather
// than by the program: a bad domain, an unresolvable cell, a dimension
// mismatch or unparseable input.
func IsDocumentError(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedDomain, ErrCodeUnresolvedCell, ErrCodeDimensionMismatch, ErrCodeInvalidInput:
		return true
	}
	return false
}
