package uri

import (
	"fmt"

	"github.com/ghettovoice/gotypes/internal/errorutil"
)

const (
	// ErrMalformedInput is matched by every [*ParseError].
	ErrMalformedInput errorutil.Error = "malformed input"
	// ErrInvalidURL is returned by [URL.Validate].
	ErrInvalidURL errorutil.Error = "invalid URL"
)

// ParseError reports input that cannot be split into URL components.
type ParseError struct {
	Input string
	Err   error
}

func newParseError(input string, err error) error {
	return &ParseError{Input: input, Err: err} //errtrace:skip
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrMalformedInput, e.Input)
	}
	return fmt.Sprintf("%s: %q: %v", ErrMalformedInput, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether the target is [ErrMalformedInput].
func (e *ParseError) Is(target error) bool { return target == ErrMalformedInput }

// Grammar marks the error for [errorutil.IsGrammarErr].
func (*ParseError) Grammar() bool { return true }
