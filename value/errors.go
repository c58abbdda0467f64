package value

import (
	"fmt"

	"github.com/ghettovoice/gotypes/internal/errorutil"
)

const (
	// ErrNotConvertible is matched by every [*ConversionError].
	ErrNotConvertible errorutil.Error = "value not convertible"
	// ErrNotHandled is returned by a conversion routine that declines the input,
	// [Assign] turns it into a [*ConversionError].
	ErrNotHandled errorutil.Error = "value not handled"
)

// ConversionError reports an input whose kind has no conversion routine in the target wrapper.
type ConversionError struct {
	// Kind is the kind of the rejected input.
	Kind Kind
	// GoType is the Go type name of the rejected value, set when the value
	// could not be classified at all (see [Of]).
	GoType string
	// Target is the Go type name of the wrapper.
	Target string
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	src := e.Kind.String()
	if e.GoType != "" {
		src = e.GoType
	}
	return fmt.Sprintf("%s: the value of type %q could not be converted to %q", ErrNotConvertible, src, e.Target)
}

// Is reports whether the target is [ErrNotConvertible].
func (e *ConversionError) Is(target error) bool { return target == ErrNotConvertible }

// Conversion marks the error for [errorutil.IsConversionErr].
func (*ConversionError) Conversion() bool { return true }
