// Package value implements polymorphic construction of typed value wrappers.
//
// A wrapper declares which input kinds it understands by implementing the matching
// converter interfaces ([ObjectConverter], [BoolConverter], [IntConverter],
// [FloatConverter], [StringConverter], [ListConverter], [StreamConverter]).
// [Assign] is the single entry point that clears the wrapper, picks the routine
// for the input's kind and reports a [*ConversionError] when there is none.
//
//	var txt value.Text
//	if err := value.Assign(&txt, value.Int(42)); err != nil {
//		return err
//	}
//	txt.Get() // "42"
package value

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"

	"braces.dev/errtrace"
)

// Target is a wrapper that can be reset to its empty state.
// Clear must be idempotent.
type Target interface {
	Clear()
}

type ObjectConverter interface {
	FromObject(v Object) error
}

type BoolConverter interface {
	FromBool(v Bool) error
}

type IntConverter interface {
	FromInt(v Int) error
}

type FloatConverter interface {
	FromFloat(v Float) error
}

type StringConverter interface {
	FromString(v String) error
}

type ListConverter interface {
	FromList(v List) error
}

type StreamConverter interface {
	FromStream(v Stream) error
}

// Assign clears t and converts in into it.
//
// A nil or [Null] input leaves t cleared. Other kinds are matched in the fixed order
// object, bool, int, float, string, list, stream. When t has no routine for the kind,
// or the routine returns [ErrNotHandled], Assign returns a [*ConversionError].
// On any error t is cleared again, so a partially converted value is never observable.
func Assign(t Target, in Input) error {
	t.Clear()
	if err := dispatch(t, in); err != nil {
		t.Clear()
		return errtrace.Wrap(err)
	}
	return nil
}

func dispatch(t Target, in Input) error {
	err := error(ErrNotHandled)
	switch in := in.(type) {
	case nil, Null:
		return nil
	case Object:
		if c, ok := t.(ObjectConverter); ok {
			err = c.FromObject(in)
		}
	case Bool:
		if c, ok := t.(BoolConverter); ok {
			err = c.FromBool(in)
		}
	case Int:
		if c, ok := t.(IntConverter); ok {
			err = c.FromInt(in)
		}
	case Float:
		if c, ok := t.(FloatConverter); ok {
			err = c.FromFloat(in)
		}
	case String:
		if c, ok := t.(StringConverter); ok {
			err = c.FromString(in)
		}
	case List:
		if c, ok := t.(ListConverter); ok {
			err = c.FromList(in)
		}
	case Stream:
		if c, ok := t.(StreamConverter); ok {
			err = c.FromStream(in)
		}
	default:
		return &ConversionError{Kind: KindInvalid, GoType: fmt.Sprintf("%T", in), Target: TypeName(t)} //errtrace:skip
	}

	if errors.Is(err, ErrNotHandled) {
		return &ConversionError{Kind: in.Kind(), Target: TypeName(t)} //errtrace:skip
	}
	return err //errtrace:skip
}

// TypeName returns the Go type name of the wrapper without the pointer mark,
// e.g. "uri.URL" for *uri.URL.
func TypeName(t any) string {
	name := fmt.Sprintf("%T", t)
	if len(name) > 0 && name[0] == '*' {
		return name[1:]
	}
	return name
}

// Holder keeps the original and the current representation of a wrapped value.
// The zero Holder is empty and ready to use.
type Holder[T any] struct {
	original T
	current  T
}

// Original returns the value as it was first normalized.
func (h *Holder[T]) Original() T { return h.original }

// Current returns the working value.
func (h *Holder[T]) Current() T { return h.current }

// Reset sets both the original and the current value.
func (h *Holder[T]) Reset(v T) {
	h.original = v
	h.current = v
}

// Update replaces only the current value.
func (h *Holder[T]) Update(v T) { h.current = v }

// Clear resets both values to the zero value of T.
func (h *Holder[T]) Clear() {
	var zero T
	h.Reset(zero)
}
