package value

import (
	"encoding"
	"fmt"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"
)

// Text is a plain text wrapper.
//
// It accepts objects implementing [fmt.Stringer] or [encoding.TextMarshaler],
// booleans, integers, floats and strings. Lists and streams are not convertible.
type Text struct {
	Holder[string]
}

// NewText converts in into a new [Text].
func NewText(in Input) (*Text, error) {
	var t Text
	if err := Assign(&t, in); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &t, nil
}

// Set replaces the wrapped text with the conversion of in.
func (t *Text) Set(in Input) error { return errtrace.Wrap(Assign(t, in)) }

// Get returns the current text.
func (t *Text) Get() string {
	if t == nil {
		return ""
	}
	return t.Current()
}

func (t *Text) String() string { return t.Get() }

func (t *Text) FromObject(v Object) error {
	switch o := v.V.(type) {
	case fmt.Stringer:
		t.Reset(o.String())
	case encoding.TextMarshaler:
		b, err := o.MarshalText()
		if err != nil {
			return errtrace.Wrap(err)
		}
		t.Reset(string(b))
	default:
		return ErrNotHandled //errtrace:skip
	}
	return nil
}

func (t *Text) FromBool(v Bool) error {
	t.Reset(strconv.FormatBool(bool(v)))
	return nil
}

func (t *Text) FromInt(v Int) error {
	t.Reset(strconv.FormatInt(int64(v), 10))
	return nil
}

func (t *Text) FromFloat(v Float) error {
	t.Reset(strconv.FormatFloat(float64(v), 'g', -1, 64))
	return nil
}

func (t *Text) FromString(v String) error {
	t.Reset(string(v))
	return nil
}

func (t *Text) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}
	return slog.StringValue(t.Get())
}
