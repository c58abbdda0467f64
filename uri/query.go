package uri

import (
	"encoding"
	"errors"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gotypes/value"
)

// GetParameter returns the decoded value of the query parameter k and whether it is present.
func (u *URL) GetParameter(k string) (string, bool) {
	if u == nil {
		return "", false
	}
	return u.Query.Get(k)
}

// SetParameter stores v under the query parameter k.
// New keys are serialized after the existing ones.
func (u *URL) SetParameter(k, v string) { u.Query.Set(k, v) }

// HasParameter reports whether the query parameter k is present.
func (u *URL) HasParameter(k string) bool { return u != nil && u.Query.Has(k) }

// RemoveParameter removes the query parameter k and reports whether it was present.
func (u *URL) RemoveParameter(k string) bool { return u != nil && u.Query.Del(k) }

// SetParameterValue stores an arbitrary Go value under the query parameter k.
//
// Nil is stored as an empty string, booleans as "true" or "false",
// numbers, strings and values implementing [fmt.Stringer] or [encoding.TextMarshaler] as text.
// Lists, maps and structs are encoded with the URL's [ParamCodec].
// On error the URL is not modified.
func (u *URL) SetParameterValue(k string, v any) error {
	in, err := value.Of(v)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var txt value.Text
	err = value.Assign(&txt, in)
	switch {
	case err == nil:
		u.Query.Set(k, txt.Get())
		return nil
	case errors.Is(err, value.ErrNotConvertible) && (in.Kind() == value.KindList || in.Kind() == value.KindObject):
		s, err := u.paramCodec().Encode(v)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.Query.Set(k, s)
		return nil
	default:
		return errtrace.Wrap(err)
	}
}

// DecodeParameter decodes the query parameter k into dst and reports whether it is present.
//
// A *string receives the raw value, an [encoding.TextUnmarshaler] decodes it itself,
// anything else is decoded with the URL's [ParamCodec].
func (u *URL) DecodeParameter(k string, dst any) (bool, error) {
	s, ok := u.GetParameter(k)
	if !ok {
		return false, nil
	}

	switch d := dst.(type) {
	case *string:
		*d = s
	case encoding.TextUnmarshaler:
		if err := d.UnmarshalText([]byte(s)); err != nil {
			return true, errtrace.Wrap(err)
		}
	default:
		if err := u.paramCodec().Decode(s, dst); err != nil {
			return true, errtrace.Wrap(err)
		}
	}
	return true, nil
}

func (u *URL) paramCodec() ParamCodec {
	if u.codec == nil {
		return defParamCodec
	}
	return u.codec
}
