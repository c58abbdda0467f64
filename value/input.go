package value

import (
	"encoding"
	"fmt"
	"io"
	"math"
	"reflect"

	"braces.dev/errtrace"
)

// Kind identifies the case of an [Input].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindObject
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindStream
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindObject:  "object",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindList:    "list",
	KindStream:  "stream",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Input is a tagged native value accepted by wrapper constructors.
//
// The set of implementations is closed: [Null], [Object], [Bool], [Int],
// [Float], [String], [List] and [Stream].
// A nil Input is treated the same as [Null].
type Input interface {
	Kind() Kind
	input()
}

// Null is the absent value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) input() {}

// Object is an opaque value, usually a struct or a pointer.
// Wrappers typically look for [fmt.Stringer] or [encoding.TextMarshaler] on it.
type Object struct {
	V any
}

func (Object) Kind() Kind { return KindObject }

func (Object) input() {}

type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (Bool) input() {}

type Int int64

func (Int) Kind() Kind { return KindInt }

func (Int) input() {}

type Float float64

func (Float) Kind() Kind { return KindFloat }

func (Float) input() {}

type String string

func (String) Kind() Kind { return KindString }

func (String) input() {}

// List is an ordered list of native values.
type List []any

func (List) Kind() Kind { return KindList }

func (List) input() {}

// Stream is a byte stream, consumed at most once by a conversion routine.
type Stream struct {
	R io.Reader
}

func (Stream) Kind() Kind { return KindStream }

func (Stream) input() {}

// KindOf returns the kind of in, nil input is reported as [KindNull].
func KindOf(in Input) Kind {
	if in == nil {
		return KindNull
	}
	return in.Kind()
}

// Of classifies a native Go value into an [Input].
//
// Only the input cases themselves pass through unchanged, types embedding them are
// classified by their Go kind.
// Readers are classified as [Stream] before the object check.
// Values implementing [fmt.Stringer] or [encoding.TextMarshaler], structs, maps and
// pointers become an [Object]; remaining slices and arrays become a [List].
// Channels, functions, complex numbers and unsigned integers that overflow int64
// are rejected with a [*ConversionError].
func Of(v any) (Input, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Null, Object, Bool, Int, Float, String, List, Stream:
		return v.(Input), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []byte:
		return String(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case io.Reader:
		return Stream{R: v}, nil
	case fmt.Stringer, encoding.TextMarshaler:
		return Object{V: v}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt64 {
			return Int(int64(u)), nil
		}
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Struct, reflect.Map, reflect.Pointer, reflect.Interface:
		return Object{V: v}, nil
	case reflect.Slice, reflect.Array:
		list := make(List, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return list, nil
	}
	return nil, errtrace.Wrap(&ConversionError{Kind: KindInvalid, GoType: rv.Type().String(), Target: "value.Input"})
}

// MustOf is like [Of] but panics on error.
func MustOf(v any) Input {
	in, err := Of(v)
	if err != nil {
		panic(err)
	}
	return in
}
