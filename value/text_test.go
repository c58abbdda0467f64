package value_test

import (
	"bytes"
	"errors"
	"net"
	"net/netip"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gotypes/value"
)

type badMarshaler struct{}

func (badMarshaler) MarshalText() ([]byte, error) { return nil, errors.New("marshal failed") }

func TestText_Set(t *testing.T) {
	t.Parallel()

	marshalErr := errors.New("marshal failed")

	cases := []struct {
		name    string
		in      value.Input
		want    string
		wantErr error
	}{
		{"nil", nil, "", nil},
		{"null", value.Null{}, "", nil},
		{"stringer", value.Object{V: net.IPv4(10, 0, 0, 1)}, "10.0.0.1", nil},
		{"text marshaler", value.Object{V: netip.MustParseAddrPort("[::1]:80")}, "[::1]:80", nil},
		{"plain object", value.Object{V: struct{}{}}, "", value.ErrNotConvertible},
		{"failing marshaler", value.Object{V: badMarshaler{}}, "", marshalErr},
		{"true", value.Bool(true), "true", nil},
		{"false", value.Bool(false), "false", nil},
		{"int", value.Int(-12), "-12", nil},
		{"float", value.Float(0.1), "0.1", nil},
		{"float integral", value.Float(3), "3", nil},
		{"string", value.String("qwe"), "qwe", nil},
		{"list", value.List{"a"}, "", value.ErrNotConvertible},
		{"stream", value.Stream{R: bytes.NewReader([]byte("abc"))}, "", value.ErrNotConvertible},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			txt := &value.Text{}
			txt.Reset("previous")
			err := txt.Set(c.in)
			if c.wantErr == marshalErr {
				if err == nil || err.Error() != marshalErr.Error() {
					t.Errorf("txt.Set(in) error = %v, want %v", err, marshalErr)
				}
			} else if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("txt.Set(in) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got := txt.Get(); got != c.want {
				t.Errorf("txt.Get() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestText_StreamNotConvertible(t *testing.T) {
	t.Parallel()

	rd := strings.NewReader("payload")
	txt, err := value.NewText(value.Stream{R: rd})
	if txt != nil {
		t.Errorf("value.NewText(stream) = %v, want nil", txt)
	}
	var convErr *value.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("value.NewText(stream) error = %v, want *value.ConversionError", err)
	}
	if convErr.Kind != value.KindStream || convErr.Target != "value.Text" {
		t.Errorf("conversion error = %+v, want stream into value.Text", convErr)
	}
	if rd.Len() != len("payload") {
		t.Errorf("stream consumed %d bytes, want 0", len("payload")-rd.Len())
	}

	var existing value.Text
	existing.Reset("keep?")
	if err := existing.Set(value.Stream{R: rd}); err == nil {
		t.Fatal("existing.Set(stream) error = nil, want error")
	}
	if got := existing.Get(); got != "" {
		t.Errorf("existing.Get() = %q, want empty", got)
	}
}

func TestText_Original(t *testing.T) {
	t.Parallel()

	txt, err := value.NewText(value.Int(5))
	if err != nil {
		t.Fatalf("value.NewText(5) error = %v, want nil", err)
	}
	txt.Update("changed")
	if got := txt.Original(); got != "5" {
		t.Errorf("txt.Original() = %q, want %q", got, "5")
	}
	if got := txt.String(); got != "changed" {
		t.Errorf("txt.String() = %q, want %q", got, "changed")
	}
	if got := (*value.Text)(nil).Get(); got != "" {
		t.Errorf("(*value.Text)(nil).Get() = %q, want empty", got)
	}
}
