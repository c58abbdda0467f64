package uri_test

import (
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gotypes/uri"
	"github.com/ghettovoice/gotypes/value"
)

func TestURL_Parameters(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com/path?foo=bar")
	if got, ok := u.GetParameter("foo"); !ok || got != "bar" {
		t.Errorf("u.GetParameter(\"foo\") = (%q, %v), want (\"bar\", true)", got, ok)
	}
	if got, ok := u.GetParameter("missing"); ok || got != "" {
		t.Errorf("u.GetParameter(\"missing\") = (%q, %v), want (\"\", false)", got, ok)
	}

	u.SetParameter("bar", "baz")
	if got := u.String(); !strings.Contains(got, "foo=bar&bar=baz") {
		t.Errorf("u.String() = %q, want it to contain %q", got, "foo=bar&bar=baz")
	}

	u.SetParameter("foo", "qux")
	if got, want := u.String(), "http://example.com/path?foo=qux&bar=baz"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}

	if !u.HasParameter("bar") {
		t.Error("u.HasParameter(\"bar\") = false, want true")
	}
	if !u.RemoveParameter("bar") {
		t.Error("u.RemoveParameter(\"bar\") = false, want true")
	}
	if u.RemoveParameter("bar") {
		t.Error("u.RemoveParameter(\"bar\") = true, want false on second call")
	}
	if u.HasParameter("bar") {
		t.Error("u.HasParameter(\"bar\") = true, want false")
	}
	u.RemoveParameter("foo")
	if got, want := u.String(), "http://example.com/path"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	p := uri.NewParams("b", "2", "a", "1", "c")
	if diff := cmp.Diff(p.Keys(), []string{"b", "a", "c"}); diff != "" {
		t.Errorf("p.Keys() = %q, want insertion order\ndiff (-got +want):\n%v", p.Keys(), diff)
	}
	if diff := cmp.Diff(p.Map(), map[string]string{"a": "1", "b": "2", "c": ""}); diff != "" {
		t.Errorf("p.Map() mismatch\ndiff (-got +want):\n%v", diff)
	}

	var got []string
	for k, v := range p.All() {
		got = append(got, k+"="+v)
		if k == "a" {
			break
		}
	}
	if diff := cmp.Diff(got, []string{"b=2", "a=1"}); diff != "" {
		t.Errorf("p.All() = %q, want early stop\ndiff (-got +want):\n%v", got, diff)
	}

	c := p.Clone()
	c.Set("d", "4")
	if p.Has("d") {
		t.Error("p.Has(\"d\") = true after mutating the clone")
	}
	if p.Equal(&c) || !p.Equal(uri.NewParams("b", "2", "a", "1", "c", "")) {
		t.Error("p.Equal() reports wrong result")
	}

	if got, want := p.Encode(), "b=2&a=1&c="; got != want {
		t.Errorf("p.Encode() = %q, want %q", got, want)
	}

	p.Clear()
	if p.Len() != 0 || p.Encode() != "" {
		t.Errorf("p after Clear = %q, want empty", p.Encode())
	}

	var zero uri.Params
	if _, ok := zero.Get("x"); ok {
		t.Error("zero.Get(\"x\") reports present")
	}
	if zero.Del("x") {
		t.Error("zero.Del(\"x\") = true, want false")
	}
}

type point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func TestURL_SetParameterValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    *uri.Options
		val     any
		want    string
		wantErr error
	}{
		{"nil", nil, nil, "", nil},
		{"true", nil, true, "true", nil},
		{"false", nil, false, "false", nil},
		{"int", nil, 42, "42", nil},
		{"float", nil, 2.5, "2.5", nil},
		{"string", nil, "a b", "a b", nil},
		{"stringer", nil, net.IPv4(10, 0, 0, 1), "10.0.0.1", nil},
		{"json list", nil, []string{"a", "b"}, `["a","b"]`, nil},
		{"json map", nil, map[string]int{"a": 1}, `{"a":1}`, nil},
		{"json struct", nil, point{1, 2}, `{"x":1,"y":2}`, nil},
		{"yaml list", &uri.Options{ParamCodec: uri.YAMLCodec{Flow: true}}, []string{"a", "b"}, "[a, b]", nil},
		{"yaml struct", &uri.Options{ParamCodec: uri.YAMLCodec{Flow: true}}, point{1, 2}, "{x: 1, y: 2}", nil},
		{"yaml block", &uri.Options{ParamCodec: uri.YAMLCodec{}}, []int{1, 2}, "- 1\n- 2", nil},
		{"stream", nil, strings.NewReader("x"), "", value.ErrNotConvertible},
		{"unsupported", nil, make(chan int), "", value.ErrNotConvertible},
		{"codec failure", nil, []any{make(chan int)}, "", errors.New("json")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.ParseWithOptions("http://ex.com/?keep=1", c.opts)
			if err != nil {
				t.Fatalf("uri.ParseWithOptions() error = %v, want nil", err)
			}
			err = u.SetParameterValue("k", c.val)
			switch {
			case c.wantErr == nil:
				if err != nil {
					t.Fatalf("u.SetParameterValue(\"k\", %v) error = %v, want nil", c.val, err)
				}
			case errors.Is(c.wantErr, value.ErrNotConvertible):
				if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Fatalf("u.SetParameterValue(\"k\", %v) error = %v, want %v\ndiff (-got +want):\n%v", c.val, err, c.wantErr, diff)
				}
			default:
				if err == nil {
					t.Fatalf("u.SetParameterValue(\"k\", %v) error = nil, want error", c.val)
				}
			}

			got, ok := u.GetParameter("k")
			if c.wantErr != nil {
				if ok {
					t.Errorf("u.GetParameter(\"k\") = (%q, true), want absent after failure", got)
				}
				if u.String() != "http://ex.com/?keep=1" {
					t.Errorf("u.String() = %q, want untouched URL", u.String())
				}
				return
			}
			if !ok || got != c.want {
				t.Errorf("u.GetParameter(\"k\") = (%q, %v), want (%q, true)", got, ok, c.want)
			}
		})
	}
}

func TestURL_DecodeParameter(t *testing.T) {
	t.Parallel()

	for _, codec := range []uri.ParamCodec{uri.JSONCodec{}, uri.YAMLCodec{}, uri.YAMLCodec{Flow: true}} {
		u, _ := uri.ParseWithOptions("http://ex.com/", &uri.Options{ParamCodec: codec})
		for k, v := range map[string]any{
			"list":  []string{"a", "b c"},
			"point": point{3, 4},
			"flag":  true,
			"num":   7,
			"ip":    net.IPv4(1, 2, 3, 4),
			"text":  "plain",
		} {
			if err := u.SetParameterValue(k, v); err != nil {
				t.Fatalf("u.SetParameterValue(%q, %v) error = %v, want nil", k, v, err)
			}
		}

		// survive a serialization round trip
		u, err := uri.ParseWithOptions(u.String(), &uri.Options{ParamCodec: codec})
		if err != nil {
			t.Fatalf("uri.ParseWithOptions(%q) error = %v, want nil", u, err)
		}

		var (
			list  []string
			pt    point
			flag  bool
			num   int
			ip    net.IP
			text  string
			empty string
		)
		for k, dst := range map[string]any{"list": &list, "point": &pt, "flag": &flag, "num": &num, "ip": &ip, "text": &text} {
			ok, err := u.DecodeParameter(k, dst)
			if !ok || err != nil {
				t.Fatalf("%T: u.DecodeParameter(%q) = (%v, %v), want (true, nil)", codec, k, ok, err)
			}
		}
		if diff := cmp.Diff(list, []string{"a", "b c"}); diff != "" {
			t.Errorf("%T: decoded list mismatch\ndiff (-got +want):\n%v", codec, diff)
		}
		if pt != (point{3, 4}) || !flag || num != 7 || text != "plain" || !ip.Equal(net.IPv4(1, 2, 3, 4)) {
			t.Errorf("%T: decoded values = %v %v %v %q %v", codec, pt, flag, num, text, ip)
		}

		if ok, err := u.DecodeParameter("missing", &empty); ok || err != nil {
			t.Errorf("%T: u.DecodeParameter(\"missing\") = (%v, %v), want (false, nil)", codec, ok, err)
		}
		if ok, err := u.DecodeParameter("text", &num); !ok || err == nil {
			t.Errorf("%T: u.DecodeParameter(\"text\", &int) = (%v, %v), want (true, error)", codec, ok, err)
		}
	}
}

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	p := uri.NewParams("q", "a b&c", "k=", "50%", "empty", "")
	want := "q=a+b%26c&k%3D=50%25&empty="
	if got := p.Encode(); got != want {
		t.Errorf("p.Encode() = %q, want %q", got, want)
	}

	var sb strings.Builder
	n, err := p.RenderTo(&sb)
	if err != nil {
		t.Fatalf("p.RenderTo(sb) error = %v, want nil", err)
	}
	if got := sb.String(); got != want || n != len(want) {
		t.Errorf("p.RenderTo(sb) = %q (%d), want %q (%d)", got, n, want, len(want))
	}
	if got := p.String(); got != want {
		t.Errorf("p.String() = %q, want %q", got, want)
	}
}
