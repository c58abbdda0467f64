package uri_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/gotypes/uri"
	"github.com/ghettovoice/gotypes/value"
)

func TestURL_Tidy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   uri.Segments
		want uri.Segments
	}{
		{"clean", uri.Segments{"a", "b-c", "d_e"}, uri.Segments{"a", "b-c", "d_e"}},
		{"ampersand", uri.Segments{"rock & roll"}, uri.Segments{"rock_and_roll"}},
		{"escaped ampersand", uri.Segments{"rock%20&%20roll"}, uri.Segments{"rock_20and_20roll"}},
		{"spaces", uri.Segments{" hello   world ", "x"}, uri.Segments{"hello_world", "x"}},
		{"specials", uri.Segments{"caf%C3%A9!!", "a..b"}, uri.Segments{"caf_C3_A9_", "a_b"}},
		{"underscores", uri.Segments{"a__b___c", "_ _"}, uri.Segments{"a_b_c", "_"}},
		{"unicode", uri.Segments{"naïve café"}, uri.Segments{"na_ve_caf_"}},
		{"empty", uri.Segments{"", "  "}, uri.Segments{"", ""}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := &uri.URL{Path: c.in.Clone()}
			if got := u.Tidy(); got != u {
				t.Fatalf("u.Tidy() = %p, want the receiver %p", got, u)
			}
			if !u.Path.Equal(c.want) {
				t.Errorf("u.Tidy().Path = %q, want %q", u.Path, c.want)
			}
		})
	}
}

func TestURL_Tidy_PathOnly(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://my.host/a.b?x=a.b#f.g").Tidy()
	if got, want := u.String(), "http://my.host/a_b?x=a.b#f.g"; got != want {
		t.Errorf("u.Tidy().String() = %q, want %q", got, want)
	}
}

func TestURL_Tidy_Decoded(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("/rock%20&%20roll/caf%C3%A9").DecodePath().Tidy()
	if got, want := u.String(), "/rock_and_roll/caf_"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
}

func TestURL_Compare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		opts *uri.CompareOptions
		want int
	}{
		{"equal", "http://ex.com/a", "http://ex.com/a", nil, 0},
		{"query ignored by default", "http://ex.com/a?x=1", "http://ex.com/a?x=2", nil, 0},
		{"query included", "http://ex.com/a?x=1", "http://ex.com/a?x=2", &uri.CompareOptions{IncludeQuery: true}, -1},
		{"case sensitive", "http://EX.com/a", "http://ex.com/a", nil, -1},
		{"case insensitive", "http://EX.com/a?x=1", "http://ex.com/a?x=2", &uri.CompareOptions{IgnoreCase: true}, 0},
		{"decoded paths", "/a%20b", "/a b", nil, 0},
		{"special chars kept", "/rock & roll", "/rock_and_roll", nil, -1},
		{"special chars ignored", "/rock & roll", "/rock_and_roll", &uri.CompareOptions{IgnoreSpecialChars: true}, 0},
		{"greater", "http://ex.com/b", "http://ex.com/a", nil, 1},
		{"fragment counts", "/a#x", "/a#y", nil, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			a, b := uri.MustParse(c.a), uri.MustParse(c.b)
			as, bs := a.String(), b.String()
			if got := a.Compare(b, c.opts); got != c.want {
				t.Errorf("uri.MustParse(%q).Compare(%q, %+v) = %d, want %d", c.a, c.b, c.opts, got, c.want)
			}
			if got := b.Compare(a, c.opts); got != -c.want {
				t.Errorf("uri.MustParse(%q).Compare(%q, %+v) = %d, want %d", c.b, c.a, c.opts, got, -c.want)
			}
			if a.String() != as || b.String() != bs {
				t.Errorf("Compare modified the operands: %q, %q", a, b)
			}
		})
	}
}

func TestURL_CompareTo(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://EX.com/a?x=1")
	got, err := u.CompareTo(value.String("http://ex.com/a?x=2"), &uri.CompareOptions{IgnoreCase: true})
	if err != nil {
		t.Fatalf("u.CompareTo() error = %v, want nil", err)
	}
	if got != 0 {
		t.Errorf("u.CompareTo(\"http://ex.com/a?x=2\", ignore case) = %d, want 0", got)
	}

	got, err = u.CompareTo(value.Object{V: uri.MustParse("http://EX.com/a")}, nil)
	if err != nil || got != 0 {
		t.Errorf("u.CompareTo(url object, nil) = (%d, %v), want (0, nil)", got, err)
	}

	if _, err := u.CompareTo(value.Int(1), nil); !errors.Is(err, value.ErrNotConvertible) {
		t.Errorf("u.CompareTo(1, nil) error = %v, want %v", err, value.ErrNotConvertible)
	}
	if got := (*uri.URL)(nil).Compare(&uri.URL{}, nil); got != 0 {
		t.Errorf("nil.Compare(empty) = %d, want 0", got)
	}
}
