package stringutils_test

import (
	"regexp"
	"testing"

	"github.com/ghettovoice/gotypes/internal/stringutils"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"no space", "abc", "abc"},
		{"both sides", " \t abc \r\n", "abc"},
		{"inner space kept", "  a b  ", "a b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := stringutils.Trim(c.in); got != c.want {
				t.Errorf("stringutils.Trim(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	if got, want := stringutils.Replace("fish & chips & peas", "&", "and"), "fish and chips and peas"; got != want {
		t.Errorf("stringutils.Replace() = %q, want %q", got, want)
	}
	if got, want := stringutils.Replace("abc", "x", "y"), "abc"; got != want {
		t.Errorf("stringutils.Replace() = %q, want %q", got, want)
	}
}

func TestReplacePattern(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`[0-9]+`)
	if got, want := stringutils.ReplacePattern("a1b22c333", re, "#"), "a#b#c#"; got != want {
		t.Errorf("stringutils.ReplacePattern() = %q, want %q", got, want)
	}

	type label string
	if got, want := stringutils.ReplacePattern(label("x-9"), re, "$0$0"), label("x-99"); got != want {
		t.Errorf("stringutils.ReplacePattern() = %q, want %q", got, want)
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	fn := stringutils.Chain(
		stringutils.TrimStep(),
		stringutils.ReplaceStep("&", "and"),
		stringutils.PatternStep(regexp.MustCompile(`\s+`), "-"),
	)
	if got, want := fn("  salt & pepper "), "salt-and-pepper"; got != want {
		t.Errorf("fn() = %q, want %q", got, want)
	}

	if got, want := stringutils.Chain()("as is"), "as is"; got != want {
		t.Errorf("empty chain = %q, want %q", got, want)
	}
}
