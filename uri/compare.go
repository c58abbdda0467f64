package uri

import (
	"regexp"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gotypes/internal/stringutils"
	"github.com/ghettovoice/gotypes/internal/util"
	"github.com/ghettovoice/gotypes/value"
)

var (
	specialCharsRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	underscoresRe  = regexp.MustCompile(`_+`)

	tidySegment = stringutils.Chain(
		stringutils.TrimStep(),
		stringutils.ReplaceStep("&", "and"),
		stringutils.PatternStep(specialCharsRe, "_"),
		stringutils.PatternStep(underscoresRe, "_"),
	)
)

// Tidy normalizes every path segment in place: surrounding white space is trimmed,
// "&" becomes "and" and every run of characters other than ASCII letters, digits,
// "_" and "-" becomes a single "_".
// Only path segments are touched.
func (u *URL) Tidy() *URL {
	if u == nil {
		return nil
	}
	u.Path.Map(tidySegment)
	return u
}

// CompareOptions tunes [URL.Compare].
// Nil options compare case-sensitively, without the query and with special characters.
type CompareOptions struct {
	// IgnoreCase compares the serialized forms case-insensitively.
	IgnoreCase bool `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	// IncludeQuery keeps the query parameters in the compared forms.
	IncludeQuery bool `json:"include_query,omitempty" yaml:"include_query,omitempty"`
	// IgnoreSpecialChars tidies the path of both operands before comparing.
	IgnoreSpecialChars bool `json:"ignore_special_chars,omitempty" yaml:"ignore_special_chars,omitempty"`
}

func (o *CompareOptions) ignoreCase() bool { return o != nil && o.IgnoreCase }

func (o *CompareOptions) includeQuery() bool { return o != nil && o.IncludeQuery }

func (o *CompareOptions) ignoreSpecialChars() bool { return o != nil && o.IgnoreSpecialChars }

// Compare orders the URL relative to other and returns -1, 0 or +1.
//
// Both operands are copied, their paths are decoded, tidied when IgnoreSpecialChars is set
// and stripped of the query unless IncludeQuery is set.
// The serialized forms are then compared lexicographically.
// The receiver and other are not modified.
//
// The sign is that of [strings.Compare] with the receiver on the left:
// a negative result means the receiver orders before other.
// This is the opposite of a strcmp(other, receiver) style comparison.
func (u *URL) Compare(other *URL, opts *CompareOptions) int {
	a, b := u.comparable(opts), other.comparable(opts)
	if opts.ignoreCase() {
		return util.CmpFold(a, b)
	}
	return strings.Compare(a, b)
}

func (u *URL) comparable(opts *CompareOptions) string {
	if u == nil {
		return ""
	}
	c := u.Clone().DecodePath()
	if opts.ignoreSpecialChars() {
		c.Tidy()
	}
	if !opts.includeQuery() {
		c.Query.Clear()
	}
	return c.String()
}

// CompareTo converts other into a URL and compares the receiver with it, see [URL.Compare].
func (u *URL) CompareTo(other value.Input, opts *CompareOptions) (int, error) {
	ou, err := New(other)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return u.Compare(ou, opts), nil
}
