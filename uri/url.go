package uri

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gotypes/internal/errorutil"
	"github.com/ghettovoice/gotypes/internal/ioutil"
	"github.com/ghettovoice/gotypes/internal/util"
	"github.com/ghettovoice/gotypes/value"
)

// URL is a decomposed URL.
//
// The structured fields are the source of truth, the string form is computed on demand.
// Path segments and the fragment are kept in their escaped form,
// user info and query parameters are kept decoded.
type URL struct {
	Scheme   string
	User     UserInfo
	Addr     Addr
	Path     Segments
	Query    Params
	Fragment string

	original string
	codec    ParamCodec
}

// New builds a URL from a string, stream or object input.
// Objects must implement [fmt.Stringer] or [encoding.TextMarshaler].
func New(in value.Input) (*URL, error) { return errtrace.Wrap2(NewWithOptions(in, nil)) }

// NewWithOptions is like [New] but accepts options, nil options are valid.
func NewWithOptions(in value.Input, opts *Options) (*URL, error) {
	u := &URL{codec: opts.paramCodec()}
	if err := u.Set(in); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// Parse parses a URL from the given input s (string or []byte).
func Parse[T ~string | ~[]byte](s T) (*URL, error) {
	return errtrace.Wrap2(NewWithOptions(value.String(s), nil))
}

// ParseWithOptions is like [Parse] but accepts options, nil options are valid.
func ParseWithOptions[T ~string | ~[]byte](s T, opts *Options) (*URL, error) {
	return errtrace.Wrap2(NewWithOptions(value.String(s), opts))
}

// MustParse is like [Parse] but panics on error.
func MustParse[T ~string | ~[]byte](s T) *URL {
	return util.Must2(Parse(s))
}

// Set replaces the URL with the conversion of in.
// The URL is cleared first and stays cleared if the conversion fails.
func (u *URL) Set(in value.Input) error { return errtrace.Wrap(value.Assign(u, in)) }

// Clear resets the URL to the empty state. The parameter codec is kept.
func (u *URL) Clear() {
	*u = URL{codec: u.codec}
}

func (u *URL) FromString(v value.String) error {
	return errtrace.Wrap(u.parse(string(v)))
}

func (u *URL) FromObject(v value.Object) error {
	switch o := v.V.(type) {
	case *URL:
		if o == nil {
			return value.ErrNotHandled //errtrace:skip
		}
		c := o.Clone()
		c.codec = u.codec
		c.original = o.String()
		*u = *c
		return nil
	case fmt.Stringer:
		return errtrace.Wrap(u.parse(o.String()))
	case encoding.TextMarshaler:
		b, err := o.MarshalText()
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(u.parse(string(b)))
	default:
		return value.ErrNotHandled //errtrace:skip
	}
}

func (u *URL) FromStream(v value.Stream) error {
	if v.R == nil {
		return value.ErrNotHandled //errtrace:skip
	}
	b, err := io.ReadAll(v.R)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(u.parse(string(b)))
}

// parse splits s into components.
// The path and the fragment are kept verbatim, only the host and port are validated.
func (u *URL) parse(s string) error {
	u.original = s
	if s == "" {
		return nil
	}

	rest, frag, _ := strings.Cut(s, "#")
	rest, rawQuery, _ := strings.Cut(rest, "?")
	if i := strings.IndexAny(rest, ":/"); i > 0 && rest[i] == ':' && isScheme(rest[:i]) {
		u.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}
	if auth, ok := strings.CutPrefix(rest, "//"); ok {
		if i := strings.IndexByte(auth, '/'); i >= 0 {
			auth, rest = auth[:i], auth[i:]
		} else {
			rest = ""
		}
		if err := u.parseAuthority(auth); err != nil {
			return errtrace.Wrap(newParseError(s, err))
		}
	}

	u.Path = splitPath(rest)
	u.Query = parseQuery(rawQuery)
	u.Fragment = frag
	return nil
}

func (u *URL) parseAuthority(auth string) error {
	if i := strings.LastIndexByte(auth, '@'); i >= 0 {
		u.User = parseUserInfo(auth[:i])
		auth = auth[i+1:]
	}
	if auth == "" {
		return nil
	}

	pu, err := url.Parse("//" + auth)
	if err != nil {
		if urlErr := (*url.Error)(nil); errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return errtrace.Wrap(err)
	}
	if host, portStr := pu.Hostname(), pu.Port(); portStr != "" {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return errtrace.Wrap(errorutil.Errorf("invalid port %q", portStr))
		}
		u.Addr = HostPort(host, uint16(port))
	} else if host != "" {
		u.Addr = Host(host)
	}
	return nil
}

// Original returns the string the URL was last built from.
func (u *URL) Original() string {
	if u == nil {
		return ""
	}
	return u.original
}

// Get returns the serialized URL.
func (u *URL) Get() string { return u.String() }

// RenderTo writes the serialized URL to w.
// Components that are not set are omitted together with their delimiters.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	authority := !u.User.IsZero() || !u.Addr.IsZero()
	cw.PrintIf(u.Scheme != "", u.Scheme, ":")
	// an empty first segment needs an empty authority, otherwise it is read as a host
	cw.PrintIf(u.Scheme != "" || authority || len(u.Path) > 1 && u.Path[0] == "", "//")
	cw.PrintIf(!u.User.IsZero(), u.User.String(), "@")
	cw.PrintIf(!u.Addr.IsZero(), u.Addr.String())
	cw.Print(u.Path.String())
	if opts.Query() && u.Query.Len() > 0 {
		cw.Print("?").Call(u.Query.RenderTo)
	}
	cw.PrintIf(opts.Fragment() && u.Fragment != "", "#", u.Fragment)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the serialized URL.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the serialized URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// LogValue implements [slog.LogValuer]. The password is masked.
func (u *URL) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	if _, ok := u.User.Password(); ok {
		c := *u
		c.User = UserPassword(u.User.Username(), "xxxxx")
		return slog.StringValue(c.String())
	}
	return slog.StringValue(u.String())
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Addr = u.Addr.Clone()
	u2.Path = u.Path.Clone()
	u2.Query = u.Query.Clone()
	return &u2
}

// Equal compares the URL structure with another URL or *URL.
// The scheme and the host name are compared case-insensitively, other components exactly.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.Scheme, other.Scheme) &&
		u.User.Equal(other.User) &&
		u.Addr.Equal(other.Addr) &&
		u.Path.Equal(other.Path) &&
		u.Query.Equal(&other.Query) &&
		u.Fragment == other.Fragment
}

// IsZero reports whether no component is set.
func (u *URL) IsZero() bool {
	return u == nil ||
		u.Scheme == "" &&
			u.User.IsZero() &&
			u.Addr.IsZero() &&
			len(u.Path) == 0 &&
			u.Query.Len() == 0 &&
			u.Fragment == ""
}

// Validate checks the structure and returns all problems found.
// Errors match [ErrInvalidURL].
func (u *URL) Validate() error {
	if u.IsZero() {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURL, "empty URL"))
	}

	var errs []error
	if u.Scheme != "" && !isScheme(u.Scheme) {
		errs = append(errs, errorutil.Errorf("invalid scheme %q", u.Scheme))
	}
	if !u.User.IsZero() && u.Addr.Host() == "" {
		errs = append(errs, errorutil.Errorf("user info without host"))
	}
	if !u.Addr.IsZero() && !u.Addr.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid host %q", u.Addr.Host()))
	}
	if port, ok := u.Addr.Port(); ok && port == 0 {
		errs = append(errs, errorutil.Errorf("invalid port %d", port))
	}
	if err := errorutil.Join(errs...); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidURL, err))
	}
	return nil
}

// IsValid reports whether [URL.Validate] finds no problems.
func (u *URL) IsValid() bool { return u.Validate() == nil }

func isScheme(s string) bool {
	for i := range len(s) {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}

// HostIsFQDN reports whether the host is a fully qualified domain name.
func (u *URL) HostIsFQDN() bool { return u != nil && u.Addr.IsFQDN() }

// IsFullURL reports whether the URL has a scheme.
func (u *URL) IsFullURL() bool { return u != nil && u.Scheme != "" }

// IsHTTPS reports whether the serialized URL starts with "https://".
func (u *URL) IsHTTPS() bool { return strings.HasPrefix(u.String(), "https://") }

// Segment returns the path segment selected by sel: "first", "last" or a decimal index.
func (u *URL) Segment(sel string) (string, bool) {
	if u == nil {
		return "", false
	}
	return u.Path.Select(sel)
}

// DecodePath percent-decodes every path segment in place.
// Segments with invalid escapes are left as is.
func (u *URL) DecodePath() *URL {
	if u == nil {
		return nil
	}
	u.Path.Map(decodeSegment)
	return u
}

// EncodePath percent-encodes every path segment in place.
func (u *URL) EncodePath() *URL {
	if u == nil {
		return nil
	}
	u.Path.Map(encodeSegment)
	return u
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	return errtrace.Wrap(u.Set(value.String(text)))
}
