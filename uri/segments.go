package uri

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/ghettovoice/gotypes/internal/stringutils"
)

// Segments is an ordered list of path segments, stored without the "/" separators.
type Segments []string

func splitPath(path string) Segments {
	if path == "" {
		return nil
	}
	return Segments(strings.Split(strings.TrimPrefix(path, "/"), "/"))
}

// Len returns the number of segments.
func (s Segments) Len() int { return len(s) }

// Has reports whether i is a valid segment index.
func (s Segments) Has(i int) bool { return i >= 0 && i < len(s) }

// Get returns the i-th segment and whether it exists.
func (s Segments) Get(i int) (string, bool) {
	if !s.Has(i) {
		return "", false
	}
	return s[i], true
}

// First returns the first segment and whether it exists.
func (s Segments) First() (string, bool) { return s.Get(0) }

// Last returns the last segment and whether it exists.
func (s Segments) Last() (string, bool) { return s.Get(len(s) - 1) }

// Set replaces the i-th segment. An index beyond the end appends v as the last segment.
// A negative index is ignored and reported with false.
func (s *Segments) Set(i int, v string) bool {
	switch {
	case i < 0:
		return false
	case i >= len(*s):
		*s = append(*s, v)
	default:
		(*s)[i] = v
	}
	return true
}

// Append adds segments to the end.
func (s *Segments) Append(vs ...string) { *s = append(*s, vs...) }

// Del removes the i-th segment and reports whether it existed.
func (s *Segments) Del(i int) bool {
	if !s.Has(i) {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// Select resolves a selector: "first", "last" or a decimal index.
func (s Segments) Select(sel string) (string, bool) {
	switch sel {
	case "first":
		return s.First()
	case "last":
		return s.Last()
	}
	i, err := strconv.Atoi(sel)
	if err != nil {
		return "", false
	}
	return s.Get(i)
}

// String returns the path form of the segments, "/" followed by the segments joined with "/".
// Empty segments render as an empty string.
func (s Segments) String() string {
	if len(s) == 0 {
		return ""
	}
	return "/" + strings.Join(s, "/")
}

func (s Segments) Clone() Segments { return slices.Clone(s) }

// Equal compares the segments with []string or Segments.
func (s Segments) Equal(val any) bool {
	switch v := val.(type) {
	case Segments:
		return slices.Equal(s, v)
	case *Segments:
		return v != nil && slices.Equal(s, *v)
	case []string:
		return slices.Equal(s, v)
	default:
		return false
	}
}

// Map replaces every segment with fn(segment).
func (s Segments) Map(fn stringutils.Transform) {
	for i := range s {
		s[i] = fn(s[i])
	}
}

func decodeSegment(v string) string {
	if dv, err := url.PathUnescape(v); err == nil {
		return dv
	}
	return v
}

func encodeSegment(v string) string { return url.PathEscape(v) }
