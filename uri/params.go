package uri

import (
	"io"
	"iter"
	"maps"
	"net/url"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gotypes/internal/ioutil"
	"github.com/ghettovoice/gotypes/internal/util"
)

// Params is an insertion-ordered set of query parameters with unique keys.
// Keys and values are stored decoded.
// The zero Params is empty and ready to use.
type Params struct {
	keys []string
	vals map[string]string
}

// NewParams builds parameters from alternating keys and values.
// A trailing key without a value gets an empty one.
func NewParams(kvs ...string) Params {
	var p Params
	for i := 0; i < len(kvs); i += 2 {
		var v string
		if i+1 < len(kvs) {
			v = kvs[i+1]
		}
		p.Set(kvs[i], v)
	}
	return p
}

// parseQuery splits a raw query string into parameters.
// Empty pairs are skipped, a repeated key keeps its first position and takes the last value.
// Keys and values that fail to unescape are kept verbatim.
func parseQuery(raw string) Params {
	var p Params
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		p.Set(queryUnescape(k), queryUnescape(v))
	}
	return p
}

func queryUnescape(s string) string {
	if us, err := url.QueryUnescape(s); err == nil {
		return us
	}
	return s
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the value of the parameter k and whether it is present.
func (p *Params) Get(k string) (string, bool) {
	if p == nil || p.vals == nil {
		return "", false
	}
	v, ok := p.vals[k]
	return v, ok
}

// Has reports whether the parameter k is present.
func (p *Params) Has(k string) bool {
	_, ok := p.Get(k)
	return ok
}

// Set stores v under k. A new key is appended, an existing key keeps its position.
func (p *Params) Set(k, v string) {
	if p.vals == nil {
		p.vals = make(map[string]string)
	}
	if _, ok := p.vals[k]; !ok {
		p.keys = append(p.keys, k)
	}
	p.vals[k] = v
}

// Del removes the parameter k and reports whether it was present.
func (p *Params) Del(k string) bool {
	if !p.Has(k) {
		return false
	}
	delete(p.vals, k)
	p.keys = slices.DeleteFunc(p.keys, func(key string) bool { return key == k })
	return true
}

// Clear removes all parameters.
func (p *Params) Clear() {
	p.keys = nil
	p.vals = nil
}

// Keys returns the parameter keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates over the parameters in insertion order.
func (p *Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.vals[k]) {
				return
			}
		}
	}
}

// Map returns the parameters as a plain map.
func (p *Params) Map() map[string]string {
	if p == nil {
		return nil
	}
	return maps.Clone(p.vals)
}

// Clone returns a deep copy of the parameters.
func (p *Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return Params{
		keys: slices.Clone(p.keys),
		vals: maps.Clone(p.vals),
	}
}

// Equal compares the parameters with another Params or *Params.
// Parameters are equal when they hold the same keys in the same order with the same values.
func (p *Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if p == nil {
		return other.Len() == 0
	}
	return slices.Equal(p.keys, other.keys) && maps.Equal(p.vals, other.vals)
}

// RenderTo writes the encoded query string without the leading "?".
func (p *Params) RenderTo(w io.Writer) (int, error) {
	if p.Len() == 0 {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, k := range p.keys {
		cw.PrintIf(i > 0, "&").Print(url.QueryEscape(k), "=", url.QueryEscape(p.vals[k]))
	}
	return errtrace.Wrap2(cw.Result())
}

// Encode returns the encoded query string without the leading "?".
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (p *Params) String() string { return p.Encode() }
