package uri

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ghettovoice/gotypes/internal/log"
)

// RequestContext exposes the request being served.
type RequestContext interface {
	// Secure reports whether the request came over TLS.
	Secure() bool
	// Host returns the requested host, optionally with a port.
	Host() string
	// Port returns the server port and whether it is known.
	Port() (uint16, bool)
	// Path returns the escaped request path without the query.
	Path() string
	// RawQuery returns the encoded query without the leading "?".
	RawQuery() string
}

// CurrentOptions configures [Current].
type CurrentOptions struct {
	// NoQuery omits the request query.
	NoQuery bool
	// KeepDefaultPort keeps the port even when it is the default one of the scheme.
	KeepDefaultPort bool
	// Logger is the logger used to report unusable request values.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *CurrentOptions) includeQuery() bool { return o == nil || !o.NoQuery }

func (o *CurrentOptions) keepDefaultPort() bool { return o != nil && o.KeepDefaultPort }

func (o *CurrentOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// CLI is the path returned by [Current] when there is no request.
const CLI = "cli"

// Current returns the URL of the request described by rc.
//
// Without a request context the URL is the bare path "cli".
// The scheme is "https" for secure requests and "http" otherwise.
// The port is omitted when it is unknown, zero or the default one of the scheme.
// The trailing slash of the path is removed.
func Current(rc RequestContext, opts *CurrentOptions) *URL {
	u := &URL{codec: defParamCodec}
	if rc == nil {
		u.Path = Segments{CLI}
		u.original = CLI
		return u
	}

	logger := opts.log()

	u.Scheme = "http"
	if rc.Secure() {
		u.Scheme = "https"
	}

	if host := rc.Host(); host != "" {
		addr, err := ParseAddr(host)
		if err != nil {
			logger.Warn("failed to parse request host, using it verbatim", "host", host, "error", err)
			addr = Host(host)
		}
		u.Addr = addr
	}
	if port, ok := rc.Port(); ok {
		u.Addr = u.Addr.WithPort(port)
	}
	if port, ok := u.Addr.Port(); ok && (port == 0 || port == DefaultPort(u.Scheme) && !opts.keepDefaultPort()) {
		u.Addr = u.Addr.WithoutPort()
	}

	u.Path = splitPath(strings.TrimRight(rc.Path(), "/"))
	if opts.includeQuery() {
		u.Query = parseQuery(rc.RawQuery())
	}
	u.original = u.String()

	logger.Debug("current request URL resolved", "url", u)
	return u
}

type httpRequestContext struct {
	req *http.Request
}

// HTTPRequestContext adapts an incoming [http.Request] to [RequestContext].
func HTTPRequestContext(req *http.Request) RequestContext {
	if req == nil {
		return nil
	}
	return httpRequestContext{req}
}

func (rc httpRequestContext) Secure() bool {
	return rc.req.TLS != nil || strings.EqualFold(rc.req.Header.Get("X-Forwarded-Proto"), "https")
}

func (rc httpRequestContext) Host() string { return rc.req.Host }

func (rc httpRequestContext) Port() (uint16, bool) { return 0, false }

func (rc httpRequestContext) Path() string { return rc.req.URL.EscapedPath() }

func (rc httpRequestContext) RawQuery() string { return rc.req.URL.RawQuery }

type envRequestContext struct {
	lookup func(string) (string, bool)
}

// EnvRequestContext reads a CGI-style request from environment variables:
// HTTPS, HTTP_HOST, SERVER_PORT, REQUEST_URI or SCRIPT_NAME and QUERY_STRING.
// It returns nil when HTTP_HOST is not set.
func EnvRequestContext(lookup func(string) (string, bool)) RequestContext {
	if lookup == nil {
		return nil
	}
	if _, ok := lookup("HTTP_HOST"); !ok {
		return nil
	}
	return envRequestContext{lookup}
}

func (rc envRequestContext) get(k string) string {
	v, _ := rc.lookup(k)
	return v
}

func (rc envRequestContext) Secure() bool {
	v := rc.get("HTTPS")
	if on, err := strconv.ParseBool(v); err == nil {
		return on
	}
	return strings.EqualFold(v, "on")
}

func (rc envRequestContext) Host() string { return rc.get("HTTP_HOST") }

func (rc envRequestContext) Port() (uint16, bool) {
	port, err := strconv.ParseUint(rc.get("SERVER_PORT"), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(port), true
}

func (rc envRequestContext) Path() string {
	p := rc.get("REQUEST_URI")
	if p == "" {
		p = rc.get("SCRIPT_NAME")
	}
	p, _, _ = strings.Cut(p, "?")
	p, _, _ = strings.Cut(p, "#")
	return p
}

func (rc envRequestContext) RawQuery() string {
	if q := rc.get("QUERY_STRING"); q != "" {
		return q
	}
	_, q, _ := strings.Cut(rc.get("REQUEST_URI"), "?")
	q, _, _ = strings.Cut(q, "#")
	return q
}
