package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -source=current.go -destination=urimock/request_context.go -package=urimock

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gotypes/internal/types"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a network address from the given input s (string or []byte).
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// RenderOptions contains options for rendering URLs.
type RenderOptions = types.RenderOptions

// Renderer is implemented by types that render to a string or a writer.
type Renderer = types.Renderer

var _ Renderer = (*URL)(nil)

// Options configures URL construction.
type Options struct {
	// ParamCodec encodes composite values stored with [URL.SetParameterValue].
	// If nil, [JSONCodec] is used.
	ParamCodec ParamCodec
}

func (o *Options) paramCodec() ParamCodec {
	if o == nil || o.ParamCodec == nil {
		return defParamCodec
	}
	return o.ParamCodec
}

var defParamCodec ParamCodec = JSONCodec{}

// DefaultPort returns the well-known port of the scheme, 0 if unknown.
func DefaultPort(scheme string) uint16 {
	switch scheme {
	case "http", "ws":
		return 80
	case "https", "wss":
		return 443
	case "ftp":
		return 21
	default:
		return 0
	}
}
