package types

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/gotypes/internal/errorutil"
	"github.com/ghettovoice/gotypes/internal/util"
)

// ErrEmptyAddr is returned by [ParseAddr] on empty input.
const ErrEmptyAddr errorutil.Error = "empty address"

// Addr is a container for host and optional port.
type Addr struct {
	host    string
	ip      net.IP
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	host = strings.Trim(host, "[]")
	return Addr{
		host: host,
		ip:   parseIP(host),
	}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	addr := Host(host)
	addr.port = port
	addr.hasPort = true
	return addr
}

func parseIP(host string) net.IP {
	ip := net.ParseIP(host)
	if v := ip.To4(); v != nil {
		ip = v
	}
	return ip
}

// ParseAddr parses a "host[:port]" string into an [Addr].
// IPv6 hosts must be enclosed in brackets when followed by a port.
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) {
	str := string(s)
	if str == "" {
		return Addr{}, errtrace.Wrap(ErrEmptyAddr)
	}

	host, portStr, err := net.SplitHostPort(str)
	if err != nil {
		var addrErr *net.AddrError
		if errors.As(err, &addrErr) && strings.HasPrefix(addrErr.Err, "missing port") {
			return Host(str), nil
		}
		return Addr{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	if portStr == "" {
		return Host(host), nil
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Addr{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid port %q", portStr))
	}
	return HostPort(host, uint16(port)), nil
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// IP returns the parsed IP representation when the host is an IP literal, otherwise nil.
func (addr Addr) IP() net.IP { return addr.ip }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// WithPort returns a copy of the address with the port set.
func (addr Addr) WithPort(port uint16) Addr {
	addr.port = port
	addr.hasPort = true
	return addr
}

// WithoutPort returns a copy of the address with the port unset.
func (addr Addr) WithoutPort() Addr {
	addr.port = 0
	addr.hasPort = false
	return addr
}

// String formats the address as host[:port], adding brackets for IPv6 literals when required.
// The "%" of an IPv6 zone is escaped as "%25".
func (addr Addr) String() string {
	var host string
	if addr.ip == nil {
		host = addr.host
	} else {
		host = addr.ip.String()
	}
	if strings.Contains(host, ":") {
		host = strings.ReplaceAll(host, "%", "%25")
	}
	if !addr.hasPort {
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(int(addr.port)))
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Clone returns a deep copy of the address including the underlying IP slice.
func (addr Addr) Clone() Addr {
	addr.ip = slices.Clone(addr.ip)
	return addr
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
// Domain names are compared case-insensitively, IP literals by value.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	var hostMatch bool
	switch {
	case addr.ip == nil && other.ip == nil:
		hostMatch = util.EqFold(addr.host, other.host)
	case addr.ip != nil && other.ip != nil:
		hostMatch = addr.ip.Equal(other.ip)
	default:
		return false
	}

	return hostMatch && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsValid reports whether the host is an IP literal or a syntactically valid domain name.
func (addr Addr) IsValid() bool {
	if addr.ip != nil {
		return true
	}
	if addr.host == "" {
		return false
	}
	_, ok := dns.IsDomainName(addr.host)
	return ok
}

// IsFQDN reports whether the host is a fully qualified domain name, i.e. ends with a dot.
func (addr Addr) IsFQDN() bool { return addr.ip == nil && dns.IsFqdn(addr.host) }

// IsZero reports whether the address has zero host, IP and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && addr.ip == nil && !addr.hasPort }

// MarshalText encodes the address into its textual representation suitable for JSON/Text marshalling.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (addr *Addr) UnmarshalText(text []byte) error {
	var err error
	*addr, err = ParseAddr(text)
	if errors.Is(err, ErrEmptyAddr) {
		return nil
	}
	return errtrace.Wrap(err)
}
