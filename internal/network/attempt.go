package network

import (
	"net"
	"strings"
)

// Family is the address family of a socket-shaped connection attempt.
type Family int

const (
	FamilyOther Family = iota
	FamilyInet         // tcp4, udp4, ip4
	FamilyInet6        // tcp6, udp6, ip6
	FamilyInetAny      // tcp, udp, ip (dual stack)
	FamilyUnix         // unix, unixgram, unixpacket
)

func (f Family) String() string {
	switch f {
	case FamilyInet:
		return "inet"
	case FamilyInet6:
		return "inet6"
	case FamilyInetAny:
		return "inet-any"
	case FamilyUnix:
		return "unix"
	default:
		return "other"
	}
}

// Internet reports whether the family carries internet traffic.
func (f Family) Internet() bool {
	return f == FamilyInet || f == FamilyInet6 || f == FamilyInetAny
}

// FamilyOf maps a Go network name ("tcp4", "udp", "ip6:icmp", "unix", ...)
// to its address family.
func FamilyOf(network string) Family {
	if i := strings.IndexByte(network, ':'); i >= 0 {
		network = network[:i]
	}
	switch network {
	case "tcp4", "udp4", "ip4":
		return FamilyInet
	case "tcp6", "udp6", "ip6":
		return FamilyInet6
	case "tcp", "udp", "ip":
		return FamilyInetAny
	case "unix", "unixgram", "unixpacket":
		return FamilyUnix
	default:
		return FamilyOther
	}
}

// Attempt is one connection or bind attempt seen by a guarded primitive.
// It is either a SocketAttempt or a TupleAttempt.
type Attempt interface {
	// Addr returns the target address in host:port form.
	Addr() string
	withAddr(addr string) Attempt
}

// SocketAttempt is a connect or bind on a socket of a known family.
type SocketAttempt struct {
	Family  Family
	Network string
	Address string
}

func (a SocketAttempt) Addr() string { return a.Address }

func (a SocketAttempt) withAddr(addr string) Attempt {
	a.Address = addr
	return a
}

// NewSocketAttempt builds a SocketAttempt, deriving the family from network.
func NewSocketAttempt(network, address string) SocketAttempt {
	return SocketAttempt{Family: FamilyOf(network), Network: network, Address: address}
}

// TupleAttempt is a connection created from a host:port pair.
type TupleAttempt struct {
	Address string
}

func (a TupleAttempt) Addr() string { return a.Address }

func (a TupleAttempt) withAddr(addr string) Attempt {
	a.Address = addr
	return a
}

// rawIP reports whether the attempt is on an IP-level network such as
// "ip4:icmp". Its address is a bare host with no port.
func (a SocketAttempt) rawIP() bool {
	return strings.HasPrefix(a.Network, "ip")
}

// splitTarget returns the host and port of an attempt's address. Raw IP
// attempts have no port; an empty raw IP address is the wildcard host.
func splitTarget(a Attempt) (host, port string, ok bool) {
	if s, isSocket := a.(SocketAttempt); isSocket && s.rawIP() {
		return strings.TrimSuffix(strings.TrimPrefix(s.Address, "["), "]"), "", true
	}

	host, port, err := net.SplitHostPort(a.Addr())
	if err != nil {
		return "", "", false
	}
	return host, port, true
}

// joinTarget rebuilds an attempt's address around host.
func joinTarget(a Attempt, host, port string) string {
	if s, ok := a.(SocketAttempt); ok && s.rawIP() {
		return host
	}
	return net.JoinHostPort(host, port)
}
