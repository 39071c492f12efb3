package guard

import (
	"context"
	"net"
	"net/http"
	"sync"
)

// ConnectFunc connects a socket of the named network to address.
type ConnectFunc func(ctx context.Context, netw, address string) (net.Conn, error)

// CreateConnectionFunc opens a TCP connection to a host:port pair.
type CreateConnectionFunc func(ctx context.Context, address string) (net.Conn, error)

// BindFunc binds a listening socket of the named network to address.
type BindFunc func(ctx context.Context, netw, address string) (net.Listener, error)

// Primitives is the set of entry points that establish or bind connections.
type Primitives struct {
	Connect          ConnectFunc
	CreateConnection CreateConnectionFunc
	Bind             BindFunc
}

// SystemPrimitives returns primitives backed by net.Dialer and net.ListenConfig.
func SystemPrimitives() Primitives {
	var d net.Dialer
	var lc net.ListenConfig
	return Primitives{
		Connect: d.DialContext,
		CreateConnection: func(ctx context.Context, address string) (net.Conn, error) {
			return d.DialContext(ctx, "tcp", address)
		},
		Bind: lc.Listen,
	}
}

// withDefaults fills unset entries from SystemPrimitives.
func (p Primitives) withDefaults() Primitives {
	sys := SystemPrimitives()
	if p.Connect == nil {
		p.Connect = sys.Connect
	}
	if p.CreateConnection == nil {
		p.CreateConnection = sys.CreateConnection
	}
	if p.Bind == nil {
		p.Bind = sys.Bind
	}
	return p
}

// OpenerSlot holds the process-wide default opener used by the high-level
// HTTP layer.
type OpenerSlot interface {
	Get() http.RoundTripper
	Set(rt http.RoundTripper)
}

// DefaultTransportSlot reads and writes http.DefaultTransport, which backs
// http.Get and every http.Client without its own Transport.
type DefaultTransportSlot struct{}

func (DefaultTransportSlot) Get() http.RoundTripper { return http.DefaultTransport }

func (DefaultTransportSlot) Set(rt http.RoundTripper) { http.DefaultTransport = rt }

// TransportSlot is a standalone opener slot, for callers that manage their
// own http.Client.
type TransportSlot struct {
	mu sync.Mutex
	rt http.RoundTripper
}

// NewTransportSlot returns a slot holding rt.
func NewTransportSlot(rt http.RoundTripper) *TransportSlot {
	return &TransportSlot{rt: rt}
}

func (s *TransportSlot) Get() http.RoundTripper {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rt
}

func (s *TransportSlot) Set(rt http.RoundTripper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rt = rt
}
