// Package testutil provides resolvers, servers and fixtures for netguard tests
package testutil

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeResolver answers lookups from a fixed table. Unknown hosts fail with a
// not-found DNS error; IP literals resolve to themselves, as with the system
// resolver.
type FakeResolver struct {
	Hosts map[string][]string

	mu      sync.Mutex
	lookups []string
}

// NewFakeResolver returns a resolver serving hosts.
func NewFakeResolver(hosts map[string][]string) *FakeResolver {
	return &FakeResolver{Hosts: hosts}
}

// LookupHost implements network.Resolver.
func (r *FakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	r.mu.Lock()
	r.lookups = append(r.lookups, host)
	r.mu.Unlock()

	if ip := net.ParseIP(host); ip != nil {
		return []string{host}, nil
	}
	if addrs, ok := r.Hosts[host]; ok {
		return addrs, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

// Lookups returns every host looked up so far, in order.
func (r *FakeResolver) Lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lookups...)
}

// StaticLocalNames returns a local-names function answering names.
func StaticLocalNames(names ...string) func(context.Context) []string {
	return func(context.Context) []string {
		return names
	}
}

// LoopbackServer starts an HTTP server on 127.0.0.1 at an ephemeral port that
// answers every request with body. It is closed when t finishes.
func LoopbackServer(t testing.TB, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// PipeConn returns one end of an in-memory connection; the other end is
// closed when t finishes.
func PipeConn(t testing.TB) net.Conn {
	t.Helper()

	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client
}
