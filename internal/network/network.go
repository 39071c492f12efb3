// Package network classifies connection attempts against a host allow-list
package network

import (
	"context"
	"net"
	"sort"

	"golang.org/x/sync/errgroup"
)

// CodeHosts are the code-hosting domains reachable when code access is allowed.
var CodeHosts = []string{"www.github.io"}

// DataHosts are the data-hosting domains reachable when data access is
// allowed. Always a superset of CodeHosts.
var DataHosts = append([]string{
	"data.astropy.org",
	"astropy.stsci.edu",
	"www.astropy.org",
}, CodeHosts...)

// Resolver performs forward address lookups. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DefaultResolver returns the system resolver.
func DefaultResolver() Resolver {
	return net.DefaultResolver
}

// IdentitySet is a set of names and IP literals that identify one host.
type IdentitySet map[string]struct{}

// NewIdentitySet returns a set holding names.
func NewIdentitySet(names ...string) IdentitySet {
	s := make(IdentitySet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s IdentitySet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s IdentitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union adds every member of other to s.
func (s IdentitySet) Union(other IdentitySet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Intersects reports whether s and other share at least one member.
func (s IdentitySet) Intersects(other IdentitySet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for n := range small {
		if large.Has(n) {
			return true
		}
	}
	return false
}

// Sorted returns the members in lexical order.
func (s IdentitySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ResolveHostIdentities returns every IPv4 and IPv6 literal hostname resolves
// to, plus hostname itself. A failed lookup contributes no addresses, so an
// unresolvable name or an IP literal still matches itself.
//
// Results are never cached: hosts may change address over a long test run.
func ResolveHostIdentities(ctx context.Context, r Resolver, hostname string) IdentitySet {
	ids := NewIdentitySet(hostname)
	if r == nil {
		r = DefaultResolver()
	}

	addrs, err := r.LookupHost(ctx, hostname)
	if err != nil {
		return ids
	}
	for _, addr := range addrs {
		ids.Add(addr)
	}
	return ids
}

// ResolveAll resolves hosts concurrently and returns the union of their
// identity sets.
func ResolveAll(ctx context.Context, r Resolver, hosts []string) IdentitySet {
	sets := make([]IdentitySet, len(hosts))

	var g errgroup.Group
	for i, host := range hosts {
		i, host := i, host
		g.Go(func() error {
			sets[i] = ResolveHostIdentities(ctx, r, host)
			return nil
		})
	}
	_ = g.Wait()

	all := make(IdentitySet)
	for _, s := range sets {
		all.Union(s)
	}
	return all
}
