package network

import (
	"context"
	"os"

	fqdn "github.com/Showmax/go-fqdn"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/errors"
)

// Policy selects which remote domains are allow-listed on top of loopback.
// AllowDataHosts implies AllowCodeHosts.
type Policy struct {
	AllowDataHosts bool
	AllowCodeHosts bool
}

// Domains returns the allow-listed remote domains for the policy.
func (p Policy) Domains() []string {
	switch {
	case p.AllowDataHosts:
		return DataHosts
	case p.AllowCodeHosts:
		return CodeHosts
	default:
		return nil
	}
}

// Verdict is the outcome of classifying an attempt.
type Verdict int

const (
	// VerdictPassthrough means the attempt is not internet traffic and was not checked.
	VerdictPassthrough Verdict = iota
	VerdictAllowed
	VerdictBlocked
)

func (v Verdict) String() string {
	switch v {
	case VerdictPassthrough:
		return "passthrough"
	case VerdictAllowed:
		return "allowed"
	default:
		return "blocked"
	}
}

// Decision is the classifier's answer for one attempt.
type Decision struct {
	Verdict Verdict
	// Attempt is the attempt to hand to the original primitive. Its address
	// is rewritten to localhost when the target was the machine's own name.
	Attempt Attempt
	Host    string
}

// LocalNamesFunc returns the names the local machine answers to.
type LocalNamesFunc func(ctx context.Context) []string

// SystemLocalNames returns the machine's hostname and fully qualified domain
// name. Either is omitted when it cannot be determined.
func SystemLocalNames(context.Context) []string {
	var names []string
	if h, err := os.Hostname(); err == nil && h != "" {
		names = append(names, h)
	}
	if f, err := fqdn.FqdnHostname(); err == nil && f != "" {
		names = append(names, f)
	}
	return names
}

// Classifier decides whether connection attempts may proceed.
type Classifier struct {
	// Resolver resolves target and allow-listed hosts. Defaults to the system resolver.
	Resolver Resolver
	// LocalNames lists the machine's own names. Defaults to SystemLocalNames.
	LocalNames LocalNamesFunc
}

func (c *Classifier) resolver() Resolver {
	if c == nil || c.Resolver == nil {
		return DefaultResolver()
	}
	return c.Resolver
}

func (c *Classifier) localNames(ctx context.Context) []string {
	if c == nil || c.LocalNames == nil {
		return SystemLocalNames(ctx)
	}
	return c.LocalNames(ctx)
}

// AllowList returns the identities an attempt of the given shape may reach
// under policy. Domain identities are resolved on every call.
func (c *Classifier) AllowList(ctx context.Context, a Attempt, policy Policy) IdentitySet {
	allowed := NewIdentitySet("localhost", "127.0.0.1")
	if _, ok := a.(SocketAttempt); ok {
		allowed.Add("::1")
	}
	if domains := policy.Domains(); len(domains) > 0 {
		allowed.Union(ResolveAll(ctx, c.resolver(), domains))
	}
	return allowed
}

// Classify decides whether a may proceed under policy. A blocked attempt
// returns a *errors.BlockedConnection naming the requested host.
func (c *Classifier) Classify(ctx context.Context, a Attempt, policy Policy) (Decision, error) {
	if s, ok := a.(SocketAttempt); ok && !s.Family.Internet() {
		return Decision{Verdict: VerdictPassthrough, Attempt: a}, nil
	}

	host, port, ok := splitTarget(a)
	if !ok {
		return Decision{Verdict: VerdictPassthrough, Attempt: a}, nil
	}

	allowed := c.AllowList(ctx, a, policy)

	var ids IdentitySet
	if c.isLocalName(ctx, host) {
		host = "localhost"
		a = a.withAddr(joinTarget(a, host, port))
		ids = NewIdentitySet(host)
	} else {
		ids = ResolveHostIdentities(ctx, c.resolver(), host)
	}

	if ids.Intersects(allowed) {
		return Decision{Verdict: VerdictAllowed, Attempt: a, Host: host}, nil
	}
	return Decision{Verdict: VerdictBlocked, Attempt: a, Host: host}, errors.Blocked(host)
}

func (c *Classifier) isLocalName(ctx context.Context, host string) bool {
	for _, name := range c.localNames(ctx) {
		if host == name {
			return true
		}
	}
	return false
}
