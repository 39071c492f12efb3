// Package guard intercepts connection attempts while network access is disabled
package guard

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/audit"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/network"
)

// Config holds guard configuration
type Config struct {
	// Primitives are the originals to wrap. Unset entries default to
	// SystemPrimitives.
	Primitives Primitives

	// Opener is the default-opener slot swapped while enabled.
	// Defaults to DefaultTransportSlot.
	Opener OpenerSlot

	// Classifier decides each attempt. Defaults to a system-resolver classifier.
	Classifier *network.Classifier

	// Logger for guard operations
	Logger *slog.Logger

	// Audit receives enable, disable and blocked events (nil = no audit)
	Audit *audit.Logger
}

// EnableOptions configures what stays reachable while the guard is enabled.
type EnableOptions struct {
	Verbose        bool
	AllowDataHosts bool
	AllowCodeHosts bool
}

func (o EnableOptions) policy() network.Policy {
	return network.Policy{AllowDataHosts: o.AllowDataHosts, AllowCodeHosts: o.AllowCodeHosts}
}

// Guard owns the original primitives, the saved default opener and the
// blocking flag. Enable and Disable are idempotent.
type Guard struct {
	original   Primitives
	opener     OpenerSlot
	classifier *network.Classifier
	logger     *slog.Logger
	audit      *audit.Logger

	installed atomic.Pointer[Primitives]

	mu          sync.Mutex
	enabled     bool
	savedOpener http.RoundTripper
	direct      *http.Transport
}

// New creates a guard, capturing cfg's primitives as the originals.
func New(cfg *Config) *Guard {
	if cfg == nil {
		cfg = &Config{}
	}

	g := &Guard{
		original:   cfg.Primitives.withDefaults(),
		opener:     cfg.Opener,
		classifier: cfg.Classifier,
		logger:     cfg.Logger,
		audit:      cfg.Audit,
	}
	if g.opener == nil {
		g.opener = DefaultTransportSlot{}
	}
	if g.classifier == nil {
		g.classifier = &network.Classifier{}
	}
	orig := g.original
	g.installed.Store(&orig)
	return g
}

// Enabled reports whether network access is currently disabled.
func (g *Guard) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

// Enable disables network access: it saves the current default opener,
// installs a proxy-free opener, and wraps the primitives. It is a no-op
// when already enabled.
func (g *Guard) Enable(opts EnableOptions) {
	g.enable(opts)
}

// enable reports whether this call performed the transition.
func (g *Guard) enable(opts EnableOptions) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.enabled {
		return false
	}
	g.enabled = true

	g.logTransition(opts.Verbose, "network access disabled",
		"allow_data_hosts", opts.AllowDataHosts,
		"allow_code_hosts", opts.AllowCodeHosts)

	wrapped := g.wrap(opts.policy())
	g.installed.Store(&wrapped)

	g.savedOpener = g.opener.Get()
	g.direct = g.directTransport()
	g.opener.Set(g.direct)

	g.record(audit.Event{
		Type:    audit.EventEnable,
		Details: fmt.Sprintf("allow_data_hosts=%t allow_code_hosts=%t", opts.AllowDataHosts, opts.AllowCodeHosts),
	})
	return true
}

// Disable restores the saved default opener and the original primitives.
// It is a no-op when not enabled.
func (g *Guard) Disable(verbose bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.enabled {
		return
	}
	g.enabled = false

	g.logTransition(verbose, "network access enabled")

	g.opener.Set(g.savedOpener)
	g.savedOpener = nil
	if g.direct != nil {
		g.direct.CloseIdleConnections()
		g.direct = nil
	}

	orig := g.original
	g.installed.Store(&orig)

	g.record(audit.Event{Type: audit.EventDisable})
}

// Acquire enables the guard and returns a release function that disables it
// only if this call was the one that enabled it. Release is safe to call
// more than once.
func (g *Guard) Acquire(verbose bool) (release func()) {
	return g.AcquireWith(EnableOptions{Verbose: verbose})
}

// AcquireWith is Acquire with explicit allow-list options.
func (g *Guard) AcquireWith(opts EnableOptions) (release func()) {
	performed := g.enable(opts)

	var once sync.Once
	return func() {
		once.Do(func() {
			if performed {
				g.Disable(opts.Verbose)
			}
		})
	}
}

// WithNetworkBlocked runs fn with network access disabled. If the guard was
// already enabled on entry it stays enabled afterwards; otherwise it is
// disabled on every exit path, including a panic in fn.
func (g *Guard) WithNetworkBlocked(verbose bool, fn func() error) error {
	release := g.Acquire(verbose)
	defer release()
	return fn()
}

// Dial connects through the installed Connect primitive.
func (g *Guard) Dial(ctx context.Context, netw, address string) (net.Conn, error) {
	return g.installed.Load().Connect(ctx, netw, address)
}

// CreateConnection connects through the installed CreateConnection primitive.
func (g *Guard) CreateConnection(ctx context.Context, address string) (net.Conn, error) {
	return g.installed.Load().CreateConnection(ctx, address)
}

// Listen binds through the installed Bind primitive.
func (g *Guard) Listen(ctx context.Context, netw, address string) (net.Listener, error) {
	return g.installed.Load().Bind(ctx, netw, address)
}

// wrap builds guarded primitives around the originals, never around
// whatever is currently installed.
func (g *Guard) wrap(policy network.Policy) Primitives {
	orig := g.original
	return Primitives{
		Connect: func(ctx context.Context, netw, address string) (net.Conn, error) {
			a, err := g.check(ctx, "connect", network.NewSocketAttempt(netw, address), policy)
			if err != nil {
				return nil, err
			}
			return orig.Connect(ctx, netw, a.Addr())
		},
		CreateConnection: func(ctx context.Context, address string) (net.Conn, error) {
			a, err := g.check(ctx, "create_connection", network.TupleAttempt{Address: address}, policy)
			if err != nil {
				return nil, err
			}
			return orig.CreateConnection(ctx, a.Addr())
		},
		Bind: func(ctx context.Context, netw, address string) (net.Listener, error) {
			a, err := g.check(ctx, "bind", network.NewSocketAttempt(netw, address), policy)
			if err != nil {
				return nil, err
			}
			return orig.Bind(ctx, netw, a.Addr())
		},
	}
}

func (g *Guard) check(ctx context.Context, op string, a network.Attempt, policy network.Policy) (network.Attempt, error) {
	d, err := g.classifier.Classify(ctx, a, policy)
	if err != nil {
		g.log().Warn("blocked connection attempt", "op", op, "host", d.Host, "address", a.Addr())
		g.record(audit.Event{Type: audit.EventBlocked, Op: op, Host: d.Host, Address: a.Addr()})
		return nil, err
	}
	g.log().Debug("connection attempt", "op", op, "verdict", d.Verdict.String(), "address", d.Attempt.Addr())
	if d.Verdict == network.VerdictAllowed {
		g.record(audit.Event{Type: audit.EventAllowed, Op: op, Host: d.Host, Address: d.Attempt.Addr()})
	}
	return d.Attempt, nil
}

// directTransport is the opener installed while enabled: no proxies, and
// every dial goes through the guarded primitives.
func (g *Guard) directTransport() *http.Transport {
	return &http.Transport{
		Proxy: nil,
		DialContext: func(ctx context.Context, netw, address string) (net.Conn, error) {
			if netw == "tcp" {
				return g.CreateConnection(ctx, address)
			}
			return g.Dial(ctx, netw, address)
		},
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// log returns the configured logger, or the package logger as configured
// at call time.
func (g *Guard) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return logging.Component("guard")
}

func (g *Guard) logTransition(verbose bool, msg string, args ...any) {
	if verbose {
		g.log().Info(msg, args...)
		return
	}
	g.log().Debug(msg, args...)
}

func (g *Guard) record(e audit.Event) {
	if g.audit == nil {
		return
	}
	if err := g.audit.Log(e); err != nil {
		g.log().Warn("audit log write failed", "error", err)
	}
}
