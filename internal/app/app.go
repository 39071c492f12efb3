// Package app provides the application context for netguard.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/audit"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/guard"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/network"
)

// App holds the application dependencies
type App struct {
	// Resolver resolves hosts for classification and the resolve command
	Resolver network.Resolver

	// LocalNames lists the machine's own names
	LocalNames network.LocalNamesFunc

	// Opener is the default-opener slot guards swap while enabled
	Opener guard.OpenerSlot
}

// Option is a function that configures the App
type Option func(*App)

// WithResolver sets a custom resolver
func WithResolver(r network.Resolver) Option {
	return func(a *App) {
		a.Resolver = r
	}
}

// WithLocalNames sets a custom local-names source
func WithLocalNames(fn network.LocalNamesFunc) Option {
	return func(a *App) {
		a.LocalNames = fn
	}
}

// WithOpener sets a custom opener slot
func WithOpener(slot guard.OpenerSlot) Option {
	return func(a *App) {
		a.Opener = slot
	}
}

// New creates a new App with the given options. Unset dependencies use the
// system resolver, the system's own names and http.DefaultTransport.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Resolver == nil {
		app.Resolver = network.DefaultResolver()
	}
	if app.LocalNames == nil {
		app.LocalNames = network.SystemLocalNames
	}
	if app.Opener == nil {
		app.Opener = guard.DefaultTransportSlot{}
	}

	return app
}

// Classifier returns a classifier using the app's resolver and local names.
func (a *App) Classifier() *network.Classifier {
	return &network.Classifier{
		Resolver:   a.Resolver,
		LocalNames: a.LocalNames,
	}
}

// NewGuard returns a guard over the system primitives and the app's opener.
// auditLogger may be nil.
func (a *App) NewGuard(auditLogger *audit.Logger) *guard.Guard {
	return guard.New(&guard.Config{
		Opener:     a.Opener,
		Classifier: a.Classifier(),
		Audit:      auditLogger,
	})
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
