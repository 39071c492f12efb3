// Package app provides the application context for netguard.
//
// This package manages the CLI's dependencies using the functional options
// pattern, so commands can be tested without live DNS.
//
// # App Context
//
//	type App struct {
//	    Resolver   network.Resolver       // Host lookups
//	    LocalNames network.LocalNamesFunc // Machine hostname and FQDN
//	    Opener     guard.OpenerSlot       // Default HTTP transport slot
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithResolver(testutil.NewFakeResolver(hosts)),
//	    app.WithLocalNames(testutil.StaticLocalNames("buildhost")),
//	)
//	app.SetDefault(a)
//	defer app.ResetDefault()
//
// # Guards
//
// NewGuard builds a guard wired to the app's classifier and opener:
//
//	g := app.Default.NewGuard(auditLogger)
//	release := g.Acquire(false)
//	defer release()
package app
