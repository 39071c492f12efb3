// Package testutil provides test fixtures and utilities.
//
// # Resolvers
//
// FakeResolver serves a fixed host table so classifier and guard tests never
// depend on live DNS:
//
//	r := testutil.NewFakeResolver(map[string][]string{
//	    "data.astropy.org": {"192.0.2.10"},
//	})
//	c := &network.Classifier{Resolver: r, LocalNames: testutil.StaticLocalNames("buildhost")}
//
// # Servers
//
// LoopbackServer starts an HTTP server on 127.0.0.1 at an ephemeral port:
//
//	srv := testutil.LoopbackServer(t, "ok")
//	resp, err := client.Get(srv.URL)
//
// # Fixtures
//
// Config fixtures are embedded with go:embed and copied out by name:
//
//	fixtures/netguard.toml
//	fixtures/netguard.yaml
//	fixtures/invalid.toml
//
//	path := testutil.WriteFixture(t, t.TempDir(), "netguard.toml")
package testutil
