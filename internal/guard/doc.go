// Package guard disables non-local network access for the current process.
//
// Go cannot patch net.Dial at runtime, so the guard owns the three
// connection-establishing primitives and exposes them as governed entry
// points. Code under test dials through them, and the high-level HTTP layer
// reaches them through the default opener (http.DefaultTransport), which the
// guard replaces while enabled.
//
// # Primitives
//
//   - Dial: connect a socket of a named network ("tcp4", "udp", "unix", ...)
//   - CreateConnection: open a TCP connection to a host:port pair
//   - Listen: bind a listening socket
//
// # Lifecycle
//
// The guard has two states. Enable saves the current default opener,
// installs a proxy-free transport that dials through the guarded primitives,
// and wraps the original primitives with the host classifier. Disable puts
// back the saved opener and the original primitives. Both are no-ops when
// the guard is already in the target state, and wrappers never stack.
//
//	guard.Enable(guard.EnableOptions{AllowDataHosts: true})
//	defer guard.Disable(false)
//
//	_, err := http.Get("http://www.python.org")
//	// errors.IsBlocked(err) == true
//
// # Scoped Use
//
// WithNetworkBlocked and Acquire disable only what they enabled, so an inner
// scope never tears down an outer one:
//
//	err := guard.WithNetworkBlocked(false, func() error {
//	    return runSuite()
//	})
//
// # Concurrency
//
// The guard is a single process-wide switch. Goroutines started while it is
// enabled are governed too. Enable and Disable are meant to be driven from
// one controlling goroutine; two interleaved independent scopes can leave
// the guard disabled early, because scopes track "did I enable it" rather
// than a reference count. Swapping http.DefaultTransport races with
// goroutines reading it concurrently.
package guard
