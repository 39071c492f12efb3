package guard

import (
	"context"
	"net"
)

// Default is the process-wide guard. Its originals are the system primitives
// captured at package initialisation, and its opener is http.DefaultTransport.
var Default = New(nil)

// Enable enables the process-wide guard.
func Enable(opts EnableOptions) {
	Default.Enable(opts)
}

// Disable disables the process-wide guard.
func Disable(verbose bool) {
	Default.Disable(verbose)
}

// Enabled reports whether the process-wide guard is enabled.
func Enabled() bool {
	return Default.Enabled()
}

// Acquire is Default.Acquire.
func Acquire(verbose bool) (release func()) {
	return Default.Acquire(verbose)
}

// WithNetworkBlocked is Default.WithNetworkBlocked.
func WithNetworkBlocked(verbose bool, fn func() error) error {
	return Default.WithNetworkBlocked(verbose, fn)
}

// Dial connects through the process-wide guard.
func Dial(ctx context.Context, netw, address string) (net.Conn, error) {
	return Default.Dial(ctx, netw, address)
}

// CreateConnection opens a TCP connection through the process-wide guard.
func CreateConnection(ctx context.Context, address string) (net.Conn, error) {
	return Default.CreateConnection(ctx, address)
}

// Listen binds through the process-wide guard.
func Listen(ctx context.Context, netw, address string) (net.Listener, error) {
	return Default.Listen(ctx, netw, address)
}
