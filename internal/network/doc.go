// Package network classifies connection attempts against a host allow-list.
//
// The classifier holds no mutable state. Every decision resolves the target
// host and the allow-listed domains afresh, so a long test run follows DNS
// changes.
//
// # Connection Attempts
//
// Guarded primitives describe each call as an Attempt:
//
//   - SocketAttempt: connect or bind on a socket of a known Family. Non-internet
//     families (unix sockets) pass through unchecked.
//   - TupleAttempt: a connection created from a host:port pair.
//
// Addresses that do not split into host and port also pass through.
//
// # Allow-list
//
// Loopback is always allowed: localhost and 127.0.0.1, plus ::1 for socket
// attempts. A Policy widens the list:
//
//	policy := network.Policy{AllowDataHosts: true} // DataHosts, which include CodeHosts
//	policy := network.Policy{AllowCodeHosts: true} // CodeHosts only
//
// A target matching the machine's own hostname or FQDN is rewritten to
// localhost before matching.
//
// # Usage
//
//	c := &network.Classifier{}
//	d, err := c.Classify(ctx, network.TupleAttempt{Address: "www.python.org:80"}, network.Policy{})
//	// err is *errors.BlockedConnection{Host: "www.python.org"}
package network
