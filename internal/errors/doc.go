// Package errors provides typed errors with exit codes for netguard.
//
// # Error Types
//
// GuardError is the base error type that wraps an error with an exit code:
//
//	type GuardError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// BlockedConnection is the domain error returned by a guarded primitive when
// a connection attempt targets a host outside the allow-list. It implements
// net.Error and never reports itself as a timeout or temporary failure.
//
// # Exit Codes
//
//	ExitSuccess      = 0 // Success
//	ExitGeneralError = 1 // General/unknown errors
//	ExitBlocked      = 2 // A connection attempt was blocked
//	ExitConfigError  = 3 // Configuration error
//	ExitUsageError   = 4 // Invalid command-line input
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
