package errors

import (
	"errors"
	"fmt"
)

// Exit codes for netguard
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitBlocked      = 2
	ExitConfigError  = 3
	ExitUsageError   = 4
)

// GuardError is the base error type for netguard
type GuardError struct {
	Code    int
	Message string
	Cause   error
}

func (e *GuardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GuardError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *GuardError) ExitCode() int {
	return e.Code
}

// New creates a new GuardError
func New(code int, message string) *GuardError {
	return &GuardError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GuardError
func Wrap(code int, message string, cause error) *GuardError {
	return &GuardError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// BlockedConnection is returned by a guarded primitive when a connection
// attempt targets a host outside the allow-list.
type BlockedConnection struct {
	Host string
}

// Blocked returns a BlockedConnection for host.
func Blocked(host string) *BlockedConnection {
	return &BlockedConnection{Host: host}
}

func (e *BlockedConnection) Error() string {
	return fmt.Sprintf("an attempt was made to connect to the internet by a test "+
		"that was not marked as requiring remote data; the requested host was: %s", e.Host)
}

// Timeout reports false; a blocked attempt fails immediately.
func (e *BlockedConnection) Timeout() bool { return false }

// Temporary reports false so callers do not retry.
func (e *BlockedConnection) Temporary() bool { return false }

// ExitCode returns ExitBlocked
func (e *BlockedConnection) ExitCode() int {
	return ExitBlocked
}

// IsBlocked reports whether err's chain contains a BlockedConnection.
func IsBlocked(err error) bool {
	var blocked *BlockedConnection
	return errors.As(err, &blocked)
}

// BlockedHost returns the rejected host from err's chain, if any.
func BlockedHost(err error) (string, bool) {
	var blocked *BlockedConnection
	if errors.As(err, &blocked) {
		return blocked.Host, true
	}
	return "", false
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *GuardError {
	return Wrap(ExitConfigError, message, cause)
}

// UsageError returns an error for invalid command-line input
func UsageError(message string) *GuardError {
	return New(ExitUsageError, message)
}

// BlockedURLs returns an error summarising how many URLs a check rejected
func BlockedURLs(count int) *GuardError {
	return New(ExitBlocked, fmt.Sprintf("%d URL(s) blocked", count))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var guardErr *GuardError
	if errors.As(err, &guardErr) {
		return guardErr.ExitCode()
	}
	var blocked *BlockedConnection
	if errors.As(err, &blocked) {
		return blocked.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
