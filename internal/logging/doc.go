// Package logging provides logging utilities for netguard.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("classified attempt", "host", host, "allowed", allowed)
//	logging.Component("guard").Info("network access disabled")
//
// # User Output
//
// User-facing messages are prefixed with a status glyph styled by lipgloss:
//
//	logging.UserInfo("Checking %d URL(s)...", len(urls))
//	logging.UserSuccess("%s allowed", url)
//	logging.UserWarning("%s unreachable: %v", url, err)
//	logging.UserError("%s blocked", url)
//
// Output destinations default to stdout (info, success) and stderr (warning,
// error) and can be redirected through Stdout and Stderr.
package logging
