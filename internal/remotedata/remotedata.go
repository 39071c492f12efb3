// Package remotedata maps remote-data modes onto the network guard
package remotedata

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/guard"
)

// Mode says which remote sources a test run may reach.
type Mode string

const (
	ModeNone    Mode = "none"
	ModeGitHub  Mode = "github"
	ModeAstropy Mode = "astropy"
	ModeAny     Mode = "any"
)

// EnvVar names the environment variable FromEnv reads.
const EnvVar = "NETGUARD_REMOTE_DATA"

// Modes lists the valid modes from most to least restrictive.
var Modes = []Mode{ModeNone, ModeGitHub, ModeAstropy, ModeAny}

func (m Mode) rank() int {
	for i, mode := range Modes {
		if mode == m {
			return i
		}
	}
	return -1
}

// ParseMode parses a mode name. An empty string is ModeNone.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNone, nil
	}
	m := Mode(s)
	if m.rank() < 0 {
		return "", fmt.Errorf("invalid remote data mode %q (use none, github, astropy, or any)", s)
	}
	return m, nil
}

// FromEnv reads the mode from NETGUARD_REMOTE_DATA.
func FromEnv() (Mode, error) {
	return ParseMode(os.Getenv(EnvVar))
}

// Blocks reports whether the mode installs the guard at all.
func (m Mode) Blocks() bool {
	return m != ModeAny
}

// Options returns the guard options for the mode.
func (m Mode) Options(verbose bool) guard.EnableOptions {
	return guard.EnableOptions{
		Verbose:        verbose,
		AllowDataHosts: m == ModeAstropy,
		AllowCodeHosts: m == ModeGitHub,
	}
}

// Allows reports whether a test that needs source may run under m.
// Data access implies code access, and ModeAny allows everything.
func (m Mode) Allows(source Mode) bool {
	if source == ModeAny {
		return m == ModeAny
	}
	return m.rank() >= source.rank()
}

// Apply enables g for the mode and returns the release function. ModeAny
// leaves the guard untouched.
func Apply(g *guard.Guard, m Mode, verbose bool) (release func()) {
	if !m.Blocks() {
		return func() {}
	}
	return g.AcquireWith(m.Options(verbose))
}

// Setup applies the mode to the process-wide guard for the duration of tb.
func Setup(tb testing.TB, m Mode) {
	tb.Helper()
	tb.Cleanup(Apply(guard.Default, m, testing.Verbose()))
}

// SkipUnless skips tb when the run's mode does not allow source.
func SkipUnless(tb testing.TB, m Mode, source Mode) {
	tb.Helper()
	if !m.Allows(source) {
		tb.Skipf("test requires remote data from %q (run with %s=%s)", source, EnvVar, source)
	}
}
