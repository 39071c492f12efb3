// Package config provides configuration loading for the netguard CLI.
//
// # Configuration Files
//
// Settings are read from TOML or YAML, chosen by file extension. Without an
// explicit --config flag the working directory is searched for
// .netguard.toml, .netguard.yaml, then .netguard.yml.
//
//	remote_data = "astropy"   # none, github, astropy, or any
//	verbose     = true
//	json        = false
//	audit_log   = "netguard.jsonl"
//
// Relative config paths are resolved inside the working directory with
// filepath-securejoin, so "../" cannot escape it.
//
// # Validation
//
// Load validates after parsing; an unknown remote_data mode is rejected.
package config
