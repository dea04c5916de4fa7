// Package config loads idpctl settings. Values are layered: defaults, then an
// optional JSON file (-c/-config), then IDPCTL_* environment variables, then
// command-line flags.
package config
