// Package config holds the run options: defaults, an optional TOML
// file, environment variables, then CLI flags, each layer overriding
// the previous one.
package config
