// Package config loads, normalizes, and validates deflacue configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file from
// ~/.config/deflacue/config.toml. Always obtain settings through this package
// so downstream code receives sanitized paths and clear validation errors.
package config
