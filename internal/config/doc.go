// Package config loads, normalizes, and validates rosterlink configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/rosterlink/config.toml or
// a rosterlink.toml in the working directory. The Config type centralizes
// every knob the CLI needs: the fuzzy-match threshold, report preview size,
// output and log directories, and log format/level.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
