// Package config loads, normalizes, and validates rtpkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the RTPKIT_LOG_LEVEL environment
// override. Decode options, the plan store location and logging settings are
// all resolved here so the CLI hands downstream packages sanitized values.
package config
