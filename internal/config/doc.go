// Package config loads, normalizes, and validates morson configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// MORSON_OUTPUT and MORSON_LOG_LEVEL. The Config type centralizes every knob the
// CLI needs: where the obfuscated result is written, where history and logs
// live, and how batch runs fan out.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
