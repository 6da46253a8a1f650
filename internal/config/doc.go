// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates cmdsync configuration.
//
// Configuration lives in a CUE file (config.cue) in the platform config
// directory; values are validated against an embedded CUE schema, merged
// into Viper on top of defaults, and decoded into the Config struct.
// Registry credentials are kept out of the config file: the token comes
// from an environment variable, or from a TOML credentials file next to
// the config.
package config
