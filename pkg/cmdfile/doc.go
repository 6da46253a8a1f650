// SPDX-License-Identifier: MPL-2.0

// Package cmdfile defines the on-disk format for command definitions.
//
// A command definition is a single CUE file describing one application
// command: its name, description, kind, and options. Files are validated
// against the embedded #Command schema at parse time. The command name is
// optional in the file; when absent it is derived from the file's base name
// with the extension stripped (ping.cue defines "ping").
package cmdfile
