// SPDX-License-Identifier: MPL-2.0

// Package discovery finds and loads command definition files.
//
// Each configured directory is walked recursively; every *.cue file is a
// single command definition and is parsed through pkg/cmdfile. Parse
// failures are fatal for the whole load: a sync pass must start from a
// complete definition set, never a silently truncated one. Recoverable
// conditions (a missing directory, a duplicate command name) are returned
// as structured diagnostics so the CLI layer owns the rendering policy.
package discovery
