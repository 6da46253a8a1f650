// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cmdsync.
//
// This package implements the Cobra command hierarchy for the cmdsync CLI:
// the root command, the sync and check commands, configuration management,
// and the starter-file generator.
package cmd
