// SPDX-License-Identifier: MPL-2.0

// Package sync reconciles local command definitions against the remote
// command registry.
//
// A sync pass classifies each discovered definition by publishability,
// resolves the configured scope into one or more targets (the global
// registry, or one registry per workspace), and reconciles each target
// independently: fetch the published entry set once, match local
// definitions by name, then create missing entries and overwrite matched
// ones. Failures are isolated per definition and per target; a pass never
// rolls back changes already applied.
package sync
