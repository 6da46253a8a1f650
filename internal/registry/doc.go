// SPDX-License-Identifier: MPL-2.0

// Package registry is the client for the remote command registry API.
//
// The registry holds the published command set for an application, either
// globally or per workspace. The package exposes a small Client interface
// (fetch, create, edit, workspace resolution) plus an HTTP implementation;
// the reconciliation logic in internal/sync depends only on the interface.
package registry
