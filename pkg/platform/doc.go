// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities,
// centralizing the runtime.GOOS string literals used when resolving
// platform-specific paths.
package platform
