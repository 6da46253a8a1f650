// SPDX-License-Identifier: MPL-2.0

// cmdsync synchronizes locally defined application commands with a remote
// command registry.
package main

import (
	cmd "cmdsync/cmd/cmdsync"
)

func main() {
	cmd.Execute()
}
