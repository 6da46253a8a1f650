// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	"fmt"
)

// validate checks constraints the CUE schema cannot express clearly:
// options on kinds that do not take them, and duplicate option names.
// The schema has already enforced kind membership and name syntax.
func (c *Command) validate() error {
	if !c.Kind.IsValid() {
		return fmt.Errorf("command '%s' has unrecognized kind %q", c.EffectiveName(), c.Kind)
	}

	if len(c.Options) > 0 && !c.TakesOptions() {
		return fmt.Errorf("command '%s' has kind %q which does not take options (remove the options list or change the kind to \"slash\" or \"hybrid\")",
			c.EffectiveName(), c.Kind)
	}

	seen := make(map[string]int) // option name -> index of first occurrence
	for i, opt := range c.Options {
		if firstIdx, exists := seen[opt.Name]; exists {
			return fmt.Errorf("command '%s' has duplicate option name %q (options #%d and #%d)",
				c.EffectiveName(), opt.Name, firstIdx+1, i+1)
		}
		seen[opt.Name] = i
	}

	return nil
}
