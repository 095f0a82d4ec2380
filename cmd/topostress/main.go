// SPDX-License-Identifier: MIT

// Command topostress runs randomized edit sessions against the topology
// engine and reports the first divergence from its shadow model.
package main

import "github.com/MachineryHealth/cytoscape-sub002/cmd/topostress/commands"

func main() {
	commands.Execute()
}
