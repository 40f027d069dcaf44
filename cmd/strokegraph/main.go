// SPDX-License-Identifier: MIT

// Command strokegraph reduces stroke images to skeleton graphs and prints
// their measurements as YAML.
//
//	strokegraph analyze digit.png
//	strokegraph --config strokegraph.yaml --threshold 0.4 analyze *.png
//	strokegraph config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "strokegraph:", err)
		os.Exit(1)
	}
}
