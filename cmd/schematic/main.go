// Command schematic solves the engine schematic puzzle: it sums the numbers
// adjacent to a symbol (part 1) or the gear ratios (part 2) of a grid and
// prints "The solution is <value>.".
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
