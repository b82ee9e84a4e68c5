package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/isopipe/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isopipe",
	Short: "A CLI tool for inspecting and measuring isometric gas-piping plans",
	Long: `isopipe works with isometric gas-piping plan files. A plan is a tree of
directional pipe segments anchored at a single root point; isopipe resolves
the tree into absolute 2D coordinates and answers measurement, snapping and
hit-testing questions over them.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
