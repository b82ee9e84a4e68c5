package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/isopipe/pkg/analysis"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a plan file",
	Long:  "Show segment counts, total pipe lengths per nominal size, and the drawing extents of a plan.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	plan, err := pipe.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzePlan(plan)

	fmt.Println("Plan Information")
	fmt.Println("================")
	if plan.Name != "" {
		fmt.Printf("Name: %s\n", plan.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Segments:")
	fmt.Printf("  Total: %d\n", result.SegmentCount)
	fmt.Printf("  Fittings (zero length): %d\n", result.FittingCount)
	if result.Unresolvable > 0 {
		fmt.Printf("  Unresolvable: %d\n", result.Unresolvable)
	}
	fmt.Printf("  Total pipe length: %.1f cm\n\n", result.TotalLengthCm)

	if len(result.SizeTotals) > 0 {
		fmt.Println("Length per size:")
		for _, total := range result.SizeTotals {
			fmt.Printf("  %-8s %3d segments  %10.1f cm\n", total.Size, total.Count, total.LengthCm)
		}
		fmt.Println()
	}

	fmt.Println("Drawing extents (world units):")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Extents.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Extents.Max))
	size := result.Extents.Size()
	fmt.Printf("  Size: %.3f x %.3f\n", size.X, size.Y)
}
