package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/isopipe/pkg/analysis"
	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/resolve"
	"github.com/philipparndt/isopipe/pkg/spatial"
	"github.com/spf13/cobra"
)

var (
	snapX         float64
	snapY         float64
	snapThreshold float64
	snapZoom      float64
)

var snapCmd = &cobra.Command{
	Use:   "snap [file]",
	Short: "Find the nearest snap point to a position",
	Long: `Find the snap point (root or any segment endpoint) nearest to a world-space
position. The pixel threshold is converted to world units using the zoom
factor, exactly as the editing surface does.`,
	Args: cobra.ExactArgs(1),
	Run:  runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)

	snapCmd.Flags().Float64Var(&snapX, "x", 0.0, "X coordinate in world units")
	snapCmd.Flags().Float64Var(&snapY, "y", 0.0, "Y coordinate in world units")
	snapCmd.Flags().Float64Var(&snapThreshold, "threshold", 15.0, "snap radius in pixels")
	snapCmd.Flags().Float64Var(&snapZoom, "zoom", 1.0, "zoom factor")

	snapCmd.MarkFlagsRequiredTogether("x", "y")
}

func runSnap(cmd *cobra.Command, args []string) {
	coords := loadAndResolve(args[0])
	point := geometry.NewPoint(snapX, snapY)

	snap, ok := spatial.NearestSnapPoint(point, coords, snapThreshold/snapZoom)
	if !ok {
		fmt.Println("No snap point within threshold")
		return
	}

	fmt.Printf("Snap point: %s\n", analysis.FormatPoint(snap))
	fmt.Printf("Distance:   %.3f world units\n", point.Distance(snap))
}

// loadAndResolve loads a plan file and resolves it, exiting on load errors
func loadAndResolve(filename string) resolve.CoordinateMap {
	plan, err := pipe.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading plan file: %v\n", err)
		os.Exit(1)
	}

	coords, diag := resolve.ResolveAll(plan.Segments())
	if !diag.Clean() {
		fmt.Fprintf(os.Stderr, "warning: %d segments excluded (missing or cyclic ancestry)\n",
			len(diag.Orphans)+len(diag.Cycles))
	}
	return coords
}
